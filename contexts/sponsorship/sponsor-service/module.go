package sponsorservice

import (
	"log/slog"

	httpadapter "confera/contexts/sponsorship/sponsor-service/adapters/http"
	"confera/contexts/sponsorship/sponsor-service/application"
	"confera/contexts/sponsorship/sponsor-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
}

type Dependencies struct {
	Repository ports.Booths
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repository,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}
