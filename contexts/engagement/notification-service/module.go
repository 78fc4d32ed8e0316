package notificationservice

import (
	"log/slog"

	httpadapter "confera/contexts/engagement/notification-service/adapters/http"
	"confera/contexts/engagement/notification-service/application"
	"confera/contexts/engagement/notification-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
}

type Dependencies struct {
	Repository  ports.Notifications
	Publisher   ports.EventPublisher
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	ServiceName string
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:        deps.Repository,
		Publisher:   deps.Publisher,
		Clock:       deps.Clock,
		IDGen:       deps.IDGenerator,
		ServiceName: deps.ServiceName,
		Logger:      deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}
