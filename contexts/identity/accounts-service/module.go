package accountsservice

import (
	"log/slog"

	httpadapter "confera/contexts/identity/accounts-service/adapters/http"
	"confera/contexts/identity/accounts-service/application"
	"confera/contexts/identity/accounts-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
}

type Dependencies struct {
	Accounts    ports.Accounts
	Hasher      ports.PasswordHasher
	Tokens      ports.TokenMinter
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Accounts: deps.Accounts,
		Hasher:   deps.Hasher,
		Tokens:   deps.Tokens,
		Clock:    deps.Clock,
		IDGen:    deps.IDGenerator,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}
