package bootstrap

import (
	"context"
	"log/slog"
	"strings"
	"time"

	notificationservice "confera/contexts/engagement/notification-service"
	registrationservice "confera/contexts/engagement/registration-service"
	accountsservice "confera/contexts/identity/accounts-service"
	eventservice "confera/contexts/programme/event-service"
	pollservice "confera/contexts/programme/poll-service"
	schedulingservice "confera/contexts/programme/scheduling-service"
	sponsorservice "confera/contexts/sponsorship/sponsor-service"
	"confera/internal/platform/auth"
	"confera/internal/platform/config"
	"confera/internal/platform/db"
	"confera/internal/platform/httpserver"
	"confera/internal/platform/messaging"
	"confera/internal/store"
	"confera/internal/store/memory"
	"confera/internal/store/postgres"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server     *httpserver.Server
	postgres   *db.Postgres
	scheduling schedulingservice.Module
	consumerOn bool
	logger     *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	var (
		entityStore store.Store
		pg          *db.Postgres
	)
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		// No DSN selects the in-memory store; useful for local runs and tests.
		entityStore = memory.NewStore()
		logger.Info("using in-memory store",
			"event", "bootstrap_store_selected",
			"module", "internal/app/bootstrap",
			"layer", "platform",
			"store", "memory",
		)
	} else {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		pgStore := postgres.NewStore(pg.DB, logger)
		if err := pgStore.AutoMigrate(); err != nil {
			_ = pg.Close()
			return nil, err
		}
		entityStore = pgStore
	}

	bus := messaging.NewBus(logger)
	tokens := auth.NewTokenService(cfg.JWTSigningKey, cfg.ServiceName, 24*time.Hour)
	clock := store.SystemClock{}
	idGen := store.UUIDGenerator{}

	accounts := accountsservice.NewModule(accountsservice.Dependencies{
		Accounts:    entityStore,
		Hasher:      auth.BcryptHasher{},
		Tokens:      tokens,
		Clock:       clock,
		IDGenerator: idGen,
		Logger:      logger,
	})
	registration := registrationservice.NewModule(registrationservice.Dependencies{
		Repository:  entityStore,
		Publisher:   bus,
		Clock:       clock,
		IDGenerator: idGen,
		ServiceName: cfg.ServiceName,
		Logger:      logger,
	})
	notifications := notificationservice.NewModule(notificationservice.Dependencies{
		Repository:  entityStore,
		Publisher:   bus,
		Clock:       clock,
		IDGenerator: idGen,
		ServiceName: cfg.ServiceName,
		Logger:      logger,
	})
	eventsModule := eventservice.NewModule(eventservice.Dependencies{
		Repository:  entityStore,
		Clock:       clock,
		IDGenerator: idGen,
		Logger:      logger,
	})
	scheduling := schedulingservice.NewModule(schedulingservice.Dependencies{
		Repository:  entityStore,
		Publisher:   bus,
		Subscriber:  bus,
		Clock:       clock,
		IDGenerator: idGen,
		ServiceName: cfg.ServiceName,
		Logger:      logger,
	})
	polls := pollservice.NewModule(pollservice.Dependencies{
		Repository:  entityStore,
		IDGenerator: idGen,
		Logger:      logger,
	})
	sponsors := sponsorservice.NewModule(sponsorservice.Dependencies{
		Repository: entityStore,
		Logger:     logger,
	})

	server := httpserver.New(httpserver.Modules{
		Accounts:      accounts,
		Registration:  registration,
		Notifications: notifications,
		Events:        eventsModule,
		Scheduling:    scheduling,
		Polls:         polls,
		Sponsors:      sponsors,
	}, tokens, logger, normalizeAddr(cfg.HTTPPort))

	return &APIApp{
		server:     server,
		postgres:   pg,
		scheduling: scheduling,
		consumerOn: cfg.EnableEngagementConsumer,
		logger:     logger,
	}, nil
}

func (a *APIApp) Run(ctx context.Context) error {
	if a.consumerOn {
		if err := a.scheduling.StartEngagementConsumer(ctx); err != nil {
			return err
		}
	}
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
