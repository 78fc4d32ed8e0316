package schedulingservice

import (
	"context"
	"log/slog"

	httpadapter "confera/contexts/programme/scheduling-service/adapters/http"
	"confera/contexts/programme/scheduling-service/application"
	"confera/contexts/programme/scheduling-service/application/workers"
	"confera/contexts/programme/scheduling-service/ports"
	"confera/internal/shared/events"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service

	consumer   workers.EngagementConsumer
	subscriber ports.EventSubscriber
}

type Dependencies struct {
	Repository  ports.Scheduling
	Publisher   ports.EventPublisher
	Subscriber  ports.EventSubscriber
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
		consumer: workers.EngagementConsumer{
			Repo:   deps.Repository,
			Logger: deps.Logger,
		},
		subscriber: deps.Subscriber,
	}
}

// StartEngagementConsumer wires the session.joined consumer onto the bus.
// The subscription lives until ctx is cancelled.
func (m Module) StartEngagementConsumer(ctx context.Context) error {
	if m.subscriber == nil {
		return nil
	}
	return m.subscriber.Subscribe(ctx, events.TopicSessions, workers.ConsumerGroup, m.consumer.Handle)
}
