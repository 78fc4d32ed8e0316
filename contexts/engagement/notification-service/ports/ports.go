package ports

import (
	"context"
	"time"

	"confera/internal/domain"
	"confera/internal/shared/events"
)

// Notifications is the store slice for fanout: the event-level broadcast log
// plus per-attendee inbox appends.
type Notifications interface {
	GetEvent(ctx context.Context, id string) (domain.Event, error)
	GetAttendee(ctx context.Context, id string) (domain.Attendee, error)
	AppendEventNotification(ctx context.Context, eventID string, message string) (domain.Event, error)
	AppendAttendeeNotification(ctx context.Context, attendeeID string, notification domain.Notification) error
	MarkAttendeeNotificationsRead(ctx context.Context, attendeeID string) ([]domain.Notification, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event events.Envelope) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type BroadcastResult struct {
	EventID   string
	Message   string
	Delivered int
	Failed    int
}
