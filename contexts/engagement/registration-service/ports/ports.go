package ports

import (
	"context"
	"time"

	"confera/internal/domain"
	"confera/internal/shared/events"
)

// Registrations is the store slice this module needs: both sides of the
// attendee↔event link plus the lookups that validate them.
type Registrations interface {
	GetAttendee(ctx context.Context, id string) (domain.Attendee, error)
	GetEvent(ctx context.Context, id string) (domain.Event, error)
	AddRegisteredEvent(ctx context.Context, attendeeID string, eventID string) (bool, error)
	AddEventAttendee(ctx context.Context, eventID string, attendeeID string) (bool, error)
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

type RegisterResult struct {
	EventID    string
	AttendeeID string
	EventName  string
}
