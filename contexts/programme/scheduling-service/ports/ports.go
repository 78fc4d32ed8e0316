package ports

import (
	"context"
	"time"

	"confera/internal/domain"
	"confera/internal/shared/events"
)

// Scheduling is the store slice for speaker assignment and session
// participation, including the analytics counters both paths move.
type Scheduling interface {
	GetSpeaker(ctx context.Context, id string) (domain.Speaker, error)
	ListSpeakers(ctx context.Context) ([]domain.Speaker, error)
	AddSpeakerSession(ctx context.Context, speakerID string, sessionID string) (bool, error)
	IncrementSessionsPresented(ctx context.Context, speakerID string, delta int) error
	IncrementAttendeeEngagement(ctx context.Context, speakerID string, delta int) error

	GetSession(ctx context.Context, id string) (domain.Session, error)
	SetSessionSpeaker(ctx context.Context, sessionID string, speakerID string) error
	AddSessionParticipant(ctx context.Context, sessionID string, attendeeID string) (bool, error)

	GetAttendee(ctx context.Context, id string) (domain.Attendee, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event events.Envelope) error
}

type EventSubscriber interface {
	Subscribe(ctx context.Context, topic string, consumerGroup string, handler func(context.Context, events.Envelope) error) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type AssignResult struct {
	SpeakerID   string
	SessionID   string
	SpeakerName string
}

type JoinResult struct {
	SessionID  string
	AttendeeID string
	SpeakerID  string
}
