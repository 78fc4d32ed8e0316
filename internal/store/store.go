package store

import (
	"context"
	"errors"
	"time"

	"confera/internal/domain"
)

// ErrNotFound keeps by-id misses consistent across the in-memory and postgres
// implementations; services translate it into their own sentinel errors.
var ErrNotFound = errors.New("record not found")

// ErrConflict surfaces uniqueness violations the persistence layer can see
// (duplicate email on signup races past the service-level pre-check).
var ErrConflict = errors.New("record conflict")

// Stores are interface-driven so modules declare the narrow slice they need
// in their ports package and either implementation satisfies it structurally.
// Set-valued adds report whether the id was newly added, which lets callers
// enforce set semantics without a prior read. Counter and append operations
// are atomic: mutex-held in memory, row-locked or server-side in postgres.

type AttendeeStore interface {
	SaveAttendee(ctx context.Context, attendee domain.Attendee) error
	GetAttendee(ctx context.Context, id string) (domain.Attendee, error)
	FindAttendeeByEmail(ctx context.Context, email string) (domain.Attendee, error)
	UpdateAttendeeProfile(ctx context.Context, id string, name string, interests []string, skills []string) (domain.Attendee, error)
	AddRegisteredEvent(ctx context.Context, attendeeID string, eventID string) (bool, error)
	AppendAttendeeNotification(ctx context.Context, attendeeID string, notification domain.Notification) error
	MarkAttendeeNotificationsRead(ctx context.Context, attendeeID string) ([]domain.Notification, error)
}

type EventStore interface {
	SaveEvent(ctx context.Context, event domain.Event) error
	GetEvent(ctx context.Context, id string) (domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	UpdateEventDetails(ctx context.Context, id string, name string, description string, date time.Time) (domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	AddEventAttendee(ctx context.Context, eventID string, attendeeID string) (bool, error)
	AddEventSession(ctx context.Context, eventID string, sessionID string) (bool, error)
	AppendEventNotification(ctx context.Context, eventID string, message string) (domain.Event, error)
}

type SessionStore interface {
	SaveSession(ctx context.Context, session domain.Session) error
	GetSession(ctx context.Context, id string) (domain.Session, error)
	ListSessionsByEvent(ctx context.Context, eventID string) ([]domain.Session, error)
	UpdateSessionDetails(ctx context.Context, id string, title string, description string, date time.Time) (domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
	SetSessionSpeaker(ctx context.Context, sessionID string, speakerID string) error
	AddSessionParticipant(ctx context.Context, sessionID string, attendeeID string) (bool, error)
	AppendSessionPoll(ctx context.Context, sessionID string, poll domain.Poll) (domain.Session, error)
	IncrementPollResponse(ctx context.Context, sessionID string, pollID string, option string, delta int) (domain.Poll, error)
}

type SpeakerStore interface {
	SaveSpeaker(ctx context.Context, speaker domain.Speaker) error
	GetSpeaker(ctx context.Context, id string) (domain.Speaker, error)
	FindSpeakerByEmail(ctx context.Context, email string) (domain.Speaker, error)
	ListSpeakers(ctx context.Context) ([]domain.Speaker, error)
	UpdateSpeakerProfile(ctx context.Context, id string, name string, bio string, topics []string) (domain.Speaker, error)
	AddSpeakerSession(ctx context.Context, speakerID string, sessionID string) (bool, error)
	IncrementSessionsPresented(ctx context.Context, speakerID string, delta int) error
	IncrementAttendeeEngagement(ctx context.Context, speakerID string, delta int) error
}

type SponsorStore interface {
	SaveSponsor(ctx context.Context, sponsor domain.Sponsor) error
	GetSponsor(ctx context.Context, id string) (domain.Sponsor, error)
	FindSponsorByEmail(ctx context.Context, email string) (domain.Sponsor, error)
	UpdateSponsorProfile(ctx context.Context, id string, name string, company string) (domain.Sponsor, error)
	AppendBoothResource(ctx context.Context, sponsorID string, resource domain.BoothResource) (domain.Sponsor, error)
}

type OrganiserStore interface {
	SaveOrganiser(ctx context.Context, organiser domain.Organiser) error
	GetOrganiser(ctx context.Context, id string) (domain.Organiser, error)
	FindOrganiserByEmail(ctx context.Context, email string) (domain.Organiser, error)
	UpdateOrganiserProfile(ctx context.Context, id string, name string, organisation string) (domain.Organiser, error)
	AddManagedEvent(ctx context.Context, organiserID string, eventID string) (bool, error)
}

// Store bundles the five collections plus organisers for composition-root
// wiring; modules never depend on the full surface.
type Store interface {
	AttendeeStore
	EventStore
	SessionStore
	SpeakerStore
	SponsorStore
	OrganiserStore
}
