package ports

import (
	"context"
	"time"

	"confera/internal/domain"
)

// Programme is the store slice for event and session lifecycle, including the
// organiser back-references written at creation time.
type Programme interface {
	GetOrganiser(ctx context.Context, id string) (domain.Organiser, error)
	AddManagedEvent(ctx context.Context, organiserID string, eventID string) (bool, error)

	SaveEvent(ctx context.Context, event domain.Event) error
	GetEvent(ctx context.Context, id string) (domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	UpdateEventDetails(ctx context.Context, id string, name string, description string, date time.Time) (domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	AddEventSession(ctx context.Context, eventID string, sessionID string) (bool, error)

	SaveSession(ctx context.Context, session domain.Session) error
	GetSession(ctx context.Context, id string) (domain.Session, error)
	ListSessionsByEvent(ctx context.Context, eventID string) ([]domain.Session, error)
	UpdateSessionDetails(ctx context.Context, id string, title string, description string, date time.Time) (domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type CreateEventInput struct {
	OrganiserID string
	Name        string
	Description string
	Date        string
}

type UpdateEventInput struct {
	OrganiserID string
	Name        string
	Description string
	Date        string
}

type CreateSessionInput struct {
	EventID     string
	Title       string
	Description string
	Date        string
}

type UpdateSessionInput struct {
	Title       string
	Description string
	Date        string
}
