package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	domainerrors "confera/contexts/programme/event-service/domain/errors"
	"confera/contexts/programme/event-service/ports"
	"confera/internal/domain"
	"confera/internal/store"
)

// dateLayout matches the original wire format, e.g. "15/March/2026".
const dateLayout = "02/January/2006"

type Service struct {
	Repo   ports.Programme
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func (s Service) CreateEvent(ctx context.Context, input ports.CreateEventInput) (domain.Event, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.Event{}, domainerrors.ErrInvalidInput
	}
	date, err := parseDate(input.Date)
	if err != nil {
		return domain.Event{}, err
	}

	organiser, err := s.Repo.GetOrganiser(ctx, input.OrganiserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Event{}, domainerrors.ErrOrganiserNotFound
		}
		return domain.Event{}, err
	}

	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return domain.Event{}, err
	}
	now := s.now()
	event := domain.Event{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Date:        date,
		OrganiserID: organiser.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.SaveEvent(ctx, event); err != nil {
		return domain.Event{}, err
	}
	if _, err := s.Repo.AddManagedEvent(ctx, organiser.ID, event.ID); err != nil {
		return domain.Event{}, err
	}

	ResolveLogger(s.Logger).Info("event created",
		"event", "event_created",
		"module", "programme/event-service",
		"layer", "application",
		"event_id", event.ID,
		"organiser_id", organiser.ID,
	)
	return event, nil
}

func (s Service) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return s.Repo.ListEvents(ctx)
}

func (s Service) GetEvent(ctx context.Context, eventID string) (domain.Event, error) {
	event, err := s.Repo.GetEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Event{}, domainerrors.ErrEventNotFound
		}
		return domain.Event{}, err
	}
	return event, nil
}

func (s Service) UpdateEvent(ctx context.Context, eventID string, input ports.UpdateEventInput) (domain.Event, error) {
	if err := s.requireEditPermission(ctx, input.OrganiserID); err != nil {
		return domain.Event{}, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.Event{}, domainerrors.ErrInvalidInput
	}
	date, err := parseDate(input.Date)
	if err != nil {
		return domain.Event{}, err
	}

	event, err := s.Repo.UpdateEventDetails(ctx, eventID, name, strings.TrimSpace(input.Description), date)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Event{}, domainerrors.ErrEventNotFound
		}
		return domain.Event{}, err
	}
	return event, nil
}

// DeleteEvent removes only the event document. Sessions keep their event
// back-reference, matching registration's one-sided failure posture.
func (s Service) DeleteEvent(ctx context.Context, organiserID string, eventID string) error {
	if err := s.requireEditPermission(ctx, organiserID); err != nil {
		return err
	}
	if err := s.Repo.DeleteEvent(ctx, eventID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domainerrors.ErrEventNotFound
		}
		return err
	}
	ResolveLogger(s.Logger).Info("event deleted",
		"event", "event_deleted",
		"module", "programme/event-service",
		"layer", "application",
		"event_id", eventID,
		"organiser_id", organiserID,
	)
	return nil
}

func (s Service) CreateSession(ctx context.Context, input ports.CreateSessionInput) (domain.Session, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.Session{}, domainerrors.ErrInvalidInput
	}
	date, err := parseDate(input.Date)
	if err != nil {
		return domain.Session{}, err
	}
	if _, err := s.Repo.GetEvent(ctx, input.EventID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, domainerrors.ErrEventNotFound
		}
		return domain.Session{}, err
	}

	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return domain.Session{}, err
	}
	now := s.now()
	session := domain.Session{
		ID:          id,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Date:        date,
		EventID:     input.EventID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.SaveSession(ctx, session); err != nil {
		return domain.Session{}, err
	}
	if _, err := s.Repo.AddEventSession(ctx, input.EventID, session.ID); err != nil {
		return domain.Session{}, err
	}

	ResolveLogger(s.Logger).Info("session created",
		"event", "session_created",
		"module", "programme/event-service",
		"layer", "application",
		"session_id", session.ID,
		"event_id", input.EventID,
	)
	return session, nil
}

func (s Service) UpdateSession(ctx context.Context, sessionID string, input ports.UpdateSessionInput) (domain.Session, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.Session{}, domainerrors.ErrInvalidInput
	}
	date, err := parseDate(input.Date)
	if err != nil {
		return domain.Session{}, err
	}
	session, err := s.Repo.UpdateSessionDetails(ctx, sessionID, title, strings.TrimSpace(input.Description), date)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, domainerrors.ErrSessionNotFound
		}
		return domain.Session{}, err
	}
	return session, nil
}

func (s Service) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.Repo.DeleteSession(ctx, sessionID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domainerrors.ErrSessionNotFound
		}
		return err
	}
	return nil
}

func (s Service) ListEventSessions(ctx context.Context, eventID string) ([]domain.Session, error) {
	if _, err := s.Repo.GetEvent(ctx, eventID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}
		return nil, err
	}
	return s.Repo.ListSessionsByEvent(ctx, eventID)
}

func (s Service) requireEditPermission(ctx context.Context, organiserID string) error {
	organiser, err := s.Repo.GetOrganiser(ctx, organiserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domainerrors.ErrOrganiserNotFound
		}
		return err
	}
	if !organiser.Permissions.CanEditEvents {
		return domainerrors.ErrPermissionDenied
	}
	return nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func parseDate(raw string) (time.Time, error) {
	date, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, domainerrors.ErrInvalidDate
	}
	return date.UTC(), nil
}
