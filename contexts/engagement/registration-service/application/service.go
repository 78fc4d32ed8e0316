package application

import (
	"context"
	"errors"
	"log/slog"
	"time"

	domainerrors "confera/contexts/engagement/registration-service/domain/errors"
	"confera/contexts/engagement/registration-service/ports"
	"confera/internal/domain"
	"confera/internal/shared/events"
	"confera/internal/store"
)

type Service struct {
	Repo        ports.Registrations
	Publisher   ports.EventPublisher
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	ServiceName string
	Logger      *slog.Logger
}

// Register links an attendee to an event on both sides. The attendee side is
// written first; if the event side then fails the link stays half-applied and
// the caller sees ErrRegistrationIncomplete.
func (s Service) Register(ctx context.Context, attendeeID string, eventID string) (ports.RegisterResult, error) {
	event, err := s.Repo.GetEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ports.RegisterResult{}, domainerrors.ErrEventNotFound
		}
		return ports.RegisterResult{}, err
	}
	if _, err := s.Repo.GetAttendee(ctx, attendeeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ports.RegisterResult{}, domainerrors.ErrAttendeeNotFound
		}
		return ports.RegisterResult{}, err
	}

	added, err := s.Repo.AddRegisteredEvent(ctx, attendeeID, eventID)
	if err != nil {
		return ports.RegisterResult{}, err
	}
	if !added {
		return ports.RegisterResult{}, domainerrors.ErrAlreadyRegistered
	}

	if _, err := s.Repo.AddEventAttendee(ctx, eventID, attendeeID); err != nil {
		ResolveLogger(s.Logger).Error("event side of registration failed",
			"event", "registration_incomplete",
			"module", "engagement/registration-service",
			"layer", "application",
			"attendee_id", attendeeID,
			"event_id", eventID,
			"error", err.Error(),
		)
		return ports.RegisterResult{}, domainerrors.ErrRegistrationIncomplete
	}

	s.publishRegistered(ctx, eventID, attendeeID)

	ResolveLogger(s.Logger).Info("attendee registered",
		"event", "registration_created",
		"module", "engagement/registration-service",
		"layer", "application",
		"attendee_id", attendeeID,
		"event_id", eventID,
	)
	return ports.RegisterResult{
		EventID:    eventID,
		AttendeeID: attendeeID,
		EventName:  event.Name,
	}, nil
}

func (s Service) ListRegisteredEvents(ctx context.Context, attendeeID string) ([]domain.Event, error) {
	attendee, err := s.Repo.GetAttendee(ctx, attendeeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.ErrAttendeeNotFound
		}
		return nil, err
	}

	registered := make([]domain.Event, 0, len(attendee.EventsRegistered))
	for _, eventID := range attendee.EventsRegistered {
		event, err := s.Repo.GetEvent(ctx, eventID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Event deleted after registration; skip the dangling id.
				continue
			}
			return nil, err
		}
		registered = append(registered, event)
	}
	return registered, nil
}

func (s Service) ListEventAttendees(ctx context.Context, eventID string) ([]domain.Attendee, error) {
	event, err := s.Repo.GetEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}
		return nil, err
	}

	attendees := make([]domain.Attendee, 0, len(event.Attendees))
	for _, attendeeID := range event.Attendees {
		attendee, err := s.Repo.GetAttendee(ctx, attendeeID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, err
		}
		attendees = append(attendees, attendee)
	}
	return attendees, nil
}

func (s Service) publishRegistered(ctx context.Context, eventID string, attendeeID string) {
	if s.Publisher == nil {
		return
	}
	envelopeID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return
	}
	_ = s.Publisher.Publish(ctx, events.TopicRegistrations, events.Envelope{
		EventID:        envelopeID,
		EventType:      events.TypeRegistrationCreated,
		SourceService:  s.ServiceName,
		OccurredAtUTC:  s.now(),
		EntityType:     "event",
		EntityID:       eventID,
		PayloadVersion: 1,
		Payload: events.RegistrationCreatedPayload{
			EventID:    eventID,
			AttendeeID: attendeeID,
		},
	})
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
