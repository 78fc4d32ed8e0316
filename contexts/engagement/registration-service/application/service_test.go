package application

import (
	"context"
	"errors"
	"testing"

	domainerrors "confera/contexts/engagement/registration-service/domain/errors"
	"confera/contexts/engagement/registration-service/ports"
	"confera/internal/domain"
	"confera/internal/shared/events"
	"confera/internal/store"
	"confera/internal/store/memory"
)

type capturePublisher struct {
	published []events.Envelope
}

func (p *capturePublisher) Publish(_ context.Context, _ string, envelope events.Envelope) error {
	p.published = append(p.published, envelope)
	return nil
}

type failingEventSideRepo struct {
	ports.Registrations
}

func (failingEventSideRepo) AddEventAttendee(context.Context, string, string) (bool, error) {
	return false, errors.New("write rejected")
}

func seedRegistration(t *testing.T, s *memory.Store) {
	t.Helper()
	ctx := context.Background()
	if err := s.SaveAttendee(ctx, domain.Attendee{ID: "att-1", Name: "Alex"}); err != nil {
		t.Fatalf("seed attendee failed: %v", err)
	}
	if err := s.SaveEvent(ctx, domain.Event{ID: "evt-1", Name: "GopherCon"}); err != nil {
		t.Fatalf("seed event failed: %v", err)
	}
}

func TestRegisterLinksBothSides(t *testing.T) {
	repo := memory.NewStore()
	seedRegistration(t, repo)
	publisher := &capturePublisher{}
	svc := Service{Repo: repo, Publisher: publisher, Clock: store.SystemClock{}, IDGen: store.UUIDGenerator{}, ServiceName: "test"}
	ctx := context.Background()

	result, err := svc.Register(ctx, "att-1", "evt-1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if result.EventName != "GopherCon" {
		t.Fatalf("unexpected event name %q", result.EventName)
	}

	attendee, err := repo.GetAttendee(ctx, "att-1")
	if err != nil {
		t.Fatalf("get attendee failed: %v", err)
	}
	event, err := repo.GetEvent(ctx, "evt-1")
	if err != nil {
		t.Fatalf("get event failed: %v", err)
	}
	if len(attendee.EventsRegistered) != 1 || attendee.EventsRegistered[0] != "evt-1" {
		t.Fatalf("attendee side not linked: %v", attendee.EventsRegistered)
	}
	if len(event.Attendees) != 1 || event.Attendees[0] != "att-1" {
		t.Fatalf("event side not linked: %v", event.Attendees)
	}

	if len(publisher.published) != 1 {
		t.Fatalf("expected one published event, got %d", len(publisher.published))
	}
	if publisher.published[0].EventType != events.TypeRegistrationCreated {
		t.Fatalf("unexpected event type %q", publisher.published[0].EventType)
	}
}

func TestRegisterDuplicateIsConflict(t *testing.T) {
	repo := memory.NewStore()
	seedRegistration(t, repo)
	svc := Service{Repo: repo, IDGen: store.UUIDGenerator{}, ServiceName: "test"}
	ctx := context.Background()

	if _, err := svc.Register(ctx, "att-1", "evt-1"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(ctx, "att-1", "evt-1"); !errors.Is(err, domainerrors.ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}

	attendee, err := repo.GetAttendee(ctx, "att-1")
	if err != nil {
		t.Fatalf("get attendee failed: %v", err)
	}
	if len(attendee.EventsRegistered) != 1 {
		t.Fatalf("duplicate register must not grow the set: %v", attendee.EventsRegistered)
	}
}

func TestRegisterUnknownTargets(t *testing.T) {
	repo := memory.NewStore()
	seedRegistration(t, repo)
	svc := Service{Repo: repo, IDGen: store.UUIDGenerator{}, ServiceName: "test"}
	ctx := context.Background()

	if _, err := svc.Register(ctx, "att-1", "evt-404"); !errors.Is(err, domainerrors.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
	if _, err := svc.Register(ctx, "att-404", "evt-1"); !errors.Is(err, domainerrors.ErrAttendeeNotFound) {
		t.Fatalf("expected ErrAttendeeNotFound, got %v", err)
	}
}

func TestRegisterEventSideFailureIsIncomplete(t *testing.T) {
	repo := memory.NewStore()
	seedRegistration(t, repo)
	svc := Service{Repo: failingEventSideRepo{Registrations: repo}, IDGen: store.UUIDGenerator{}, ServiceName: "test"}
	ctx := context.Background()

	if _, err := svc.Register(ctx, "att-1", "evt-1"); !errors.Is(err, domainerrors.ErrRegistrationIncomplete) {
		t.Fatalf("expected ErrRegistrationIncomplete, got %v", err)
	}

	// The attendee side stays written; there is no rollback.
	attendee, err := repo.GetAttendee(ctx, "att-1")
	if err != nil {
		t.Fatalf("get attendee failed: %v", err)
	}
	if len(attendee.EventsRegistered) != 1 {
		t.Fatalf("expected attendee side to remain linked: %v", attendee.EventsRegistered)
	}
	event, err := repo.GetEvent(ctx, "evt-1")
	if err != nil {
		t.Fatalf("get event failed: %v", err)
	}
	if len(event.Attendees) != 0 {
		t.Fatalf("expected event side untouched: %v", event.Attendees)
	}
}

func TestListRegisteredEventsSkipsDanglingIDs(t *testing.T) {
	repo := memory.NewStore()
	seedRegistration(t, repo)
	svc := Service{Repo: repo, IDGen: store.UUIDGenerator{}, ServiceName: "test"}
	ctx := context.Background()

	if _, err := svc.Register(ctx, "att-1", "evt-1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := repo.AddRegisteredEvent(ctx, "att-1", "evt-deleted"); err != nil {
		t.Fatalf("seed dangling id failed: %v", err)
	}

	registered, err := svc.ListRegisteredEvents(ctx, "att-1")
	if err != nil {
		t.Fatalf("list registered events failed: %v", err)
	}
	if len(registered) != 1 || registered[0].ID != "evt-1" {
		t.Fatalf("expected only the live event, got %+v", registered)
	}
}
