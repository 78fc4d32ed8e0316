package application

import (
	"context"
	"errors"
	"testing"

	domainerrors "confera/contexts/programme/event-service/domain/errors"
	"confera/contexts/programme/event-service/ports"
	"confera/internal/domain"
	"confera/internal/store"
	"confera/internal/store/memory"
)

func newEventService(repo ports.Programme) Service {
	return Service{Repo: repo, Clock: store.SystemClock{}, IDGen: store.UUIDGenerator{}}
}

func seedOrganiser(t *testing.T, s *memory.Store, canEdit bool) {
	t.Helper()
	err := s.SaveOrganiser(context.Background(), domain.Organiser{
		ID:   "org-1",
		Name: "Org Anne",
		Permissions: domain.OrganiserPermissions{
			CanEditEvents:    canEdit,
			CanManageContent: true,
		},
	})
	if err != nil {
		t.Fatalf("seed organiser failed: %v", err)
	}
}

func TestCreateEventLinksOrganiser(t *testing.T) {
	repo := memory.NewStore()
	seedOrganiser(t, repo, true)
	svc := newEventService(repo)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, ports.CreateEventInput{
		OrganiserID: "org-1",
		Name:        "GopherCon",
		Description: "Annual Go conference",
		Date:        "15/March/2026",
	})
	if err != nil {
		t.Fatalf("create event failed: %v", err)
	}
	if event.ID == "" || event.OrganiserID != "org-1" {
		t.Fatalf("unexpected event %+v", event)
	}
	if event.Date.Day() != 15 || event.Date.Month() != 3 || event.Date.Year() != 2026 {
		t.Fatalf("unexpected parsed date %v", event.Date)
	}

	organiser, err := repo.GetOrganiser(ctx, "org-1")
	if err != nil {
		t.Fatalf("get organiser failed: %v", err)
	}
	if len(organiser.EventsManaged) != 1 || organiser.EventsManaged[0] != event.ID {
		t.Fatalf("organiser back-reference missing: %v", organiser.EventsManaged)
	}
}

func TestCreateEventRejectsBadDate(t *testing.T) {
	repo := memory.NewStore()
	seedOrganiser(t, repo, true)
	svc := newEventService(repo)

	for _, raw := range []string{"2026-03-15", "15/03/2026", "March 15 2026", ""} {
		_, err := svc.CreateEvent(context.Background(), ports.CreateEventInput{
			OrganiserID: "org-1",
			Name:        "GopherCon",
			Date:        raw,
		})
		if !errors.Is(err, domainerrors.ErrInvalidDate) {
			t.Fatalf("date %q: expected ErrInvalidDate, got %v", raw, err)
		}
	}
}

func TestUpdateEventRequiresEditPermission(t *testing.T) {
	repo := memory.NewStore()
	seedOrganiser(t, repo, true)
	svc := newEventService(repo)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, ports.CreateEventInput{
		OrganiserID: "org-1",
		Name:        "GopherCon",
		Date:        "15/March/2026",
	})
	if err != nil {
		t.Fatalf("create event failed: %v", err)
	}

	// Revoke the permission, keep the managed event.
	organiser, err := repo.GetOrganiser(ctx, "org-1")
	if err != nil {
		t.Fatalf("get organiser failed: %v", err)
	}
	organiser.Permissions.CanEditEvents = false
	if err := repo.SaveOrganiser(ctx, organiser); err != nil {
		t.Fatalf("save organiser failed: %v", err)
	}

	_, err = svc.UpdateEvent(ctx, event.ID, ports.UpdateEventInput{
		OrganiserID: "org-1",
		Name:        "GopherCon EU",
		Date:        "16/March/2026",
	})
	if !errors.Is(err, domainerrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if err := svc.DeleteEvent(ctx, "org-1", event.ID); !errors.Is(err, domainerrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied on delete, got %v", err)
	}

	// The event is untouched after both denials.
	stored, err := svc.GetEvent(ctx, event.ID)
	if err != nil {
		t.Fatalf("get event failed: %v", err)
	}
	if stored.Name != "GopherCon" {
		t.Fatalf("event must not change on denied update: %q", stored.Name)
	}
}

func TestUpdateAndDeleteEvent(t *testing.T) {
	repo := memory.NewStore()
	seedOrganiser(t, repo, true)
	svc := newEventService(repo)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, ports.CreateEventInput{
		OrganiserID: "org-1",
		Name:        "GopherCon",
		Date:        "15/March/2026",
	})
	if err != nil {
		t.Fatalf("create event failed: %v", err)
	}

	updated, err := svc.UpdateEvent(ctx, event.ID, ports.UpdateEventInput{
		OrganiserID: "org-1",
		Name:        "GopherCon EU",
		Description: "Moved to Berlin",
		Date:        "20/April/2026",
	})
	if err != nil {
		t.Fatalf("update event failed: %v", err)
	}
	if updated.Name != "GopherCon EU" || updated.Description != "Moved to Berlin" {
		t.Fatalf("unexpected update result %+v", updated)
	}

	if err := svc.DeleteEvent(ctx, "org-1", event.ID); err != nil {
		t.Fatalf("delete event failed: %v", err)
	}
	if _, err := svc.GetEvent(ctx, event.ID); !errors.Is(err, domainerrors.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound after delete, got %v", err)
	}
}

func TestCreateSessionLinksEvent(t *testing.T) {
	repo := memory.NewStore()
	seedOrganiser(t, repo, true)
	svc := newEventService(repo)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, ports.CreateEventInput{
		OrganiserID: "org-1",
		Name:        "GopherCon",
		Date:        "15/March/2026",
	})
	if err != nil {
		t.Fatalf("create event failed: %v", err)
	}

	session, err := svc.CreateSession(ctx, ports.CreateSessionInput{
		EventID: event.ID,
		Title:   "Generics in practice",
		Date:    "15/March/2026",
	})
	if err != nil {
		t.Fatalf("create session failed: %v", err)
	}
	if session.EventID != event.ID {
		t.Fatalf("session not linked to event: %+v", session)
	}

	stored, err := svc.GetEvent(ctx, event.ID)
	if err != nil {
		t.Fatalf("get event failed: %v", err)
	}
	if len(stored.Sessions) != 1 || stored.Sessions[0] != session.ID {
		t.Fatalf("event session list wrong: %v", stored.Sessions)
	}

	sessions, err := svc.ListEventSessions(ctx, event.ID)
	if err != nil {
		t.Fatalf("list sessions failed: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != session.ID {
		t.Fatalf("unexpected sessions %+v", sessions)
	}
}

func TestCreateSessionUnknownEvent(t *testing.T) {
	repo := memory.NewStore()
	seedOrganiser(t, repo, true)
	svc := newEventService(repo)

	_, err := svc.CreateSession(context.Background(), ports.CreateSessionInput{
		EventID: "evt-404",
		Title:   "Orphan talk",
		Date:    "15/March/2026",
	})
	if !errors.Is(err, domainerrors.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}
