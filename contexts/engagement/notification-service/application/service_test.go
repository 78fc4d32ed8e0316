package application

import (
	"context"
	"errors"
	"testing"

	domainerrors "confera/contexts/engagement/notification-service/domain/errors"
	"confera/contexts/engagement/notification-service/ports"
	"confera/internal/domain"
	"confera/internal/store"
	"confera/internal/store/memory"
)

type flakyInboxRepo struct {
	ports.Notifications
	failFor string
}

func (r flakyInboxRepo) AppendAttendeeNotification(ctx context.Context, attendeeID string, notification domain.Notification) error {
	if attendeeID == r.failFor {
		return errors.New("inbox write rejected")
	}
	return r.Notifications.AppendAttendeeNotification(ctx, attendeeID, notification)
}

func seedBroadcast(t *testing.T, s *memory.Store) {
	t.Helper()
	ctx := context.Background()
	for _, id := range []string{"att-1", "att-2"} {
		if err := s.SaveAttendee(ctx, domain.Attendee{ID: id}); err != nil {
			t.Fatalf("seed attendee failed: %v", err)
		}
	}
	// att-3 is not registered for the event and must stay untouched.
	if err := s.SaveAttendee(ctx, domain.Attendee{ID: "att-3"}); err != nil {
		t.Fatalf("seed attendee failed: %v", err)
	}
	if err := s.SaveEvent(ctx, domain.Event{ID: "evt-1", Name: "GopherCon", Attendees: []string{"att-1", "att-2"}}); err != nil {
		t.Fatalf("seed event failed: %v", err)
	}
}

func TestBroadcastFansOutToRegisteredAttendees(t *testing.T) {
	repo := memory.NewStore()
	seedBroadcast(t, repo)
	svc := Service{Repo: repo, Clock: store.SystemClock{}, IDGen: store.UUIDGenerator{}, ServiceName: "test"}
	ctx := context.Background()

	result, err := svc.Broadcast(ctx, "evt-1", "  Doors open at nine.  ")
	if err != nil {
		t.Fatalf("broadcast failed: %v", err)
	}
	if result.Delivered != 2 || result.Failed != 0 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if result.Message != "Doors open at nine." {
		t.Fatalf("expected trimmed message, got %q", result.Message)
	}

	event, err := repo.GetEvent(ctx, "evt-1")
	if err != nil {
		t.Fatalf("get event failed: %v", err)
	}
	if len(event.Notifications) != 1 || event.Notifications[0] != "Doors open at nine." {
		t.Fatalf("event log not appended: %v", event.Notifications)
	}

	for _, id := range []string{"att-1", "att-2"} {
		attendee, err := repo.GetAttendee(ctx, id)
		if err != nil {
			t.Fatalf("get attendee failed: %v", err)
		}
		if len(attendee.Notifications) != 1 || attendee.Notifications[0].Read {
			t.Fatalf("attendee %s inbox wrong: %+v", id, attendee.Notifications)
		}
	}
	bystander, err := repo.GetAttendee(ctx, "att-3")
	if err != nil {
		t.Fatalf("get attendee failed: %v", err)
	}
	if len(bystander.Notifications) != 0 {
		t.Fatalf("unregistered attendee must not receive the broadcast")
	}
}

func TestBroadcastEmptyMessage(t *testing.T) {
	svc := Service{Repo: memory.NewStore(), IDGen: store.UUIDGenerator{}}
	if _, err := svc.Broadcast(context.Background(), "evt-1", "   "); !errors.Is(err, domainerrors.ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestBroadcastUnknownEvent(t *testing.T) {
	svc := Service{Repo: memory.NewStore(), IDGen: store.UUIDGenerator{}}
	if _, err := svc.Broadcast(context.Background(), "evt-404", "hello"); !errors.Is(err, domainerrors.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestBroadcastPartialDelivery(t *testing.T) {
	repo := memory.NewStore()
	seedBroadcast(t, repo)
	svc := Service{
		Repo:        flakyInboxRepo{Notifications: repo, failFor: "att-2"},
		IDGen:       store.UUIDGenerator{},
		ServiceName: "test",
	}
	ctx := context.Background()

	result, err := svc.Broadcast(ctx, "evt-1", "partial run")
	if !errors.Is(err, domainerrors.ErrPartialDelivery) {
		t.Fatalf("expected ErrPartialDelivery, got %v", err)
	}
	if result.Delivered != 1 || result.Failed != 1 {
		t.Fatalf("unexpected counts: %+v", result)
	}

	// The event log keeps the entry even though one inbox write failed.
	event, err := repo.GetEvent(ctx, "evt-1")
	if err != nil {
		t.Fatalf("get event failed: %v", err)
	}
	if len(event.Notifications) != 1 {
		t.Fatalf("event log should retain the broadcast: %v", event.Notifications)
	}
}

func TestMarkAllRead(t *testing.T) {
	repo := memory.NewStore()
	seedBroadcast(t, repo)
	svc := Service{Repo: repo, IDGen: store.UUIDGenerator{}, ServiceName: "test"}
	ctx := context.Background()

	if _, err := svc.Broadcast(ctx, "evt-1", "read me"); err != nil {
		t.Fatalf("broadcast failed: %v", err)
	}

	inbox, err := svc.MarkAllRead(ctx, "att-1")
	if err != nil {
		t.Fatalf("mark all read failed: %v", err)
	}
	if len(inbox) != 1 || !inbox[0].Read {
		t.Fatalf("expected a read inbox, got %+v", inbox)
	}

	// Nothing unread is still a success.
	if _, err := svc.MarkAllRead(ctx, "att-3"); err != nil {
		t.Fatalf("mark all read on empty inbox failed: %v", err)
	}

	if _, err := svc.MarkAllRead(ctx, "att-404"); !errors.Is(err, domainerrors.ErrAttendeeNotFound) {
		t.Fatalf("expected ErrAttendeeNotFound, got %v", err)
	}
}
