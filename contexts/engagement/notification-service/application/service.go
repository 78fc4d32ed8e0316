package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	domainerrors "confera/contexts/engagement/notification-service/domain/errors"
	"confera/contexts/engagement/notification-service/ports"
	"confera/internal/domain"
	"confera/internal/shared/events"
	"confera/internal/store"
)

type Service struct {
	Repo        ports.Notifications
	Publisher   ports.EventPublisher
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	ServiceName string
	Logger      *slog.Logger
}

// Broadcast appends the message to the event log, then fans out to the
// attendee set as it stood at that moment. Per-attendee failures are counted
// and reported once; there is no retry and no rollback of delivered inboxes.
func (s Service) Broadcast(ctx context.Context, eventID string, message string) (ports.BroadcastResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return ports.BroadcastResult{}, domainerrors.ErrEmptyMessage
	}

	event, err := s.Repo.AppendEventNotification(ctx, eventID, message)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ports.BroadcastResult{}, domainerrors.ErrEventNotFound
		}
		return ports.BroadcastResult{}, err
	}

	entry := domain.Notification{
		Message: message,
		Date:    s.now(),
		Read:    false,
	}

	result := ports.BroadcastResult{EventID: eventID, Message: message}
	for _, attendeeID := range event.Attendees {
		if err := s.Repo.AppendAttendeeNotification(ctx, attendeeID, entry); err != nil {
			result.Failed++
			ResolveLogger(s.Logger).Error("inbox append failed",
				"event", "notification_delivery_failed",
				"module", "engagement/notification-service",
				"layer", "application",
				"event_id", eventID,
				"attendee_id", attendeeID,
				"error", err.Error(),
			)
			continue
		}
		result.Delivered++
	}

	s.publishBroadcast(ctx, eventID, result)

	ResolveLogger(s.Logger).Info("notification broadcast",
		"event", "notification_broadcast",
		"module", "engagement/notification-service",
		"layer", "application",
		"event_id", eventID,
		"delivered", result.Delivered,
		"failed", result.Failed,
	)
	if result.Failed > 0 {
		return result, domainerrors.ErrPartialDelivery
	}
	return result, nil
}

// List returns the attendee's full inbox, oldest-first.
func (s Service) List(ctx context.Context, attendeeID string) ([]domain.Notification, error) {
	attendee, err := s.Repo.GetAttendee(ctx, attendeeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.ErrAttendeeNotFound
		}
		return nil, err
	}
	return attendee.Notifications, nil
}

// MarkAllRead flips every unread entry and returns the updated inbox. An
// inbox with nothing unread is still a success.
func (s Service) MarkAllRead(ctx context.Context, attendeeID string) ([]domain.Notification, error) {
	inbox, err := s.Repo.MarkAttendeeNotificationsRead(ctx, attendeeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.ErrAttendeeNotFound
		}
		return nil, err
	}
	return inbox, nil
}

func (s Service) publishBroadcast(ctx context.Context, eventID string, result ports.BroadcastResult) {
	if s.Publisher == nil {
		return
	}
	envelopeID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return
	}
	_ = s.Publisher.Publish(ctx, events.TopicNotifications, events.Envelope{
		EventID:        envelopeID,
		EventType:      events.TypeNotificationBroadcast,
		SourceService:  s.ServiceName,
		OccurredAtUTC:  s.now(),
		EntityType:     "event",
		EntityID:       eventID,
		PayloadVersion: 1,
		Payload: map[string]any{
			"event_id":  eventID,
			"delivered": result.Delivered,
			"failed":    result.Failed,
		},
	})
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
