package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"confera/contexts/engagement/notification-service/application"
	httptransport "confera/contexts/engagement/notification-service/transport/http"
	"confera/internal/domain"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) BroadcastHandler(ctx context.Context, eventID string, req httptransport.BroadcastRequest) (httptransport.BroadcastResponse, error) {
	result, err := h.Service.Broadcast(ctx, eventID, req.Message)
	if err != nil {
		return httptransport.BroadcastResponse{
			EventID:   result.EventID,
			Delivered: result.Delivered,
			Failed:    result.Failed,
		}, err
	}
	return httptransport.BroadcastResponse{
		Message:   "Notification sent to all attendees",
		EventID:   result.EventID,
		Delivered: result.Delivered,
		Failed:    result.Failed,
	}, nil
}

func (h Handler) ListHandler(ctx context.Context, attendeeID string) (httptransport.NotificationsResponse, error) {
	inbox, err := h.Service.List(ctx, attendeeID)
	if err != nil {
		return httptransport.NotificationsResponse{}, err
	}
	return httptransport.NotificationsResponse{
		Message:       "Notifications fetched successfully",
		Notifications: notificationDTOs(inbox),
	}, nil
}

func (h Handler) MarkAllReadHandler(ctx context.Context, attendeeID string) (httptransport.NotificationsResponse, error) {
	inbox, err := h.Service.MarkAllRead(ctx, attendeeID)
	if err != nil {
		return httptransport.NotificationsResponse{}, err
	}
	message := "Notifications marked as read"
	if len(inbox) == 0 {
		message = "No new notifications"
	}
	return httptransport.NotificationsResponse{
		Message:       message,
		Notifications: notificationDTOs(inbox),
	}, nil
}

func notificationDTOs(inbox []domain.Notification) []httptransport.NotificationDTO {
	items := make([]httptransport.NotificationDTO, 0, len(inbox))
	for _, entry := range inbox {
		items = append(items, httptransport.NotificationDTO{
			Message: entry.Message,
			Date:    entry.Date.UTC().Format(time.RFC3339),
			Read:    entry.Read,
		})
	}
	return items
}
