package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	notificationerrors "confera/contexts/engagement/notification-service/domain/errors"
	notificationhttp "confera/contexts/engagement/notification-service/transport/http"
)

func writeNotificationError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, notificationhttp.ErrorResponse{Code: code, Message: message})
}

func writeNotificationDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, notificationerrors.ErrEmptyMessage):
		writeNotificationError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, notificationerrors.ErrEventNotFound),
		errors.Is(err, notificationerrors.ErrAttendeeNotFound):
		writeNotificationError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, notificationerrors.ErrPartialDelivery):
		writeNotificationError(w, http.StatusBadGateway, "partial_delivery", err.Error())
	default:
		writeNotificationError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleBroadcast(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireOrganiser(w, r); !ok {
		return
	}
	var req notificationhttp.BroadcastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeNotificationError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	eventID := strings.TrimSpace(r.PathValue("event_id"))
	resp, err := s.modules.Notifications.Handler.BroadcastHandler(r.Context(), eventID, req)
	if err != nil {
		writeNotificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireAttendee(w, r)
	if !ok {
		return
	}
	resp, err := s.modules.Notifications.Handler.ListHandler(r.Context(), claims.UserID)
	if err != nil {
		writeNotificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMarkNotificationsRead(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireAttendee(w, r)
	if !ok {
		return
	}
	resp, err := s.modules.Notifications.Handler.MarkAllReadHandler(r.Context(), claims.UserID)
	if err != nil {
		writeNotificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
