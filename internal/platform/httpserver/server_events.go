package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	eventerrors "confera/contexts/programme/event-service/domain/errors"
	eventhttp "confera/contexts/programme/event-service/transport/http"
)

func writeEventError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, eventhttp.ErrorResponse{Code: code, Message: message})
}

func writeEventDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, eventerrors.ErrInvalidInput), errors.Is(err, eventerrors.ErrInvalidDate):
		writeEventError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, eventerrors.ErrOrganiserNotFound),
		errors.Is(err, eventerrors.ErrEventNotFound),
		errors.Is(err, eventerrors.ErrSessionNotFound):
		writeEventError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, eventerrors.ErrPermissionDenied):
		writeEventError(w, http.StatusForbidden, "forbidden", err.Error())
	default:
		writeEventError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireOrganiser(w, r)
	if !ok {
		return
	}
	var req eventhttp.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEventError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.modules.Events.Handler.CreateEventHandler(r.Context(), claims.UserID, req)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	resp, err := s.modules.Events.Handler.ListEventsHandler(r.Context())
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := strings.TrimSpace(r.PathValue("event_id"))
	resp, err := s.modules.Events.Handler.GetEventHandler(r.Context(), eventID)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireOrganiser(w, r)
	if !ok {
		return
	}
	var req eventhttp.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEventError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	eventID := strings.TrimSpace(r.PathValue("event_id"))
	resp, err := s.modules.Events.Handler.UpdateEventHandler(r.Context(), claims.UserID, eventID, req)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireOrganiser(w, r)
	if !ok {
		return
	}
	eventID := strings.TrimSpace(r.PathValue("event_id"))
	resp, err := s.modules.Events.Handler.DeleteEventHandler(r.Context(), claims.UserID, eventID)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireOrganiser(w, r); !ok {
		return
	}
	var req eventhttp.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEventError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	eventID := strings.TrimSpace(r.PathValue("event_id"))
	resp, err := s.modules.Events.Handler.CreateSessionHandler(r.Context(), eventID, req)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateSession(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireOrganiser(w, r); !ok {
		return
	}
	var req eventhttp.UpdateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEventError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	sessionID := strings.TrimSpace(r.PathValue("session_id"))
	resp, err := s.modules.Events.Handler.UpdateSessionHandler(r.Context(), sessionID, req)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireOrganiser(w, r); !ok {
		return
	}
	sessionID := strings.TrimSpace(r.PathValue("session_id"))
	resp, err := s.modules.Events.Handler.DeleteSessionHandler(r.Context(), sessionID)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListEventSessions(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireOrganiser(w, r); !ok {
		return
	}
	eventID := strings.TrimSpace(r.PathValue("event_id"))
	resp, err := s.modules.Events.Handler.ListEventSessionsHandler(r.Context(), eventID)
	if err != nil {
		writeEventDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
