package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	schedulingerrors "confera/contexts/programme/scheduling-service/domain/errors"
	schedulinghttp "confera/contexts/programme/scheduling-service/transport/http"
)

func writeSchedulingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, schedulinghttp.ErrorResponse{Code: code, Message: message})
}

func writeSchedulingDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, schedulingerrors.ErrSpeakerNotFound),
		errors.Is(err, schedulingerrors.ErrSessionNotFound),
		errors.Is(err, schedulingerrors.ErrAttendeeNotFound):
		writeSchedulingError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, schedulingerrors.ErrAlreadyAssigned):
		writeSchedulingError(w, http.StatusConflict, "already_assigned", err.Error())
	case errors.Is(err, schedulingerrors.ErrAlreadyJoined):
		writeSchedulingError(w, http.StatusConflict, "already_joined", err.Error())
	default:
		writeSchedulingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleAssignSpeaker(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireOrganiser(w, r); !ok {
		return
	}
	var req schedulinghttp.AssignSpeakerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSchedulingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	sessionID := strings.TrimSpace(r.PathValue("session_id"))
	resp, err := s.modules.Scheduling.Handler.AssignSpeakerHandler(r.Context(), sessionID, req)
	if err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleJoinSession(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireAttendee(w, r)
	if !ok {
		return
	}
	sessionID := strings.TrimSpace(r.PathValue("session_id"))
	resp, err := s.modules.Scheduling.Handler.JoinSessionHandler(r.Context(), claims.UserID, sessionID)
	if err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSpeakerAnalytics(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireSpeaker(w, r)
	if !ok {
		return
	}
	resp, err := s.modules.Scheduling.Handler.GetAnalyticsHandler(r.Context(), claims.UserID)
	if err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSpeakerSessions(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireSpeaker(w, r)
	if !ok {
		return
	}
	resp, err := s.modules.Scheduling.Handler.ListSpeakerSessionsHandler(r.Context(), claims.UserID)
	if err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authenticate(w, r, ""); !ok {
		return
	}
	sessionID := strings.TrimSpace(r.PathValue("session_id"))
	resp, err := s.modules.Scheduling.Handler.GetSessionHandler(r.Context(), sessionID)
	if err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListSpeakers(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireOrganiser(w, r); !ok {
		return
	}
	resp, err := s.modules.Scheduling.Handler.ListSpeakersHandler(r.Context())
	if err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetSpeaker(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireOrganiser(w, r); !ok {
		return
	}
	speakerID := strings.TrimSpace(r.PathValue("speaker_id"))
	resp, err := s.modules.Scheduling.Handler.GetSpeakerHandler(r.Context(), speakerID)
	if err != nil {
		writeSchedulingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
