package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	pollerrors "confera/contexts/programme/poll-service/domain/errors"
	pollhttp "confera/contexts/programme/poll-service/transport/http"
)

func writePollError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, pollhttp.ErrorResponse{Code: code, Message: message})
}

func writePollDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pollerrors.ErrInvalidQuestion),
		errors.Is(err, pollerrors.ErrNotEnoughOptions),
		errors.Is(err, pollerrors.ErrUnknownOption):
		writePollError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, pollerrors.ErrSessionNotFound),
		errors.Is(err, pollerrors.ErrPollNotFound):
		writePollError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		writePollError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleCreatePoll(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireSpeaker(w, r); !ok {
		return
	}
	var req pollhttp.CreatePollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePollError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	sessionID := strings.TrimSpace(r.PathValue("session_id"))
	resp, err := s.modules.Polls.Handler.CreatePollHandler(r.Context(), sessionID, req)
	if err != nil {
		writePollDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListPolls(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAttendee(w, r); !ok {
		return
	}
	sessionID := strings.TrimSpace(r.PathValue("session_id"))
	resp, err := s.modules.Polls.Handler.ListPollsHandler(r.Context(), sessionID)
	if err != nil {
		writePollDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleVote(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAttendee(w, r); !ok {
		return
	}
	var req pollhttp.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePollError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	sessionID := strings.TrimSpace(r.PathValue("session_id"))
	pollID := strings.TrimSpace(r.PathValue("poll_id"))
	resp, err := s.modules.Polls.Handler.VoteHandler(r.Context(), sessionID, pollID, req)
	if err != nil {
		writePollDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePollResults(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireSpeaker(w, r); !ok {
		return
	}
	sessionID := strings.TrimSpace(r.PathValue("session_id"))
	pollID := strings.TrimSpace(r.PathValue("poll_id"))
	resp, err := s.modules.Polls.Handler.PollResultsHandler(r.Context(), sessionID, pollID)
	if err != nil {
		writePollDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
