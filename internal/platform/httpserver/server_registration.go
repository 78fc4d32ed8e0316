package httpserver

import (
	"errors"
	"net/http"
	"strings"

	registrationerrors "confera/contexts/engagement/registration-service/domain/errors"
	registrationhttp "confera/contexts/engagement/registration-service/transport/http"
)

func writeRegistrationError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, registrationhttp.ErrorResponse{Code: code, Message: message})
}

func writeRegistrationDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registrationerrors.ErrEventNotFound),
		errors.Is(err, registrationerrors.ErrAttendeeNotFound):
		writeRegistrationError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, registrationerrors.ErrAlreadyRegistered):
		writeRegistrationError(w, http.StatusConflict, "already_registered", err.Error())
	case errors.Is(err, registrationerrors.ErrRegistrationIncomplete):
		writeRegistrationError(w, http.StatusBadGateway, "registration_incomplete", err.Error())
	default:
		writeRegistrationError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireAttendee(w, r)
	if !ok {
		return
	}
	eventID := strings.TrimSpace(r.PathValue("event_id"))
	resp, err := s.modules.Registration.Handler.RegisterHandler(r.Context(), claims.UserID, eventID)
	if err != nil {
		writeRegistrationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRegisteredEvents(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireAttendee(w, r)
	if !ok {
		return
	}
	resp, err := s.modules.Registration.Handler.RegisteredEventsHandler(r.Context(), claims.UserID)
	if err != nil {
		writeRegistrationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEventAttendees(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireOrganiser(w, r); !ok {
		return
	}
	eventID := strings.TrimSpace(r.PathValue("event_id"))
	resp, err := s.modules.Registration.Handler.EventAttendeesHandler(r.Context(), eventID)
	if err != nil {
		writeRegistrationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
