package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	accountserrors "confera/contexts/identity/accounts-service/domain/errors"
	accountshttp "confera/contexts/identity/accounts-service/transport/http"
	"confera/internal/domain"
)

func writeAccountsError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, accountshttp.ErrorResponse{Code: code, Message: message})
}

func writeAccountsDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accountserrors.ErrInvalidInput), errors.Is(err, accountserrors.ErrUnsupportedRole):
		writeAccountsError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, accountserrors.ErrEmailTaken):
		writeAccountsError(w, http.StatusConflict, "email_taken", err.Error())
	case errors.Is(err, accountserrors.ErrInvalidCredentials):
		writeAccountsError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
	case errors.Is(err, accountserrors.ErrAccountNotFound):
		writeAccountsError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		writeAccountsError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request, role string) {
	var req accountshttp.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAccountsError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.modules.Accounts.Handler.SignUpHandler(r.Context(), role, req)
	if err != nil {
		writeAccountsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request, role string) {
	var req accountshttp.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAccountsError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.modules.Accounts.Handler.SignInHandler(r.Context(), role, req)
	if err != nil {
		writeAccountsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request, role string) {
	claims, ok := s.authenticate(w, r, role)
	if !ok {
		return
	}
	resp, err := s.modules.Accounts.Handler.GetProfileHandler(r.Context(), role, claims.UserID)
	if err != nil {
		writeAccountsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request, role string) {
	claims, ok := s.authenticate(w, r, role)
	if !ok {
		return
	}
	var req accountshttp.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAccountsError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.modules.Accounts.Handler.UpdateProfileHandler(r.Context(), role, claims.UserID, req)
	if err != nil {
		writeAccountsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAttendeeSignUp(w http.ResponseWriter, r *http.Request) {
	s.handleSignUp(w, r, domain.RoleAttendee)
}

func (s *Server) handleAttendeeSignIn(w http.ResponseWriter, r *http.Request) {
	s.handleSignIn(w, r, domain.RoleAttendee)
}

func (s *Server) handleAttendeeGetProfile(w http.ResponseWriter, r *http.Request) {
	s.handleGetProfile(w, r, domain.RoleAttendee)
}

func (s *Server) handleAttendeeUpdateProfile(w http.ResponseWriter, r *http.Request) {
	s.handleUpdateProfile(w, r, domain.RoleAttendee)
}

func (s *Server) handleOrganiserSignUp(w http.ResponseWriter, r *http.Request) {
	s.handleSignUp(w, r, domain.RoleOrganiser)
}

func (s *Server) handleOrganiserSignIn(w http.ResponseWriter, r *http.Request) {
	s.handleSignIn(w, r, domain.RoleOrganiser)
}

func (s *Server) handleOrganiserGetProfile(w http.ResponseWriter, r *http.Request) {
	s.handleGetProfile(w, r, domain.RoleOrganiser)
}

func (s *Server) handleOrganiserUpdateProfile(w http.ResponseWriter, r *http.Request) {
	s.handleUpdateProfile(w, r, domain.RoleOrganiser)
}

func (s *Server) handleSpeakerSignUp(w http.ResponseWriter, r *http.Request) {
	s.handleSignUp(w, r, domain.RoleSpeaker)
}

func (s *Server) handleSpeakerSignIn(w http.ResponseWriter, r *http.Request) {
	s.handleSignIn(w, r, domain.RoleSpeaker)
}

func (s *Server) handleSpeakerGetProfile(w http.ResponseWriter, r *http.Request) {
	s.handleGetProfile(w, r, domain.RoleSpeaker)
}

func (s *Server) handleSpeakerUpdateProfile(w http.ResponseWriter, r *http.Request) {
	s.handleUpdateProfile(w, r, domain.RoleSpeaker)
}

func (s *Server) handleSponsorSignUp(w http.ResponseWriter, r *http.Request) {
	s.handleSignUp(w, r, domain.RoleSponsor)
}

func (s *Server) handleSponsorSignIn(w http.ResponseWriter, r *http.Request) {
	s.handleSignIn(w, r, domain.RoleSponsor)
}

func (s *Server) handleSponsorGetProfile(w http.ResponseWriter, r *http.Request) {
	s.handleGetProfile(w, r, domain.RoleSponsor)
}

func (s *Server) handleSponsorUpdateProfile(w http.ResponseWriter, r *http.Request) {
	s.handleUpdateProfile(w, r, domain.RoleSponsor)
}
