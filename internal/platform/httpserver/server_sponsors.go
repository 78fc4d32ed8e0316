package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	sponsorerrors "confera/contexts/sponsorship/sponsor-service/domain/errors"
	sponsorhttp "confera/contexts/sponsorship/sponsor-service/transport/http"
)

func writeSponsorError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, sponsorhttp.ErrorResponse{Code: code, Message: message})
}

func writeSponsorDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sponsorerrors.ErrInvalidResource):
		writeSponsorError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, sponsorerrors.ErrSponsorNotFound):
		writeSponsorError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		writeSponsorError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleGetBooth(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireSponsor(w, r)
	if !ok {
		return
	}
	resp, err := s.modules.Sponsors.Handler.GetBoothHandler(r.Context(), claims.UserID)
	if err != nil {
		writeSponsorDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddBoothResource(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireSponsor(w, r)
	if !ok {
		return
	}
	var req sponsorhttp.AddResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSponsorError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.modules.Sponsors.Handler.AddResourceHandler(r.Context(), claims.UserID, req)
	if err != nil {
		writeSponsorDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}
