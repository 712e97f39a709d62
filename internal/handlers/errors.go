package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"weddingrsvp/internal/service"
	"weddingrsvp/internal/validation"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondWithError(w http.ResponseWriter, r *http.Request, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		event := zerolog.Ctx(r.Context()).Warn()
		if status >= http.StatusInternalServerError {
			event = zerolog.Ctx(r.Context()).Error()
		}
		event.Err(err).Int("status", status).Msg(logMsg)
	}

	writeJSON(w, status, errorResponse{Error: userMsg})
}

// respondWithServiceError classifies err and writes the matching status and message
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if ve, ok := validation.AsValidationError(err); ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: ve.Message, Field: ve.Field})
		return
	}

	switch {
	case errors.Is(err, service.ErrEmptyQuery):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Please enter your name.", Field: "query"})
	case errors.Is(err, service.ErrInvalidPartyCode):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Field: "code"})
	case errors.Is(err, service.ErrNoMembersSelected),
		errors.Is(err, service.ErrUnknownMember),
		errors.Is(err, service.ErrMemberNotSelected):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrGuestNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: ErrGuestNotFound})
	case errors.Is(err, service.ErrNoSuchGuest), errors.Is(err, service.ErrPartyNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, errorResponse{Error: ErrConflict})
	case errors.Is(err, service.ErrPartyCodeTaken):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Field: "code"})
	case errors.Is(err, service.ErrStoreUnavailable):
		respondWithError(w, r, http.StatusServiceUnavailable, ErrServiceUnavailable, "Store unavailable", err)
	default:
		respondWithError(w, r, http.StatusInternalServerError, ErrInternalServerError, "Unhandled error", err)
	}
}

// decodeJSON reads a bounded JSON body into v
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondWithError(w, r, http.StatusBadRequest, ErrInvalidJSON, "Error decoding request body", err)
		return false
	}
	return true
}
