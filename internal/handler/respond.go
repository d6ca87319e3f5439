package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/arohealth/healthbot/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// handleError maps domain errors onto HTTP statuses. Anything unknown is a
// 500 plus an ops alert.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		writeError(w, http.StatusConflict, "email already registered")
	case errors.Is(err, domain.ErrInvalidLogin):
		writeError(w, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, domain.ErrChatNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrDiseaseNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrEmptyMessage):
		writeError(w, http.StatusBadRequest, "message must not be empty")
	case errors.Is(err, domain.ErrInvalidRating):
		writeError(w, http.StatusBadRequest, "rating must be between 1 and 5")
	case errors.Is(err, domain.ErrEmptyFeedback):
		writeError(w, http.StatusBadRequest, "feedback message must not be empty")
	case errors.Is(err, domain.ErrFileTypeNotAllowed):
		writeError(w, http.StatusBadRequest, "file type not allowed")
	case errors.Is(err, domain.ErrRemoteUnavailable),
		errors.Is(err, domain.ErrMalformedResponse):
		slog.Error("assistant collaborator failed", "path", r.URL.Path, "error", err)
		h.alerter.Error(err, r.URL.Path)
		writeError(w, http.StatusBadGateway, "The assistant is temporarily unavailable. Please try again.")
	default:
		slog.Error("request failed", "path", r.URL.Path, "error", err)
		h.alerter.Error(err, r.URL.Path)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
