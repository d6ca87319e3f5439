package handler

import (
	"net/http"
	"strings"

	"github.com/arohealth/healthbot/internal/auth"
	"github.com/arohealth/healthbot/internal/config"
	"github.com/arohealth/healthbot/internal/domain"
)

func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFrom(r.Context())

	var req struct {
		Rating   int    `json:"rating"`
		Category string `json:"category"`
		Message  string `json:"message"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Rating < config.MinRating || req.Rating > config.MaxRating {
		h.handleError(w, r, domain.ErrInvalidRating)
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		h.handleError(w, r, domain.ErrEmptyFeedback)
		return
	}
	if strings.TrimSpace(req.Category) == "" {
		req.Category = "general"
	}

	saved, err := h.queries.SaveFeedback(r.Context(), user.ID, req.Rating, req.Category, req.Message)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.alerter.Feedback(user.ID, req.Rating, req.Category, req.Message)

	writeJSON(w, http.StatusCreated, saved)
}

func (h *Handler) MyFeedback(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFrom(r.Context())

	items, err := h.queries.ListFeedback(r.Context(), user.ID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.Feedback{}
	}
	writeJSON(w, http.StatusOK, items)
}
