package handler

import (
	"net/http"

	"github.com/arohealth/healthbot/internal/auth"
	"github.com/arohealth/healthbot/internal/domain"
)

func (h *Handler) SaveQuizScore(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFrom(r.Context())

	var req struct {
		Score int `json:"score"`
		Total int `json:"total"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Total <= 0 || req.Score < 0 || req.Score > req.Total {
		writeError(w, http.StatusBadRequest, "invalid score")
		return
	}

	saved, err := h.queries.SaveQuizScore(r.Context(), user.ID, req.Score, req.Total)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (h *Handler) MyQuizScores(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFrom(r.Context())

	scores, err := h.queries.ListQuizScores(r.Context(), user.ID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if scores == nil {
		scores = []domain.QuizScore{}
	}
	writeJSON(w, http.StatusOK, scores)
}
