package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/arohealth/healthbot/internal/symptom"
)

func (h *Handler) ListDiseases(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	writeJSON(w, http.StatusOK, symptom.ListDiseases(q, category))
}

func (h *Handler) GetDisease(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "diseaseID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid disease id")
		return
	}

	disease, err := symptom.GetDisease(id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, disease)
}
