package handler

import (
	"net/http"

	"github.com/arohealth/healthbot/internal/symptom"
)

type symptomsRequest struct {
	Symptoms []string `json:"symptoms"`
	TopK     int      `json:"top_k"`
}

func (h *Handler) AnalyzeSymptoms(w http.ResponseWriter, r *http.Request) {
	var req symptomsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Symptoms) == 0 {
		writeError(w, http.StatusBadRequest, "select at least one symptom")
		return
	}
	writeJSON(w, http.StatusOK, symptom.Analyze(req.Symptoms))
}

func (h *Handler) PredictML(w http.ResponseWriter, r *http.Request) {
	if h.predictor == nil {
		writeError(w, http.StatusServiceUnavailable, "ml model not loaded")
		return
	}

	var req symptomsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Symptoms) == 0 {
		writeError(w, http.StatusBadRequest, "select at least one symptom")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"predictions": h.predictor.Predict(req.Symptoms, req.TopK),
	})
}
