package handler

import (
	"net/http"
	"os"

	"github.com/arohealth/healthbot/internal/auth"
)

func (h *Handler) ReportSummary(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFrom(r.Context())

	summary, err := h.reports.Summary(r.Context(), user.ID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// MLMetrics serves the training run's metrics file verbatim.
func (h *Handler) MLMetrics(w http.ResponseWriter, r *http.Request) {
	raw, err := os.ReadFile(h.cfg.MLMetricsPath)
	if err != nil {
		writeError(w, http.StatusNotFound, "metrics not available")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(raw)
}
