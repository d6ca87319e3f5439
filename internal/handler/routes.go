package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Register mounts every endpoint on the router. Everything except /ping and
// the auth pair sits behind the bearer middleware.
func (h *Handler) Register(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)

		r.Route("/chat", func(r chi.Router) {
			r.Post("/new", h.NewChat)
			r.Get("/list", h.ListChats)
			r.Get("/{chatID}/messages", h.ChatMessages)
			r.Put("/{chatID}/rename", h.RenameChat)
			r.Delete("/{chatID}", h.DeleteChat)
			r.Post("/{chatID}/share", h.ShareChat)
			r.Post("/{chatID}/upload", h.UploadDocument)
			r.Post("/{chatID}/send", h.SendMessage)
		})

		r.Route("/diseases", func(r chi.Router) {
			r.Get("/list", h.ListDiseases)
			r.Get("/{diseaseID}", h.GetDisease)
		})

		r.Route("/symptom", func(r chi.Router) {
			r.Post("/analyze", h.AnalyzeSymptoms)
			r.Post("/predict-ml", h.PredictML)
		})

		r.Route("/api", func(r chi.Router) {
			r.Post("/quiz/save", h.SaveQuizScore)
			r.Get("/quiz/my-scores", h.MyQuizScores)
			r.Post("/feedback/submit", h.SubmitFeedback)
			r.Get("/feedback/my", h.MyFeedback)
			r.Get("/reports/summary", h.ReportSummary)
			r.Get("/reports/ml-metrics", h.MLMetrics)
		})
	})
}
