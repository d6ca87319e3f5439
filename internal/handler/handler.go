package handler

import (
	"github.com/arohealth/healthbot/internal/config"
	"github.com/arohealth/healthbot/internal/ml"
	"github.com/arohealth/healthbot/internal/notify"
	"github.com/arohealth/healthbot/internal/repository"
	"github.com/arohealth/healthbot/internal/service"
)

// Handler holds all dependencies needed by the HTTP endpoints.
type Handler struct {
	cfg       *config.Config
	users     *service.UserService
	chats     *service.ChatService
	documents *service.DocumentService
	reports   *service.ReportService
	predictor *ml.Classifier
	queries   *repository.Queries
	alerter   *notify.Alerter
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Cfg       *config.Config
	Users     *service.UserService
	Chats     *service.ChatService
	Documents *service.DocumentService
	Reports   *service.ReportService
	Predictor *ml.Classifier
	Queries   *repository.Queries
	Alerter   *notify.Alerter
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		cfg:       deps.Cfg,
		users:     deps.Users,
		chats:     deps.Chats,
		documents: deps.Documents,
		reports:   deps.Reports,
		predictor: deps.Predictor,
		queries:   deps.Queries,
		alerter:   deps.Alerter,
	}
}
