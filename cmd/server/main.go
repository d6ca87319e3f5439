package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	healthbot "github.com/arohealth/healthbot"
	"github.com/arohealth/healthbot/internal/assistant"
	"github.com/arohealth/healthbot/internal/auth"
	"github.com/arohealth/healthbot/internal/config"
	"github.com/arohealth/healthbot/internal/docs"
	"github.com/arohealth/healthbot/internal/handler"
	"github.com/arohealth/healthbot/internal/llm"
	"github.com/arohealth/healthbot/internal/middleware"
	"github.com/arohealth/healthbot/internal/ml"
	"github.com/arohealth/healthbot/internal/notify"
	"github.com/arohealth/healthbot/internal/repository"
	"github.com/arohealth/healthbot/internal/service"
	"github.com/arohealth/healthbot/internal/vector"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	migrationsFS, err := fs.Sub(healthbot.MigrationsFS, "migrations")
	if err != nil {
		slog.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	queries := repository.New(pool)

	alerter, err := notify.NewAlerter(cfg)
	if err != nil {
		slog.Error("failed to create alerter", "error", err)
		os.Exit(1)
	}
	if alerter == nil {
		slog.Info("telegram alerts disabled")
	}

	// Remote collaborators and the answer pipeline
	model := llm.NewClient(cfg)
	index := vector.NewClient(cfg)
	classifier := assistant.NewClassifier(model)
	retriever := assistant.NewRetriever(index)
	generator := assistant.NewGenerator(model, classifier, retriever, cfg.GlobalNamespace)
	titles := assistant.NewTitleGenerator(model)
	indexer := docs.NewIndexer(index)

	tokens := auth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)

	userService := service.NewUserService(queries, tokens)
	chatService := service.NewChatService(queries, generator, titles)
	documentService := service.NewDocumentService(queries, indexer, cfg.UploadDir)
	reportService := service.NewReportService(queries)

	// The ML model is optional; its endpoint degrades to 503 when missing.
	var predictor *ml.Classifier
	if predictor, err = ml.Load(cfg.MLModelPath); err != nil {
		slog.Warn("ml model not loaded", "path", cfg.MLModelPath, "error", err)
		predictor = nil
	}

	h := handler.New(handler.Deps{
		Cfg:       cfg,
		Users:     userService,
		Chats:     chatService,
		Documents: documentService,
		Reports:   reportService,
		Predictor: predictor,
		Queries:   queries,
		Alerter:   alerter,
	})

	r := chi.NewRouter()
	r.Use(middleware.Recover)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	h.Register(r, auth.Middleware(tokens, queries))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
