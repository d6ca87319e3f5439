package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/arohealth/healthbot/internal/config"
	"github.com/arohealth/healthbot/internal/docs"
	"github.com/arohealth/healthbot/internal/vector"
)

// ingestExts lists the corpus file types picked up from DATA_DIR. PDFs with a
// pre-extracted .txt sidecar are indexed through the sidecar.
var ingestExts = map[string]bool{
	".pdf":  true,
	".txt":  true,
	".md":   true,
	".html": true,
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	indexer := docs.NewIndexer(vector.NewClient(cfg))

	var indexed, skipped int
	err = filepath.WalkDir(cfg.DataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !ingestExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		text, err := docs.ExtractText(path)
		if err != nil {
			slog.Warn("failed to extract text", "path", path, "error", err)
			skipped++
			return nil
		}
		if text == "" {
			if raw, readErr := os.ReadFile(path + ".txt"); readErr == nil {
				text = strings.TrimSpace(string(raw))
			}
		}
		if text == "" {
			slog.Warn("no extractable text, skipping", "path", path)
			skipped++
			return nil
		}

		if err := indexer.IndexText(ctx, cfg.GlobalNamespace, filepath.Base(path), text, 0); err != nil {
			return err
		}
		slog.Info("indexed", "path", path, "chars", len(text))
		indexed++
		return nil
	})
	if err != nil {
		slog.Error("ingest failed", "error", err)
		os.Exit(1)
	}

	slog.Info("ingest complete",
		"namespace", cfg.GlobalNamespace,
		"indexed", indexed,
		"skipped", skipped,
	)
}
