package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/arohealth/healthbot/internal/assistant"
	"github.com/arohealth/healthbot/internal/docs"
	"github.com/arohealth/healthbot/internal/domain"
	"github.com/arohealth/healthbot/internal/repository"
)

// allowedUploadExts mirrors the file picker on the frontend. Anything else is
// rejected before touching disk.
var allowedUploadExts = map[string]bool{
	".pdf":  true,
	".txt":  true,
	".md":   true,
	".html": true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

type DocumentService struct {
	queries   *repository.Queries
	indexer   *docs.Indexer
	uploadDir string
}

func NewDocumentService(queries *repository.Queries, indexer *docs.Indexer, uploadDir string) *DocumentService {
	return &DocumentService{queries: queries, indexer: indexer, uploadDir: uploadDir}
}

// Upload stores one file for a chat and indexes its text into the chat's own
// knowledge namespace, making it available to the answer pipeline. PDF and
// image uploads are indexed from a pre-extracted .txt sidecar when present,
// and are otherwise stored without being searchable.
func (s *DocumentService) Upload(ctx context.Context, userID, chatID int64, filename string, r io.Reader) (*domain.Document, error) {
	if _, err := s.queries.GetUserChat(ctx, userID, chatID); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedUploadExts[ext] {
		return nil, domain.ErrFileTypeNotAllowed
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	safeName := fmt.Sprintf("%d_%s%s", chatID, strings.ReplaceAll(uuid.NewString(), "-", ""), ext)
	path := filepath.Join(s.uploadDir, safeName)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("save upload: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("save upload: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("save upload: %w", err)
	}

	doc, err := s.queries.AddDocument(ctx, chatID, filename, path)
	if err != nil {
		return nil, err
	}

	text, err := docs.ExtractText(path)
	if err != nil {
		return nil, err
	}
	if text == "" {
		if raw, err := os.ReadFile(path + ".txt"); err == nil {
			text = strings.TrimSpace(string(raw))
		}
	}
	if text != "" {
		ns := assistant.ChatNamespace(chatID)
		if err := s.indexer.IndexText(ctx, ns, filename, text, chatID); err != nil {
			return nil, fmt.Errorf("index upload: %w", err)
		}
	}

	if err := s.queries.TouchChat(ctx, chatID); err != nil {
		return nil, err
	}
	return doc, nil
}
