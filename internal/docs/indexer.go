package docs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/arohealth/healthbot/internal/config"
	"github.com/arohealth/healthbot/internal/vector"
)

// Index is the slice of the vector client the indexer needs. Passages are
// always embedded in passage mode; the retriever owns query mode.
type Index interface {
	Embed(ctx context.Context, texts []string, mode vector.EmbedMode) ([][]float32, error)
	Upsert(ctx context.Context, namespace string, vecs []vector.Vector) error
}

// Indexer chunks document text, embeds the chunks and upserts them into a
// knowledge namespace.
type Indexer struct {
	index Index
}

func NewIndexer(index Index) *Indexer {
	return &Indexer{index: index}
}

// IndexFile extracts, chunks and indexes one file. A chatID > 0 stamps the
// chunks with the owning chat. Files with no extractable text are skipped
// silently, matching the empty-upload behavior of the uploader.
func (ix *Indexer) IndexFile(ctx context.Context, namespace, path string, chatID int64) error {
	text, err := ExtractText(path)
	if err != nil {
		return err
	}
	return ix.IndexText(ctx, namespace, filepath.Base(path), text, chatID)
}

// IndexText chunks and indexes already-extracted text under a source name.
func (ix *Indexer) IndexText(ctx context.Context, namespace, source, text string, chatID int64) error {
	chunks := ChunkText(strings.TrimSpace(text), config.ChunkSize, config.ChunkOverlap)
	if len(chunks) == 0 {
		return nil
	}

	// Small batches keep individual embed requests well under provider limits.
	for i := 0; i < len(chunks); i += config.UpsertBatch {
		end := i + config.UpsertBatch
		if end > len(chunks) {
			end = len(chunks)
		}
		part := chunks[i:end]

		vecs, err := ix.index.Embed(ctx, part, vector.ModePassage)
		if err != nil {
			return fmt.Errorf("embed passages: %w", err)
		}

		items := make([]vector.Vector, len(part))
		for j, chunk := range part {
			metadata := map[string]any{
				"source": source,
				"text":   chunk,
			}
			if chatID > 0 {
				metadata["chat_id"] = chatID
			}
			items[j] = vector.Vector{
				ID:       uuid.NewString(),
				Values:   vecs[j],
				Metadata: metadata,
			}
		}

		if err := ix.index.Upsert(ctx, namespace, items); err != nil {
			return fmt.Errorf("upsert passages: %w", err)
		}
	}
	return nil
}
