package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/arohealth/healthbot/internal/config"
	"github.com/arohealth/healthbot/internal/vector"
)

// Index is the vector-search collaborator. Embed must use the same model the
// passages were indexed with; the retriever always embeds in query mode.
type Index interface {
	Embed(ctx context.Context, texts []string, mode vector.EmbedMode) ([][]float32, error)
	Query(ctx context.Context, namespace string, vec []float32, topK int) ([]vector.Match, error)
}

// ChatNamespace derives the per-chat knowledge namespace. Only material
// uploaded into that chat ever lands there.
func ChatNamespace(chatID int64) string {
	return fmt.Sprintf("chat-%d", chatID)
}

// Retriever assembles request-scoped supporting context from one namespace of
// the vector index. Results are never cached or persisted.
type Retriever struct {
	index Index
	topK  int
}

func NewRetriever(index Index) *Retriever {
	return &Retriever{index: index, topK: config.TopK}
}

// Retrieve embeds the query, searches exactly one namespace and concatenates
// the stored passage texts with blank lines, best match first. An empty
// string is a legitimate outcome and distinct from an error: the caller picks
// the fallback path on empty context but aborts on a failed retrieval.
func (r *Retriever) Retrieve(ctx context.Context, namespace, query string) (string, error) {
	vecs, err := r.index.Embed(ctx, []string{query}, vector.ModeQuery)
	if err != nil {
		return "", fmt.Errorf("embed query: %w", err)
	}

	matches, err := r.index.Query(ctx, namespace, vecs[0], r.topK)
	if err != nil {
		return "", fmt.Errorf("search: %w", err)
	}

	var texts []string
	for _, m := range matches {
		// Matches without a stored text passage are unusable, skip them.
		if t, ok := m.Metadata["text"].(string); ok && t != "" {
			texts = append(texts, t)
		}
	}

	return strings.TrimSpace(strings.Join(texts, "\n\n")), nil
}

// RetrieveForChat searches the chat's own namespace.
func (r *Retriever) RetrieveForChat(ctx context.Context, chatID int64, query string) (string, error) {
	return r.Retrieve(ctx, ChatNamespace(chatID), query)
}
