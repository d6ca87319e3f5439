package docs

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arohealth/healthbot/internal/config"
	"github.com/arohealth/healthbot/internal/vector"
)

type fakeIndex struct {
	embedBatches [][]string
	modes        []vector.EmbedMode
	upserts      map[string][]vector.Vector
}

func (f *fakeIndex) Embed(_ context.Context, texts []string, mode vector.EmbedMode) ([][]float32, error) {
	f.embedBatches = append(f.embedBatches, texts)
	f.modes = append(f.modes, mode)
	out := make([][]float32, len(texts))
	for i := range out {
		out[i] = []float32{0.5}
	}
	return out, nil
}

func (f *fakeIndex) Upsert(_ context.Context, namespace string, vecs []vector.Vector) error {
	if f.upserts == nil {
		f.upserts = map[string][]vector.Vector{}
	}
	f.upserts[namespace] = append(f.upserts[namespace], vecs...)
	return nil
}

func TestIndexTextBatchesAndStampsMetadata(t *testing.T) {
	index := &fakeIndex{}
	ix := NewIndexer(index)

	// Long enough to produce more chunks than one upsert batch.
	text := strings.Repeat("passage text for the corpus. ", 600)
	err := ix.IndexText(context.Background(), "chat-9", "guide.txt", text, 9)
	require.NoError(t, err)

	require.NotEmpty(t, index.embedBatches)
	for i, batch := range index.embedBatches {
		assert.LessOrEqual(t, len(batch), config.UpsertBatch, "batch %d", i)
		assert.Equal(t, vector.ModePassage, index.modes[i])
	}

	vecs := index.upserts["chat-9"]
	require.NotEmpty(t, vecs)
	seen := map[string]bool{}
	for _, v := range vecs {
		assert.False(t, seen[v.ID], "vector ids must be unique")
		seen[v.ID] = true
		assert.Equal(t, "guide.txt", v.Metadata["source"])
		assert.Equal(t, int64(9), v.Metadata["chat_id"])
		assert.NotEmpty(t, v.Metadata["text"])
	}
}

func TestIndexTextGlobalCorpusHasNoChatStamp(t *testing.T) {
	index := &fakeIndex{}
	ix := NewIndexer(index)

	err := ix.IndexText(context.Background(), "global", "corpus.md", "dengue is mosquito-borne", 0)
	require.NoError(t, err)

	vecs := index.upserts["global"]
	require.Len(t, vecs, 1)
	_, ok := vecs[0].Metadata["chat_id"]
	assert.False(t, ok)
}

func TestIndexTextEmptyIsNoop(t *testing.T) {
	index := &fakeIndex{}
	ix := NewIndexer(index)

	require.NoError(t, ix.IndexText(context.Background(), "ns", "empty.txt", "   ", 1))
	assert.Empty(t, index.embedBatches)
	assert.Empty(t, index.upserts)
}
