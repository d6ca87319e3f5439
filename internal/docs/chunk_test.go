package docs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkTextWindows(t *testing.T) {
	text := strings.Repeat("a", 25)
	chunks := ChunkText(text, 10, 3)

	require.Len(t, chunks, 4)
	assert.Equal(t, 10, len(chunks[0]))
	assert.Equal(t, 10, len(chunks[1]))
	// Windows advance by size-overlap, so consecutive chunks share a tail.
	assert.Equal(t, chunks[0][7:], chunks[1][:3])
}

func TestChunkTextShortInput(t *testing.T) {
	chunks := ChunkText("short", 800, 120)
	require.Len(t, chunks, 1)
	assert.Equal(t, "short", chunks[0])
}

func TestChunkTextEmpty(t *testing.T) {
	assert.Nil(t, ChunkText("", 800, 120))
	assert.Nil(t, ChunkText("text", 0, 0))
}

func TestChunkTextIsRuneSafe(t *testing.T) {
	text := strings.Repeat("న", 30)
	for _, c := range ChunkText(text, 10, 2) {
		assert.True(t, strings.ContainsRune(c, 'న'))
		for _, r := range c {
			assert.Equal(t, 'న', r, "multibyte runes must never be split")
		}
	}
}
