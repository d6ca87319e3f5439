package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arohealth/healthbot/internal/vector"
)

func TestRetrieveJoinsPassagesBestFirst(t *testing.T) {
	index := &fakeIndex{matches: map[string][]vector.Match{
		"ns": {
			{ID: "a", Score: 0.9, Metadata: map[string]any{"text": "first passage"}},
			{ID: "b", Score: 0.8, Metadata: map[string]any{"text": "second passage"}},
		},
	}}
	r := NewRetriever(index)

	out, err := r.Retrieve(context.Background(), "ns", "query")
	require.NoError(t, err)

	assert.Equal(t, "first passage\n\nsecond passage", out)
	assert.Equal(t, []vector.EmbedMode{vector.ModeQuery}, index.modes)
}

func TestRetrieveSkipsMatchesWithoutText(t *testing.T) {
	index := &fakeIndex{matches: map[string][]vector.Match{
		"ns": {
			{ID: "a", Score: 0.9, Metadata: map[string]any{"source": "file.pdf"}},
			{ID: "b", Score: 0.8, Metadata: map[string]any{"text": ""}},
			{ID: "c", Score: 0.7, Metadata: map[string]any{"text": "usable"}},
			{ID: "d", Score: 0.6},
		},
	}}
	r := NewRetriever(index)

	out, err := r.Retrieve(context.Background(), "ns", "query")
	require.NoError(t, err)
	assert.Equal(t, "usable", out)
}

func TestRetrieveEmptyNamespaceIsNotAnError(t *testing.T) {
	r := NewRetriever(&fakeIndex{})

	out, err := r.Retrieve(context.Background(), "empty", "query")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRetrievePropagatesErrors(t *testing.T) {
	_, err := NewRetriever(&fakeIndex{embedErr: errors.New("embed down")}).
		Retrieve(context.Background(), "ns", "query")
	assert.Error(t, err)

	_, err = NewRetriever(&fakeIndex{queryErr: errors.New("query down")}).
		Retrieve(context.Background(), "ns", "query")
	assert.Error(t, err)
}

func TestChatNamespace(t *testing.T) {
	assert.Equal(t, "chat-42", ChatNamespace(42))
}
