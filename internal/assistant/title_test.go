package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arohealth/healthbot/internal/config"
)

func TestTitleGenerate(t *testing.T) {
	model := &fakeModel{replies: []string{"  Fever home care tips \n"}}
	title, err := NewTitleGenerator(model).Generate(context.Background(), "my kid has a fever")

	require.NoError(t, err)
	assert.Equal(t, "Fever home care tips", title)
	assert.Equal(t, float32(config.TitleTemp), model.calls[0].temp)
}

func TestTitleGenerateEmptyFallsBack(t *testing.T) {
	model := &fakeModel{replies: []string{"   "}}
	title, err := NewTitleGenerator(model).Generate(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, config.FallbackChatTitle, title)
}

func TestTitleGenerateCapsLength(t *testing.T) {
	long := strings.Repeat("word ", 20)
	model := &fakeModel{replies: []string{long}}
	title, err := NewTitleGenerator(model).Generate(context.Background(), "hello")

	require.NoError(t, err)
	assert.LessOrEqual(t, len([]rune(title)), config.MaxTitleLen)
	assert.NotEqual(t, " ", title[len(title)-1:], "truncation must not leave a trailing space")
}

func TestTitleGenerateErrorPropagates(t *testing.T) {
	model := &fakeModel{err: errors.New("down")}
	_, err := NewTitleGenerator(model).Generate(context.Background(), "hello")
	assert.Error(t, err)
}
