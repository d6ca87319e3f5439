package assistant

import (
	"context"
	"strings"

	"github.com/arohealth/healthbot/internal/config"
	"github.com/arohealth/healthbot/internal/domain"
	"github.com/arohealth/healthbot/internal/llm"
)

// TitleGenerator summarizes the first user message into a short chat label.
// The caller invokes it only while the chat title is still the default, so a
// chat is titled at most once.
type TitleGenerator struct {
	model ChatModel
}

func NewTitleGenerator(model ChatModel) *TitleGenerator {
	return &TitleGenerator{model: model}
}

// Generate returns a non-empty title of at most 60 characters regardless of
// what the model produced.
func (t *TitleGenerator) Generate(ctx context.Context, firstMessage string) (string, error) {
	out, err := t.model.Complete(ctx, "", []llm.Message{
		{Role: domain.RoleUser, Content: titlePrompt(firstMessage)},
	}, config.TitleTemp)
	if err != nil {
		return "", err
	}

	title := strings.TrimSpace(out)
	if title == "" {
		return config.FallbackChatTitle, nil
	}
	if runes := []rune(title); len(runes) > config.MaxTitleLen {
		title = strings.TrimRight(string(runes[:config.MaxTitleLen]), " ")
	}
	return title, nil
}
