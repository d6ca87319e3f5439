package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/arohealth/healthbot/internal/config"
	"github.com/arohealth/healthbot/internal/domain"
)

// Message is the provider-neutral dialog unit handed to the model.
type Message struct {
	Role    string
	Content string
}

// Client talks to an OpenAI-compatible chat-completion endpoint (OpenRouter by
// default). Every call is bounded by the configured request timeout; failures
// are mapped onto the domain error taxonomy and never retried here.
type Client struct {
	api   *openai.Client
	model string
}

func NewClient(cfg *config.Config) *Client {
	clientCfg := openai.DefaultConfig(cfg.OpenRouterKey)
	clientCfg.BaseURL = strings.TrimRight(cfg.OpenRouterBaseURL, "/")
	clientCfg.HTTPClient = &http.Client{Timeout: config.RequestTimeout}

	return &Client{
		api:   openai.NewClientWithConfig(clientCfg),
		model: cfg.OpenRouterModel,
	}
}

// Complete submits one chat-completion request. An empty system prompt is
// omitted from the payload. The response is awaited in full, trimmed and
// returned as-is.
func (c *Client) Complete(ctx context.Context, system string, msgs []Message, temperature float32) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: temperature,
	}

	if system != "" {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	for _, m := range msgs {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w: %w", domain.ErrRemoteUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: %w: empty choices", domain.ErrMalformedResponse)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
