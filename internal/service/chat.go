package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arohealth/healthbot/internal/assistant"
	"github.com/arohealth/healthbot/internal/config"
	"github.com/arohealth/healthbot/internal/domain"
)

// ChatStore is the slice of the repository the chat service needs.
// *repository.Queries satisfies it; tests substitute an in-memory fake.
type ChatStore interface {
	CreateChat(ctx context.Context, userID int64, title string) (*domain.Chat, error)
	GetUserChat(ctx context.Context, userID, chatID int64) (*domain.Chat, error)
	ListChatsByUser(ctx context.Context, userID int64) ([]domain.Chat, error)
	UpdateChatTitle(ctx context.Context, chatID int64, title string) error
	TouchChat(ctx context.Context, chatID int64) error
	SetChatShareID(ctx context.Context, chatID int64, shareID string) error
	DeleteChat(ctx context.Context, chatID int64) error
	AddMessage(ctx context.Context, chatID int64, role, content string) (*domain.Message, error)
	GetMessages(ctx context.Context, chatID int64) ([]domain.Message, error)
	ChatHasDocuments(ctx context.Context, chatID int64) (bool, error)
}

// Responder runs the answer pipeline for one user message.
type Responder interface {
	Respond(ctx context.Context, req assistant.Request) (text string, refused bool, err error)
}

// Titler summarizes a first message into a chat title.
type Titler interface {
	Generate(ctx context.Context, firstMessage string) (string, error)
}

type ChatService struct {
	store     ChatStore
	generator Responder
	titles    Titler
}

func NewChatService(store ChatStore, generator Responder, titles Titler) *ChatService {
	return &ChatService{store: store, generator: generator, titles: titles}
}

// Create opens a new chat seeded with the assistant's welcome turn.
func (s *ChatService) Create(ctx context.Context, userID int64) (*domain.Chat, error) {
	chat, err := s.store.CreateChat(ctx, userID, config.DefaultChatTitle)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.AddMessage(ctx, chat.ID, domain.RoleAssistant, assistant.WelcomeMessage); err != nil {
		return nil, err
	}
	return chat, nil
}

func (s *ChatService) List(ctx context.Context, userID int64) ([]domain.Chat, error) {
	return s.store.ListChatsByUser(ctx, userID)
}

func (s *ChatService) Messages(ctx context.Context, userID, chatID int64) ([]domain.Message, error) {
	if _, err := s.store.GetUserChat(ctx, userID, chatID); err != nil {
		return nil, err
	}
	return s.store.GetMessages(ctx, chatID)
}

// Rename trims and caps the new title; a blank title falls back to "Chat".
func (s *ChatService) Rename(ctx context.Context, userID, chatID int64, title string) (string, error) {
	if _, err := s.store.GetUserChat(ctx, userID, chatID); err != nil {
		return "", err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = "Chat"
	}
	if runes := []rune(title); len(runes) > config.MaxTitleLen {
		title = strings.TrimRight(string(runes[:config.MaxTitleLen]), " ")
	}

	if err := s.store.UpdateChatTitle(ctx, chatID, title); err != nil {
		return "", err
	}
	return title, nil
}

func (s *ChatService) Delete(ctx context.Context, userID, chatID int64) error {
	if _, err := s.store.GetUserChat(ctx, userID, chatID); err != nil {
		return err
	}
	return s.store.DeleteChat(ctx, chatID)
}

// Share returns the chat's share id, minting one on first use. Repeated calls
// return the same id.
func (s *ChatService) Share(ctx context.Context, userID, chatID int64) (string, error) {
	chat, err := s.store.GetUserChat(ctx, userID, chatID)
	if err != nil {
		return "", err
	}
	if chat.ShareID != nil && *chat.ShareID != "" {
		return *chat.ShareID, nil
	}

	shareID := uuid.NewString()
	if err := s.store.SetChatShareID(ctx, chatID, shareID); err != nil {
		return "", err
	}
	return shareID, nil
}

// SendResult is what the caller renders after one completed turn.
type SendResult struct {
	Reply     string
	Title     string
	UpdatedAt time.Time
}

// Send runs one full conversation turn: it persists the user message, asks
// the answer pipeline for a reply, persists that reply, and titles the chat
// if this was its first answered message. A refused message is persisted but
// never titles the chat, so no summarization tokens are spent on it. On a
// pipeline failure the user turn is already stored but no assistant turn is;
// the user can simply resend.
func (s *ChatService) Send(ctx context.Context, userID, chatID int64, message, language string) (*SendResult, error) {
	chat, err := s.store.GetUserChat(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domain.ErrEmptyMessage
	}

	// History is captured before the insert so the new message is not
	// replayed to the model twice.
	history, err := s.store.GetMessages(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.AddMessage(ctx, chatID, domain.RoleUser, message); err != nil {
		return nil, err
	}

	hasDocs, err := s.store.ChatHasDocuments(ctx, chatID)
	if err != nil {
		return nil, err
	}

	reply, refused, err := s.generator.Respond(ctx, assistant.Request{
		ChatID:       chatID,
		Message:      message,
		History:      history,
		Language:     language,
		HasDocuments: hasDocs,
	})
	if err != nil {
		return nil, fmt.Errorf("answer message: %w", err)
	}

	if _, err := s.store.AddMessage(ctx, chatID, domain.RoleAssistant, reply); err != nil {
		return nil, err
	}

	title := chat.Title
	if !refused && title == config.DefaultChatTitle {
		generated, err := s.titles.Generate(ctx, message)
		if err != nil {
			slog.Warn("chat title generation failed, keeping default", "chat_id", chatID, "error", err)
		} else if err := s.store.UpdateChatTitle(ctx, chatID, generated); err != nil {
			slog.Warn("chat title update failed", "chat_id", chatID, "error", err)
		} else {
			title = generated
		}
	}

	if err := s.store.TouchChat(ctx, chatID); err != nil {
		return nil, err
	}

	return &SendResult{Reply: reply, Title: title, UpdatedAt: time.Now().UTC()}, nil
}
