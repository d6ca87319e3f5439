package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"

	"github.com/arohealth/healthbot/internal/config"
)

const maxAlertLen = 4096

// Alerter posts operational events to an admin Telegram chat: failed
// generation attempts, new registrations, submitted feedback. It is best
// effort only and never fails the request that triggered it. A nil Alerter
// (alerts not configured) is safe to call.
type Alerter struct {
	bot    *bot.Bot
	chatID int64
}

// NewAlerter returns nil when the chat id or token is unset.
func NewAlerter(cfg *config.Config) (*Alerter, error) {
	if cfg.AlertChatID == 0 || cfg.AlertBotToken == "" {
		return nil, nil
	}
	b, err := bot.New(cfg.AlertBotToken)
	if err != nil {
		return nil, fmt.Errorf("create alert bot: %w", err)
	}
	return &Alerter{bot: b, chatID: cfg.AlertChatID}, nil
}

func (a *Alerter) send(message string) {
	if a == nil {
		return
	}

	if len([]rune(message)) > maxAlertLen {
		message = string([]rune(message)[:maxAlertLen-20]) + "\n\n... (truncated)"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := a.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: a.chatID,
		Text:   message,
	})
	if err != nil {
		slog.Error("failed to send telegram alert", "error", err)
	}
}

func (a *Alerter) Error(err error, context string) {
	a.send(fmt.Sprintf("❌ Error\n\nContext: %s\nError: %s\nTime: %s",
		context, err.Error(), time.Now().Format("2006-01-02 15:04:05")))
}

func (a *Alerter) Signup(userID int64, name, email string) {
	a.send(fmt.Sprintf("👤 New Registration\n\nID: %d\nName: %s\nEmail: %s", userID, name, email))
}

func (a *Alerter) Feedback(userID int64, rating int, category, message string) {
	a.send(fmt.Sprintf("📝 Feedback\n\nUser: %d\nRating: %d/5\nCategory: %s\n\n%s",
		userID, rating, category, message))
}
