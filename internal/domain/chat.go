package domain

import "time"

// Roles a message can carry. Messages are append-only: once written they are
// never edited or reordered, and created_at order is the only order shown to
// the user or replayed to the model.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Chat struct {
	ID        int64
	UserID    int64
	Title     string
	ShareID   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Message struct {
	ID        int64
	ChatID    int64
	Role      string
	Content   string
	CreatedAt time.Time
}

type Document struct {
	ID        int64
	ChatID    int64
	Filename  string
	Path      string
	CreatedAt time.Time
}
