package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/arohealth/healthbot/internal/domain"
)

func (q *Queries) CreateChat(ctx context.Context, userID int64, title string) (*domain.Chat, error) {
	c := &domain.Chat{UserID: userID, Title: title}
	err := q.db.QueryRow(ctx,
		`INSERT INTO chats (user_id, title)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		userID, title,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create chat: %w", err)
	}
	return c, nil
}

// GetUserChat looks a chat up scoped to its owner; a chat belonging to another
// user is indistinguishable from a missing one.
func (q *Queries) GetUserChat(ctx context.Context, userID, chatID int64) (*domain.Chat, error) {
	c := &domain.Chat{}
	err := q.db.QueryRow(ctx,
		`SELECT id, user_id, title, share_id, created_at, updated_at
		 FROM chats WHERE id = $1 AND user_id = $2`,
		chatID, userID,
	).Scan(&c.ID, &c.UserID, &c.Title, &c.ShareID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrChatNotFound
		}
		return nil, fmt.Errorf("get chat: %w", err)
	}
	return c, nil
}

func (q *Queries) ListChatsByUser(ctx context.Context, userID int64) ([]domain.Chat, error) {
	rows, err := q.db.Query(ctx,
		`SELECT id, user_id, title, share_id, created_at, updated_at
		 FROM chats WHERE user_id = $1
		 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	defer rows.Close()

	var chats []domain.Chat
	for rows.Next() {
		var c domain.Chat
		if err := rows.Scan(&c.ID, &c.UserID, &c.Title, &c.ShareID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan chat: %w", err)
		}
		chats = append(chats, c)
	}
	return chats, rows.Err()
}

func (q *Queries) UpdateChatTitle(ctx context.Context, chatID int64, title string) error {
	_, err := q.db.Exec(ctx,
		`UPDATE chats SET title = $2, updated_at = now() WHERE id = $1`,
		chatID, title,
	)
	if err != nil {
		return fmt.Errorf("update chat title: %w", err)
	}
	return nil
}

func (q *Queries) TouchChat(ctx context.Context, chatID int64) error {
	_, err := q.db.Exec(ctx,
		`UPDATE chats SET updated_at = now() WHERE id = $1`,
		chatID,
	)
	if err != nil {
		return fmt.Errorf("touch chat: %w", err)
	}
	return nil
}

func (q *Queries) SetChatShareID(ctx context.Context, chatID int64, shareID string) error {
	_, err := q.db.Exec(ctx,
		`UPDATE chats SET share_id = $2 WHERE id = $1`,
		chatID, shareID,
	)
	if err != nil {
		return fmt.Errorf("set chat share id: %w", err)
	}
	return nil
}

func (q *Queries) DeleteChat(ctx context.Context, chatID int64) error {
	_, err := q.db.Exec(ctx, `DELETE FROM chats WHERE id = $1`, chatID)
	if err != nil {
		return fmt.Errorf("delete chat: %w", err)
	}
	return nil
}

func (q *Queries) AddMessage(ctx context.Context, chatID int64, role, content string) (*domain.Message, error) {
	m := &domain.Message{ChatID: chatID, Role: role, Content: content}
	err := q.db.QueryRow(ctx,
		`INSERT INTO messages (chat_id, role, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		chatID, role, content,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("add message: %w", err)
	}
	return m, nil
}

func (q *Queries) GetMessages(ctx context.Context, chatID int64) ([]domain.Message, error) {
	rows, err := q.db.Query(ctx,
		`SELECT id, chat_id, role, content, created_at
		 FROM messages WHERE chat_id = $1
		 ORDER BY created_at ASC`,
		chatID,
	)
	if err != nil {
		return nil, fmt.Errorf("get messages: %w", err)
	}
	defer rows.Close()

	var msgs []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.ChatID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (q *Queries) AddDocument(ctx context.Context, chatID int64, filename, path string) (*domain.Document, error) {
	d := &domain.Document{ChatID: chatID, Filename: filename, Path: path}
	err := q.db.QueryRow(ctx,
		`INSERT INTO documents (chat_id, filename, path)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		chatID, filename, path,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("add document: %w", err)
	}
	return d, nil
}

func (q *Queries) ChatHasDocuments(ctx context.Context, chatID int64) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM documents WHERE chat_id = $1)`,
		chatID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("chat has documents: %w", err)
	}
	return exists, nil
}
