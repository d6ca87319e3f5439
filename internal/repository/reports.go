package repository

import (
	"context"
	"fmt"
	"time"
)

func (q *Queries) CountChatsByUser(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := q.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM chats WHERE user_id = $1`,
		userID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count chats: %w", err)
	}
	return n, nil
}

func (q *Queries) CountMessagesByUser(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := q.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM messages m
		 JOIN chats c ON c.id = m.chat_id
		 WHERE c.user_id = $1`,
		userID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count messages: %w", err)
	}
	return n, nil
}

func (q *Queries) CountMessagesByRole(ctx context.Context, userID int64, role string) (int64, error) {
	var n int64
	err := q.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM messages m
		 JOIN chats c ON c.id = m.chat_id
		 WHERE c.user_id = $1 AND m.role = $2`,
		userID, role,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count messages by role: %w", err)
	}
	return n, nil
}

// MessageTimesSince returns creation timestamps of the user's messages newer
// than the cutoff, for the per-day activity chart.
func (q *Queries) MessageTimesSince(ctx context.Context, userID int64, since time.Time) ([]time.Time, error) {
	rows, err := q.db.Query(ctx,
		`SELECT m.created_at FROM messages m
		 JOIN chats c ON c.id = m.chat_id
		 WHERE c.user_id = $1 AND m.created_at >= $2`,
		userID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("message times: %w", err)
	}
	defer rows.Close()

	var times []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan message time: %w", err)
		}
		times = append(times, t)
	}
	return times, rows.Err()
}
