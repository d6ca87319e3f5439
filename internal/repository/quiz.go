package repository

import (
	"context"
	"fmt"

	"github.com/arohealth/healthbot/internal/domain"
)

func (q *Queries) SaveQuizScore(ctx context.Context, userID int64, score, total int) (*domain.QuizScore, error) {
	s := &domain.QuizScore{UserID: userID, Score: score, Total: total}
	err := q.db.QueryRow(ctx,
		`INSERT INTO quiz_scores (user_id, score, total)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		userID, score, total,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("save quiz score: %w", err)
	}
	return s, nil
}

func (q *Queries) ListQuizScores(ctx context.Context, userID int64) ([]domain.QuizScore, error) {
	rows, err := q.db.Query(ctx,
		`SELECT id, user_id, score, total, created_at
		 FROM quiz_scores WHERE user_id = $1
		 ORDER BY id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list quiz scores: %w", err)
	}
	defer rows.Close()

	var scores []domain.QuizScore
	for rows.Next() {
		var s domain.QuizScore
		if err := rows.Scan(&s.ID, &s.UserID, &s.Score, &s.Total, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan quiz score: %w", err)
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}

func (q *Queries) SaveFeedback(ctx context.Context, userID int64, rating int, category, message string) (*domain.Feedback, error) {
	f := &domain.Feedback{UserID: userID, Rating: rating, Category: category, Message: message}
	err := q.db.QueryRow(ctx,
		`INSERT INTO feedback (user_id, rating, category, message)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		userID, rating, category, message,
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("save feedback: %w", err)
	}
	return f, nil
}

func (q *Queries) ListFeedback(ctx context.Context, userID int64) ([]domain.Feedback, error) {
	rows, err := q.db.Query(ctx,
		`SELECT id, user_id, rating, category, message, created_at
		 FROM feedback WHERE user_id = $1
		 ORDER BY id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	var items []domain.Feedback
	for rows.Next() {
		var f domain.Feedback
		if err := rows.Scan(&f.ID, &f.UserID, &f.Rating, &f.Category, &f.Message, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		items = append(items, f)
	}
	return items, rows.Err()
}
