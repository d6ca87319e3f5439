package service

import (
	"context"
	"math"
	"time"

	"github.com/arohealth/healthbot/internal/config"
	"github.com/arohealth/healthbot/internal/domain"
	"github.com/arohealth/healthbot/internal/repository"
)

type ReportService struct {
	queries *repository.Queries
}

func NewReportService(queries *repository.Queries) *ReportService {
	return &ReportService{queries: queries}
}

// QuizRow is one quiz attempt on the progress chart.
type QuizRow struct {
	Score   int       `json:"score"`
	Total   int       `json:"total"`
	Percent float64   `json:"percent"`
	TakenAt time.Time `json:"taken_at"`
}

// Summary aggregates a user's activity for the reports page.
type Summary struct {
	QuizAttempts   int            `json:"quiz_attempts"`
	AvgQuizPercent float64        `json:"avg_quiz_percent"`
	QuizHistory    []QuizRow      `json:"quiz_history"`
	TotalChats     int64          `json:"total_chats"`
	TotalMessages  int64          `json:"total_messages"`
	UserMessages   int64          `json:"user_messages"`
	BotMessages    int64          `json:"bot_messages"`
	MessagesPerDay map[string]int `json:"messages_per_day"`
}

// Summary computes the dashboard numbers: quiz stats with the last attempts
// oldest first, chat and message totals, and a per-day message count over the
// trailing report window.
func (s *ReportService) Summary(ctx context.Context, userID int64) (*Summary, error) {
	scores, err := s.queries.ListQuizScores(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := &Summary{
		QuizAttempts:   len(scores),
		QuizHistory:    []QuizRow{},
		MessagesPerDay: map[string]int{},
	}

	if len(scores) > 0 {
		var sum float64
		for _, sc := range scores {
			sum += percent(sc)
		}
		out.AvgQuizPercent = round2(sum / float64(len(scores)))
	}

	// ListQuizScores is newest first; the chart wants the most recent
	// attempts in chronological order.
	recent := scores
	if len(recent) > config.QuizHistoryRows {
		recent = recent[:config.QuizHistoryRows]
	}
	for i := len(recent) - 1; i >= 0; i-- {
		sc := recent[i]
		out.QuizHistory = append(out.QuizHistory, QuizRow{
			Score:   sc.Score,
			Total:   sc.Total,
			Percent: round2(percent(sc)),
			TakenAt: sc.CreatedAt,
		})
	}

	if out.TotalChats, err = s.queries.CountChatsByUser(ctx, userID); err != nil {
		return nil, err
	}
	if out.TotalMessages, err = s.queries.CountMessagesByUser(ctx, userID); err != nil {
		return nil, err
	}
	if out.UserMessages, err = s.queries.CountMessagesByRole(ctx, userID, domain.RoleUser); err != nil {
		return nil, err
	}
	if out.BotMessages, err = s.queries.CountMessagesByRole(ctx, userID, domain.RoleAssistant); err != nil {
		return nil, err
	}

	since := time.Now().UTC().AddDate(0, 0, -config.ReportWindowDays)
	times, err := s.queries.MessageTimesSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	for _, t := range times {
		out.MessagesPerDay[t.UTC().Format("2006-01-02")]++
	}

	return out, nil
}

func percent(s domain.QuizScore) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Score) / float64(s.Total) * 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
