package config

import "time"

const (
	// Remote collaborator request timeout
	RequestTimeout = 60 * time.Second

	// Database pool sizing. Every request holds at most one connection and
	// spends most of its time waiting on remote collaborators, so a modest
	// pool covers the expected concurrency.
	DBMaxConns = 16
	DBMinConns = 4

	// Retrieval
	TopK            = 4
	MinContextChars = 30

	// Generation temperatures
	AnswerTemp     = 0.2
	ClassifierTemp = 0.0
	TitleTemp      = 0.2

	// History replayed into grounded generation
	MaxHistoryTurns = 10

	// Chat titles
	DefaultChatTitle  = "New Chat"
	FallbackChatTitle = "Health Chat"
	MaxTitleLen       = 60

	// Document chunking
	ChunkSize    = 800
	ChunkOverlap = 120
	UpsertBatch  = 12

	// ML classifier
	DefaultPredictTopK = 5
	MaxPredictTopK     = 10

	// Feedback ratings
	MinRating = 1
	MaxRating = 5

	// Reports
	ReportWindowDays = 30
	QuizHistoryRows  = 10

	// bcrypt input limit
	MaxPasswordBytes = 72
)
