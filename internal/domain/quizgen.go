package domain

import (
	"context"
	"time"
)

// QuestionGenerator produces the question set for a topic.
type QuestionGenerator interface {
	// GenerateQuestions returns exactly count validated questions or an error.
	// apiKey, when non-empty, is a credential supplied by the user at intake.
	GenerateQuestions(ctx context.Context, topic string, count int, apiKey string) (QuestionSet, error)
}

// RecommendationGenerator produces learning recommendations for a result.
type RecommendationGenerator interface {
	// GenerateRecommendations never fails: any model or parse error is
	// replaced by FallbackRecommendation.
	GenerateRecommendations(ctx context.Context, score, total int, topic string, apiKey string) Recommendation
}

// SessionRepository is the single owner of session contexts.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, sessionID string) error
}

// Attempt is the summary of a completed session kept for history.
type Attempt struct {
	ID             string
	SessionID      string
	Topic          string
	Score          int
	TotalQuestions int
	Percentage     int
	Tier           Tier
	CompletedAt    time.Time
}

// AttemptRepository stores completed attempt summaries.
type AttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt *Attempt) error
	ListRecent(ctx context.Context, limit int) ([]*Attempt, error)
}
