package repository

import (
	"context"
	"time"

	"topic-quiz/internal/domain"
	"topic-quiz/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// sqlxAttemptRepository implements domain.AttemptRepository using sqlx.
type sqlxAttemptRepository struct {
	db DBTX
}

// NewSQLXAttemptRepository creates a new instance of sqlxAttemptRepository.
func NewSQLXAttemptRepository(db *sqlx.DB) domain.AttemptRepository {
	return &sqlxAttemptRepository{db: db}
}

func toDomainAttempt(m *models.QuizAttempt) *domain.Attempt {
	return &domain.Attempt{
		ID:             m.ID,
		SessionID:      m.SessionID,
		Topic:          m.Topic,
		Score:          m.Score,
		TotalQuestions: m.TotalQuestions,
		Percentage:     m.Percentage,
		Tier:           domain.Tier(m.Tier),
		CompletedAt:    m.CompletedAt,
	}
}

func fromDomainAttempt(a *domain.Attempt) *models.QuizAttempt {
	return &models.QuizAttempt{
		ID:             a.ID,
		SessionID:      a.SessionID,
		Topic:          a.Topic,
		Score:          a.Score,
		TotalQuestions: a.TotalQuestions,
		Percentage:     a.Percentage,
		Tier:           string(a.Tier),
		CompletedAt:    a.CompletedAt,
	}
}

// CreateAttempt inserts a summary row. A second row for the same session is
// ignored, so reloading the results page records the attempt once.
func (r *sqlxAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.Attempt) error {
	if attempt == nil {
		return domain.NewInvalidInputError("cannot store nil attempt")
	}
	m := fromDomainAttempt(attempt)
	if m.CompletedAt.IsZero() {
		m.CompletedAt = time.Now().UTC()
	}

	query := `INSERT INTO quiz_attempts (id, session_id, topic, score, total_questions, percentage, tier, completed_at)
	          VALUES (:id, :session_id, :topic, :score, :total_questions, :percentage, :tier, :completed_at)
	          ON CONFLICT (session_id) DO NOTHING`

	if _, err := r.db.NamedExecContext(ctx, query, m); err != nil {
		return domain.NewInternalError("failed to store quiz attempt", err)
	}
	return nil
}

// ListRecent returns up to limit attempts, newest first.
func (r *sqlxAttemptRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Attempt, error) {
	query := `SELECT id, session_id, topic, score, total_questions, percentage, tier, completed_at
	          FROM quiz_attempts
	          ORDER BY completed_at DESC
	          LIMIT ?`

	var rows []models.QuizAttempt
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, domain.NewInternalError("failed to list quiz attempts", err)
	}

	attempts := make([]*domain.Attempt, 0, len(rows))
	for i := range rows {
		attempts = append(attempts, toDomainAttempt(&rows[i]))
	}
	return attempts, nil
}
