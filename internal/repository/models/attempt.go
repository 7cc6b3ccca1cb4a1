package models

import "time"

// QuizAttempt is the quiz_attempts row for one completed session.
type QuizAttempt struct {
	ID             string    `db:"id"`
	SessionID      string    `db:"session_id"`
	Topic          string    `db:"topic"`
	Score          int       `db:"score"`
	TotalQuestions int       `db:"total_questions"`
	Percentage     int       `db:"percentage"`
	Tier           string    `db:"tier"`
	CompletedAt    time.Time `db:"completed_at"`
}
