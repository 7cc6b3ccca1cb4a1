package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"topic-quiz/internal/adapter"
	"topic-quiz/internal/domain"
	"topic-quiz/internal/repository"

	"github.com/stretchr/testify/require"
)

func newSessionRepo() domain.SessionRepository {
	return repository.NewCacheSessionRepository(adapter.NewMemoryCache(), time.Hour)
}

// testQuestions returns n questions whose correct answer is i % 4.
func testQuestions(n int) domain.QuestionSet {
	qs := make(domain.QuestionSet, n)
	for i := range qs {
		qs[i] = domain.Question{
			Question:      fmt.Sprintf("Question %d?", i+1),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: i % domain.OptionsPerQuestion,
			Explanation:   fmt.Sprintf("Because of reason %d.", i+1),
		}
	}
	return qs
}

func seedSession(t *testing.T, repo domain.SessionRepository, id, topic string) *domain.Session {
	t.Helper()
	s, err := domain.NewSession(id, topic, "", time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), s))
	return s
}

// seedReadySession stores a session with questions loaded.
func seedReadySession(t *testing.T, repo domain.SessionRepository, id string) *domain.Session {
	t.Helper()
	s := seedSession(t, repo, id, "Go")
	require.NoError(t, s.BeginLoading())
	require.NoError(t, s.LoadQuestions(testQuestions(domain.QuestionsPerSession)))
	require.NoError(t, repo.Save(context.Background(), s))
	return s
}

// seedCompleteSession answers every question, getting the first correct
// answers right and the rest wrong.
func seedCompleteSession(t *testing.T, repo domain.SessionRepository, id string, correct int) *domain.Session {
	t.Helper()
	s := seedReadySession(t, repo, id)
	for i, q := range s.Questions {
		answer := q.CorrectAnswer
		if i >= correct {
			answer = (q.CorrectAnswer + 1) % domain.OptionsPerQuestion
		}
		require.NoError(t, s.Select(answer))
		_, err := s.Next()
		require.NoError(t, err)
	}
	require.NoError(t, repo.Save(context.Background(), s))
	return s
}
