package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"topic-quiz/internal/adapter"
	"topic-quiz/internal/cache"
	"topic-quiz/internal/domain"
	"topic-quiz/internal/repository/models"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestions() domain.QuestionSet {
	qs := make(domain.QuestionSet, domain.QuestionsPerSession)
	for i := range qs {
		qs[i] = domain.Question{
			Question:      "Which keyword starts a goroutine?",
			Options:       []string{"go", "async", "spawn", "thread"},
			CorrectAnswer: 0,
			Explanation:   "The go statement starts a goroutine.",
		}
	}
	return qs
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewCacheSessionRepository(adapter.NewMemoryCache(), time.Hour)

	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	s, err := domain.NewSession("01HZXSESSION", "Go", "user-key", created)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, s))

	require.NoError(t, s.BeginLoading())
	require.NoError(t, s.LoadQuestions(sampleQuestions()))
	require.NoError(t, s.Select(0))
	_, err = s.Next()
	require.NoError(t, err)
	require.NoError(t, s.Select(2))
	require.NoError(t, repo.Save(ctx, s))

	loaded, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.Topic, loaded.Topic)
	assert.Equal(t, "user-key", loaded.APIKey)
	assert.Equal(t, domain.StateAnswering, loaded.State)
	assert.Equal(t, s.Questions, loaded.Questions)
	assert.Equal(t, []int{0}, loaded.Answers)
	assert.Equal(t, 1, loaded.CurrentIndex)
	require.NotNil(t, loaded.Selection)
	assert.Equal(t, 2, *loaded.Selection)
	assert.Equal(t, 1, loaded.Score)
	assert.True(t, created.Equal(loaded.CreatedAt))
	assert.Nil(t, loaded.Recommendation)
}

func TestSessionRepository_SaveClearsOptionalFields(t *testing.T) {
	ctx := context.Background()
	mem := adapter.NewMemoryCache()
	repo := NewCacheSessionRepository(mem, 0)

	s, err := domain.NewSession("01HZXSESSION", "Go", "", time.Now())
	require.NoError(t, err)
	require.NoError(t, s.BeginLoading())
	require.NoError(t, s.Fail("Failed to generate quiz questions: boom"))
	require.NoError(t, repo.Save(ctx, s))

	msg, err := mem.HGet(ctx, cache.SessionKey(s.ID), models.FieldError)
	require.NoError(t, err)
	assert.Equal(t, "Failed to generate quiz questions: boom", msg)

	rec := domain.FallbackRecommendation("Go", domain.TierBeginner)
	s.ErrorMessage = ""
	s.Recommendation = &rec
	require.NoError(t, repo.Save(ctx, s))

	_, err = mem.HGet(ctx, cache.SessionKey(s.ID), models.FieldError)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	_, err = mem.HGet(ctx, cache.SessionKey(s.ID), models.FieldAPIKey)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	loaded, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Recommendation)
	assert.Equal(t, rec, *loaded.Recommendation)
}

func TestSessionRepository_GetMissing(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewCacheSessionRepository(adapter.NewRedisCacheAdapter(db), time.Hour)

	mock.ExpectHGetAll(cache.SessionKey("gone")).SetVal(map[string]string{})
	_, err := repo.Get(context.Background(), "gone")

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeSessionNotFound, domainErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())

	_, err = repo.Get(context.Background(), "")
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeSessionNotFound, domainErr.Code)
}

func TestSessionRepository_SaveRefreshesTTL(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewCacheSessionRepository(adapter.NewRedisCacheAdapter(db), 2*time.Hour)

	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	s, err := domain.NewSession("01HZXSESSION", "Go", "", created)
	require.NoError(t, err)
	key := cache.SessionKey(s.ID)

	mock.ExpectHSet(key,
		models.FieldTopic, "Go",
		models.FieldState, "pending",
		models.FieldCurrentIndex, "0",
		models.FieldScore, "0",
		models.FieldTotalQuestions, "0",
		models.FieldAnswers, "[]",
		models.FieldCreatedAt, "2026-03-01T09:30:00Z",
	).SetVal(7)
	mock.ExpectHDel(key, models.FieldAPIKey, models.FieldSelection, models.FieldQuestions, models.FieldError, models.FieldRecommendation).SetVal(0)
	mock.ExpectExpire(key, 2*time.Hour).SetVal(true)

	require.NoError(t, repo.Create(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_CorruptSession(t *testing.T) {
	ctx := context.Background()
	mem := adapter.NewMemoryCache()
	repo := NewCacheSessionRepository(mem, 0)

	require.NoError(t, mem.HSet(ctx, cache.SessionKey("bad"), models.FieldTopic, "Go", models.FieldQuestions, "{not json"))

	_, err := repo.Get(ctx, "bad")
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeInternal, domainErr.Code)
}

func TestSessionRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewCacheSessionRepository(adapter.NewMemoryCache(), time.Hour)

	s, err := domain.NewSession("01HZXSESSION", "Go", "", time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, s))
	require.NoError(t, repo.Delete(ctx, s.ID))
	require.NoError(t, repo.Delete(ctx, s.ID))

	_, err = repo.Get(ctx, s.ID)
	assert.Error(t, err)
}
