package service

import (
	"context"

	"topic-quiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockQuestionGenerator ---
type MockQuestionGenerator struct {
	mock.Mock
}

func (m *MockQuestionGenerator) GenerateQuestions(ctx context.Context, topic string, count int, apiKey string) (domain.QuestionSet, error) {
	args := m.Called(ctx, topic, count, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.QuestionSet), args.Error(1)
}

// --- MockRecommendationGenerator ---
type MockRecommendationGenerator struct {
	mock.Mock
}

func (m *MockRecommendationGenerator) GenerateRecommendations(ctx context.Context, score, total int, topic string, apiKey string) domain.Recommendation {
	args := m.Called(ctx, score, total, topic, apiKey)
	return args.Get(0).(domain.Recommendation)
}

// --- MockAttemptRepository ---
type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.Attempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockAttemptRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Attempt, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Attempt), args.Error(1)
}

// --- MockSessionRepository ---
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) Save(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
