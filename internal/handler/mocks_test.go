package handler_test

import (
	"context"

	"topic-quiz/internal/dto"
)

// --- Manual Mocks ---

// MockSessionService
type MockSessionService struct {
	CreateSessionFunc func(ctx context.Context, req *dto.CreateSessionRequest, existingID string) (*dto.CreateSessionResponse, error)
	RestartFunc       func(ctx context.Context, sessionID string) error
}

func (m *MockSessionService) CreateSession(ctx context.Context, req *dto.CreateSessionRequest, existingID string) (*dto.CreateSessionResponse, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, req, existingID)
	}
	panic("MockSessionService.CreateSessionFunc not implemented")
}

func (m *MockSessionService) Restart(ctx context.Context, sessionID string) error {
	if m.RestartFunc != nil {
		return m.RestartFunc(ctx, sessionID)
	}
	panic("MockSessionService.RestartFunc not implemented")
}

// MockQuizService
type MockQuizService struct {
	StartQuizFunc    func(ctx context.Context, sessionID string) (*dto.QuizView, error)
	GetQuizFunc      func(ctx context.Context, sessionID string) (*dto.QuizView, error)
	SelectOptionFunc func(ctx context.Context, sessionID string, option int) (*dto.QuizView, error)
	NextFunc         func(ctx context.Context, sessionID string) (*dto.NextResponse, error)
	PreviousFunc     func(ctx context.Context, sessionID string) (*dto.QuizView, error)
}

func (m *MockQuizService) StartQuiz(ctx context.Context, sessionID string) (*dto.QuizView, error) {
	if m.StartQuizFunc != nil {
		return m.StartQuizFunc(ctx, sessionID)
	}
	panic("MockQuizService.StartQuizFunc not implemented")
}

func (m *MockQuizService) GetQuiz(ctx context.Context, sessionID string) (*dto.QuizView, error) {
	if m.GetQuizFunc != nil {
		return m.GetQuizFunc(ctx, sessionID)
	}
	panic("MockQuizService.GetQuizFunc not implemented")
}

func (m *MockQuizService) SelectOption(ctx context.Context, sessionID string, option int) (*dto.QuizView, error) {
	if m.SelectOptionFunc != nil {
		return m.SelectOptionFunc(ctx, sessionID, option)
	}
	panic("MockQuizService.SelectOptionFunc not implemented")
}

func (m *MockQuizService) Next(ctx context.Context, sessionID string) (*dto.NextResponse, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx, sessionID)
	}
	panic("MockQuizService.NextFunc not implemented")
}

func (m *MockQuizService) Previous(ctx context.Context, sessionID string) (*dto.QuizView, error) {
	if m.PreviousFunc != nil {
		return m.PreviousFunc(ctx, sessionID)
	}
	panic("MockQuizService.PreviousFunc not implemented")
}

// MockResultService
type MockResultService struct {
	GetResultsFunc   func(ctx context.Context, sessionID string) (*dto.ResultsResponse, error)
	ListAttemptsFunc func(ctx context.Context, limit int) (*dto.AttemptsResponse, error)
}

func (m *MockResultService) GetResults(ctx context.Context, sessionID string) (*dto.ResultsResponse, error) {
	if m.GetResultsFunc != nil {
		return m.GetResultsFunc(ctx, sessionID)
	}
	panic("MockResultService.GetResultsFunc not implemented")
}

func (m *MockResultService) ListAttempts(ctx context.Context, limit int) (*dto.AttemptsResponse, error) {
	if m.ListAttemptsFunc != nil {
		return m.ListAttemptsFunc(ctx, limit)
	}
	panic("MockResultService.ListAttemptsFunc not implemented")
}
