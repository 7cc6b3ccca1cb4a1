package service

import (
	"context"
	"errors"
	"time"

	"topic-quiz/internal/domain"
	"topic-quiz/internal/dto"
	"topic-quiz/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// QuizService drives the question-answering stage of a session.
type QuizService interface {
	// StartQuiz generates the question set for a pending session and returns
	// the first question. Sessions past loading return their current view.
	StartQuiz(ctx context.Context, sessionID string) (*dto.QuizView, error)
	GetQuiz(ctx context.Context, sessionID string) (*dto.QuizView, error)
	SelectOption(ctx context.Context, sessionID string, option int) (*dto.QuizView, error)
	Next(ctx context.Context, sessionID string) (*dto.NextResponse, error)
	Previous(ctx context.Context, sessionID string) (*dto.QuizView, error)
}

type quizService struct {
	sessions      domain.SessionRepository
	generator     domain.QuestionGenerator
	questionCount int
	timeout       time.Duration
	flights       *singleflight.Group
}

// NewQuizService creates a QuizService. A zero timeout lets generation run
// until the provider answers.
func NewQuizService(sessions domain.SessionRepository, generator domain.QuestionGenerator, questionCount int, timeout time.Duration) QuizService {
	if questionCount <= 0 {
		questionCount = domain.QuestionsPerSession
	}
	return &quizService{
		sessions:      sessions,
		generator:     generator,
		questionCount: questionCount,
		timeout:       timeout,
		flights:       &singleflight.Group{},
	}
}

// loadSession returns the session or a SESSION_NOT_FOUND error, which the
// HTTP layer turns into a redirect to intake.
func (s *quizService) loadSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Topic == "" {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	return session, nil
}

func (s *quizService) StartQuiz(ctx context.Context, sessionID string) (*dto.QuizView, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch session.State {
	case domain.StatePending, domain.StateLoading:
	case domain.StateError:
		return nil, generationFailed(session.ErrorMessage)
	default:
		return toQuizView(session), nil
	}

	// Concurrent starts for one session share a single generation.
	v, err, shared := s.flights.Do(sessionID+":questions", func() (interface{}, error) {
		return s.generate(ctx, sessionID)
	})
	if shared {
		logger.Get().Debug("Joined in-flight question generation", zap.String("session_id", sessionID))
	}
	if err != nil {
		return nil, err
	}
	return toQuizView(v.(*domain.Session)), nil
}

func (s *quizService) generate(ctx context.Context, sessionID string) (*domain.Session, error) {
	l := logger.Get()

	// The generation outlives the request that started it.
	ctx = context.WithoutCancel(ctx)

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	switch session.State {
	case domain.StatePending:
	case domain.StateLoading:
		// Another instance owns this generation.
		return nil, domain.NewError(domain.CodeGenerationInFlight, "Questions are still being generated", nil)
	case domain.StateError:
		return nil, generationFailed(session.ErrorMessage)
	default:
		return session, nil
	}

	if err := session.BeginLoading(); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	genCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(genCtx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	questions, genErr := s.generator.GenerateQuestions(genCtx, session.Topic, s.questionCount, session.APIKey)

	// Restart may have cleared the session while we were waiting.
	current, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		l.Info("Discarding generation result for cleared session", zap.String("session_id", sessionID))
		return nil, err
	}
	if current.State != domain.StateLoading {
		return current, nil
	}

	if genErr == nil {
		if genErr = current.LoadQuestions(questions); genErr == nil {
			if err := s.sessions.Save(ctx, current); err != nil {
				return nil, err
			}
			l.Info("Questions generated",
				zap.String("session_id", sessionID),
				zap.Int("count", len(questions)),
				zap.Duration("elapsed", time.Since(start)))
			return current, nil
		}
	}

	var domainErr *domain.DomainError
	if !errors.As(genErr, &domainErr) || domainErr.Code != domain.CodeGeneration {
		domainErr = domain.NewGenerationError(genErr)
	}
	l.Error("Question generation failed",
		zap.String("session_id", sessionID),
		zap.String("topic", current.Topic),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(genErr))
	if err := current.Fail(domainErr.Message); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, current); err != nil {
		return nil, err
	}
	return nil, withGoBack(domainErr)
}

func (s *quizService) GetQuiz(ctx context.Context, sessionID string) (*dto.QuizView, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toQuizView(session), nil
}

func (s *quizService) SelectOption(ctx context.Context, sessionID string, option int) (*dto.QuizView, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.Select(option); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return toQuizView(session), nil
}

func (s *quizService) Next(ctx context.Context, sessionID string) (*dto.NextResponse, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	complete, err := session.Next()
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	if complete {
		logger.Get().Info("Quiz completed",
			zap.String("session_id", sessionID),
			zap.Int("score", session.Score),
			zap.Int("total", session.TotalQuestions))
		return &dto.NextResponse{Complete: true, Redirect: pathResults}, nil
	}
	return &dto.NextResponse{Quiz: toQuizView(session)}, nil
}

func (s *quizService) Previous(ctx context.Context, sessionID string) (*dto.QuizView, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.Previous(); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return toQuizView(session), nil
}

// generationFailed rebuilds the error for a session already in the error
// state, keeping the stored message verbatim.
func generationFailed(message string) error {
	return withGoBack(domain.NewError(domain.CodeGeneration, message, nil))
}

func withGoBack(err *domain.DomainError) *domain.DomainError {
	return err.WithContext("go_back", pathIntake)
}
