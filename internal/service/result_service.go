package service

import (
	"context"
	"errors"

	"topic-quiz/internal/domain"
	"topic-quiz/internal/dto"
	"topic-quiz/internal/logger"
	"topic-quiz/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultAttemptsLimit = 10
	MaxAttemptsLimit     = 50
)

// ResultService builds the results page and the attempt history.
type ResultService interface {
	GetResults(ctx context.Context, sessionID string) (*dto.ResultsResponse, error)
	ListAttempts(ctx context.Context, limit int) (*dto.AttemptsResponse, error)
}

type resultService struct {
	sessions    domain.SessionRepository
	recommender domain.RecommendationGenerator
	attempts    domain.AttemptRepository
	flights     *singleflight.Group
}

// NewResultService creates a ResultService. attempts may be nil when
// history is disabled.
func NewResultService(sessions domain.SessionRepository, recommender domain.RecommendationGenerator, attempts domain.AttemptRepository) ResultService {
	return &resultService{
		sessions:    sessions,
		recommender: recommender,
		attempts:    attempts,
		flights:     &singleflight.Group{},
	}
}

func (s *resultService) GetResults(ctx context.Context, sessionID string) (*dto.ResultsResponse, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.HasResults() {
		return nil, domain.NewSessionNotFoundError(sessionID).WithContext("reason", "results not available")
	}

	percentage := domain.Percentage(session.Score, session.TotalQuestions)
	tier := domain.TierFor(percentage)

	rec := session.Recommendation
	if rec == nil {
		v, err, _ := s.flights.Do(sessionID+":recommendations", func() (interface{}, error) {
			return s.recommend(ctx, session, percentage, tier)
		})
		if err != nil {
			return nil, err
		}
		rec = v.(*domain.Recommendation)
	}

	return &dto.ResultsResponse{
		Topic:           session.Topic,
		Score:           session.Score,
		TotalQuestions:  session.TotalQuestions,
		Percentage:      percentage,
		Tier:            string(tier),
		Message:         tier.Message(),
		Recommendations: toRecommendationResponse(*rec),
		Review:          toReview(session.Questions, session.Answers),
	}, nil
}

// recommend generates, stores and records the recommendation for the first
// results view of a session.
func (s *resultService) recommend(ctx context.Context, session *domain.Session, percentage int, tier domain.Tier) (*domain.Recommendation, error) {
	ctx = context.WithoutCancel(ctx)

	rec := s.recommender.GenerateRecommendations(ctx, session.Score, session.TotalQuestions, session.Topic, session.APIKey)

	// Restart may have cleared the session while we were waiting.
	current, err := s.sessions.Get(ctx, session.ID)
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == domain.CodeSessionNotFound {
			logger.Get().Info("Discarding recommendations for cleared session", zap.String("session_id", session.ID))
			return &rec, nil
		}
		return nil, err
	}
	if current.Recommendation != nil {
		return current.Recommendation, nil
	}
	current.Recommendation = &rec
	if err := s.sessions.Save(ctx, current); err != nil {
		return nil, err
	}

	if s.attempts != nil {
		attempt := &domain.Attempt{
			ID:             util.NewULID(),
			SessionID:      session.ID,
			Topic:          session.Topic,
			Score:          session.Score,
			TotalQuestions: session.TotalQuestions,
			Percentage:     percentage,
			Tier:           tier,
		}
		if err := s.attempts.CreateAttempt(ctx, attempt); err != nil {
			logger.Get().Warn("Failed to record quiz attempt", zap.String("session_id", session.ID), zap.Error(err))
		}
	}
	return &rec, nil
}

func (s *resultService) ListAttempts(ctx context.Context, limit int) (*dto.AttemptsResponse, error) {
	if s.attempts == nil {
		return nil, domain.NewError(domain.CodeHistoryUnavailable, "attempt history is disabled", nil)
	}
	if limit <= 0 {
		limit = DefaultAttemptsLimit
	}
	if limit > MaxAttemptsLimit {
		return nil, domain.ValidationErrors{domain.NewOutOfRangeError("limit", limit, 1, MaxAttemptsLimit)}
	}

	attempts, err := s.attempts.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	resp := &dto.AttemptsResponse{Attempts: make([]dto.AttemptResponse, 0, len(attempts))}
	for _, a := range attempts {
		resp.Attempts = append(resp.Attempts, toAttemptResponse(a))
	}
	return resp, nil
}
