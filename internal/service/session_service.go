package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"topic-quiz/internal/domain"
	"topic-quiz/internal/dto"
	"topic-quiz/internal/logger"
	"topic-quiz/internal/util"

	"go.uber.org/zap"
)

// SessionService handles the intake stage and restarts.
type SessionService interface {
	// CreateSession validates the intake form and stores a new session.
	// existingID is the session the client already holds, if any.
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest, existingID string) (*dto.CreateSessionResponse, error)
	// Restart discards the session so the next visit starts at intake.
	Restart(ctx context.Context, sessionID string) error
}

type sessionService struct {
	sessions      domain.SessionRepository
	requireAPIKey bool
	now           func() time.Time
}

// NewSessionService creates a SessionService. With requireAPIKey set, the
// intake form must carry the user's own model API key.
func NewSessionService(sessions domain.SessionRepository, requireAPIKey bool) SessionService {
	return &sessionService{
		sessions:      sessions,
		requireAPIKey: requireAPIKey,
		now:           time.Now,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, req *dto.CreateSessionRequest, existingID string) (*dto.CreateSessionResponse, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("request body is required")
	}

	var errs domain.ValidationErrors
	if strings.TrimSpace(req.Topic) == "" {
		errs = append(errs, domain.NewMissingFieldError("topic"))
	}
	if s.requireAPIKey && strings.TrimSpace(req.APIKey) == "" {
		errs = append(errs, domain.NewMissingFieldError("api_key"))
	}
	if len(errs) > 0 {
		return nil, errs
	}

	topic := strings.TrimSpace(req.Topic)
	apiKey := ""
	if s.requireAPIKey {
		apiKey = strings.TrimSpace(req.APIKey)
	}

	if existingID != "" {
		existing, err := s.sessions.Get(ctx, existingID)
		var domainErr *domain.DomainError
		switch {
		case err == nil:
			pending := existing.State == domain.StatePending || existing.State == domain.StateLoading
			// A double-submitted form must not start a second generation.
			if pending && existing.Topic == topic && existing.APIKey == apiKey {
				logger.Get().Debug("Reusing pending session", zap.String("session_id", existingID))
				return &dto.CreateSessionResponse{SessionID: existing.ID, Next: pathQuiz}, nil
			}
			if err := s.sessions.Delete(ctx, existingID); err != nil {
				return nil, err
			}
			logger.Get().Debug("Replaced stale session", zap.String("session_id", existingID))
		case errors.As(err, &domainErr) && domainErr.Code == domain.CodeSessionNotFound:
			// Expired cookie.
		default:
			return nil, err
		}
	}

	session, err := domain.NewSession(util.NewULID(), topic, apiKey, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	logger.Get().Info("Quiz session created",
		zap.String("session_id", session.ID),
		zap.String("topic", session.Topic),
		zap.Bool("client_key", apiKey != ""))
	return &dto.CreateSessionResponse{SessionID: session.ID, Next: pathQuiz}, nil
}

func (s *sessionService) Restart(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	logger.Get().Info("Quiz session cleared", zap.String("session_id", sessionID))
	return nil
}
