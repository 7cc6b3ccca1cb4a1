package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"topic-quiz/internal/cache"
	"topic-quiz/internal/domain"
	"topic-quiz/internal/logger"
	"topic-quiz/internal/repository/models"

	"go.uber.org/zap"
)

// cacheSessionRepository stores each session as one hash in a domain.Cache.
type cacheSessionRepository struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewCacheSessionRepository creates a session repository on top of cache.
// Every write refreshes the session TTL; a zero ttl keeps sessions forever.
func NewCacheSessionRepository(c domain.Cache, ttl time.Duration) domain.SessionRepository {
	return &cacheSessionRepository{cache: c, ttl: ttl}
}

// Create stores a new session.
func (r *cacheSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if session == nil || session.ID == "" {
		return domain.NewInvalidInputError("session must have an id")
	}
	return r.Save(ctx, session)
}

// Get loads the session with id sessionID. A missing or expired session
// yields a SESSION_NOT_FOUND DomainError.
func (r *cacheSessionRepository) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	key := cache.SessionKey(sessionID)

	fields, err := r.cache.HGetAll(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewSessionNotFoundError(sessionID)
		}
		logger.Get().Error("Failed to load session", zap.String("key", key), zap.Error(err))
		return nil, domain.NewInternalError("failed to load session", err)
	}

	session, err := decodeSession(sessionID, fields)
	if err != nil {
		logger.Get().Error("Stored session is corrupt", zap.String("key", key), zap.Error(err))
		return nil, domain.NewInternalError("failed to decode session", err)
	}
	return session, nil
}

// Save writes every field of session and removes the optional fields it
// does not carry.
func (r *cacheSessionRepository) Save(ctx context.Context, session *domain.Session) error {
	key := cache.SessionKey(session.ID)

	set, del, err := encodeSession(session)
	if err != nil {
		return domain.NewInternalError("failed to encode session", err)
	}

	if err := r.cache.HSet(ctx, key, set...); err != nil {
		logger.Get().Error("Failed to save session", zap.String("key", key), zap.Error(err))
		return domain.NewInternalError("failed to save session", err)
	}
	if len(del) > 0 {
		if err := r.cache.HDel(ctx, key, del...); err != nil {
			return domain.NewInternalError("failed to save session", err)
		}
	}
	if r.ttl > 0 {
		if err := r.cache.Expire(ctx, key, r.ttl); err != nil {
			return domain.NewInternalError("failed to refresh session ttl", err)
		}
	}
	logger.Get().Debug("Session saved", zap.String("key", key), zap.String("state", string(session.State)))
	return nil
}

// Delete discards the session. Deleting a missing session is not an error.
func (r *cacheSessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.cache.Delete(ctx, cache.SessionKey(sessionID)); err != nil {
		return domain.NewInternalError("failed to delete session", err)
	}
	return nil
}

func encodeSession(s *domain.Session) (set []string, del []string, err error) {
	answers := s.Answers
	if answers == nil {
		answers = []int{}
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, nil, err
	}

	set = []string{
		models.FieldTopic, s.Topic,
		models.FieldState, string(s.State),
		models.FieldCurrentIndex, strconv.Itoa(s.CurrentIndex),
		models.FieldScore, strconv.Itoa(s.Score),
		models.FieldTotalQuestions, strconv.Itoa(s.TotalQuestions),
		models.FieldAnswers, string(answersJSON),
		models.FieldCreatedAt, s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}

	if s.APIKey != "" {
		set = append(set, models.FieldAPIKey, s.APIKey)
	} else {
		del = append(del, models.FieldAPIKey)
	}
	if s.Selection != nil {
		set = append(set, models.FieldSelection, strconv.Itoa(*s.Selection))
	} else {
		del = append(del, models.FieldSelection)
	}
	if len(s.Questions) > 0 {
		questionsJSON, err := json.Marshal(s.Questions)
		if err != nil {
			return nil, nil, err
		}
		set = append(set, models.FieldQuestions, string(questionsJSON))
	} else {
		del = append(del, models.FieldQuestions)
	}
	if s.ErrorMessage != "" {
		set = append(set, models.FieldError, s.ErrorMessage)
	} else {
		del = append(del, models.FieldError)
	}
	if s.Recommendation != nil {
		recJSON, err := json.Marshal(s.Recommendation)
		if err != nil {
			return nil, nil, err
		}
		set = append(set, models.FieldRecommendation, string(recJSON))
	} else {
		del = append(del, models.FieldRecommendation)
	}
	return set, del, nil
}

func decodeSession(id string, fields map[string]string) (*domain.Session, error) {
	s := &domain.Session{
		ID:           id,
		Topic:        fields[models.FieldTopic],
		APIKey:       fields[models.FieldAPIKey],
		State:        domain.SessionState(fields[models.FieldState]),
		ErrorMessage: fields[models.FieldError],
		Answers:      []int{},
	}
	if s.State == "" {
		s.State = domain.StatePending
	}

	var err error
	if s.CurrentIndex, err = atoiField(fields, models.FieldCurrentIndex); err != nil {
		return nil, err
	}
	if s.Score, err = atoiField(fields, models.FieldScore); err != nil {
		return nil, err
	}
	if s.TotalQuestions, err = atoiField(fields, models.FieldTotalQuestions); err != nil {
		return nil, err
	}
	if v, ok := fields[models.FieldSelection]; ok {
		sel, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", models.FieldSelection, err)
		}
		s.Selection = &sel
	}
	if v, ok := fields[models.FieldAnswers]; ok && v != "" {
		if err := json.Unmarshal([]byte(v), &s.Answers); err != nil {
			return nil, fmt.Errorf("%s: %w", models.FieldAnswers, err)
		}
	}
	if v, ok := fields[models.FieldQuestions]; ok && v != "" {
		if err := json.Unmarshal([]byte(v), &s.Questions); err != nil {
			return nil, fmt.Errorf("%s: %w", models.FieldQuestions, err)
		}
	}
	if v, ok := fields[models.FieldRecommendation]; ok && v != "" {
		var rec domain.Recommendation
		if err := json.Unmarshal([]byte(v), &rec); err != nil {
			return nil, fmt.Errorf("%s: %w", models.FieldRecommendation, err)
		}
		s.Recommendation = &rec
	}
	if v, ok := fields[models.FieldCreatedAt]; ok && v != "" {
		if s.CreatedAt, err = time.Parse(time.RFC3339Nano, v); err != nil {
			return nil, fmt.Errorf("%s: %w", models.FieldCreatedAt, err)
		}
	}
	return s, nil
}

func atoiField(fields map[string]string, name string) (int, error) {
	v, ok := fields[name]
	if !ok || v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}
