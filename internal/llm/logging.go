package llm

import (
	"context"
	"time"

	"topic-quiz/internal/logger"

	"go.uber.org/zap"
)

// LoggingProvider is a decorator that logs every completion request.
type LoggingProvider struct {
	inner Provider
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider) Provider {
	return &LoggingProvider{inner: p}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	fields := []zap.Field{
		zap.String("model", l.inner.ModelID()),
		zap.String("purpose", string(PurposeFrom(ctx))),
		zap.Duration("latency", time.Since(start)),
		zap.Int("prompt_chars", len(req.Prompt)),
	}
	if req.Schema != nil {
		fields = append(fields, zap.String("schema", req.Schema.Name))
	}

	log := logger.Get()
	if err != nil {
		log.Warn("LLM request failed", append(fields, zap.Error(err))...)
		return nil, err
	}
	log.Debug("LLM request completed", append(fields, zap.Int("response_chars", len(resp.Text)))...)
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
