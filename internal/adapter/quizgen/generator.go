package quizgen

import (
	"context"
	"errors"
	"fmt"

	"topic-quiz/internal/domain"
	"topic-quiz/internal/llm"
	"topic-quiz/internal/logger"

	"go.uber.org/zap"
)

// ProviderSource hands out the provider for a request. *llm.Factory
// satisfies it.
type ProviderSource interface {
	ForKey(ctx context.Context, apiKey string) (llm.Provider, error)
}

// Generator implements domain.QuestionGenerator and
// domain.RecommendationGenerator on top of an llm.Provider.
type Generator struct {
	providers   ProviderSource
	temperature float64
}

// NewGenerator creates a Generator. temperature is passed to every request.
func NewGenerator(providers ProviderSource, temperature float64) *Generator {
	return &Generator{providers: providers, temperature: temperature}
}

// GenerateQuestions asks the model for count questions about topic. Any
// transport, parse or schema failure becomes a domain.GenerationError.
func (g *Generator) GenerateQuestions(ctx context.Context, topic string, count int, apiKey string) (domain.QuestionSet, error) {
	l := logger.Get()
	if count <= 0 {
		count = domain.QuestionsPerSession
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestions)

	provider, err := g.providers.ForKey(ctx, apiKey)
	if err != nil {
		return nil, domain.NewGenerationError(err)
	}

	l.Info("Generating questions", zap.String("topic", topic), zap.Int("count", count), zap.String("model", provider.ModelID()))
	schema := questionsSchema(count)
	resp, err := provider.Generate(ctx, llm.Request{
		Prompt:      questionsPrompt(topic, count),
		Schema:      schema,
		Temperature: g.temperature,
	})
	if err != nil {
		l.Error("Question generation request failed", zap.String("topic", topic), zap.Error(err))
		return nil, domain.NewGenerationError(err)
	}

	result := decode[domain.QuestionSet](schema, resp.Text)
	if !result.OK() {
		l.Error("Failed to parse quiz questions", zap.Error(result.Err), zap.String("raw_response", resp.Text))
		return nil, domain.NewGenerationError(errors.New("failed to parse quiz questions from API response"))
	}
	if err := result.Value.Validate(count); err != nil {
		l.Error("Generated questions are invalid", zap.Error(err), zap.String("raw_response", resp.Text))
		return nil, domain.NewGenerationError(err)
	}

	return result.Value, nil
}

// GenerateRecommendations asks the model for learning advice. It never fails:
// every error is logged and replaced by domain.FallbackRecommendation.
func (g *Generator) GenerateRecommendations(ctx context.Context, score, total int, topic string, apiKey string) domain.Recommendation {
	percentage := domain.Percentage(score, total)
	tier := domain.TierFor(percentage)

	rec, err := g.recommend(ctx, score, total, percentage, tier, topic, apiKey)
	if err != nil {
		logger.Get().Warn("Using fallback recommendations",
			zap.String("topic", topic),
			zap.String("tier", string(tier)),
			zap.Error(domain.NewRecommendationError(err)))
		return domain.FallbackRecommendation(topic, tier)
	}
	return rec
}

func (g *Generator) recommend(ctx context.Context, score, total, percentage int, tier domain.Tier, topic, apiKey string) (domain.Recommendation, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeRecommendations)

	provider, err := g.providers.ForKey(ctx, apiKey)
	if err != nil {
		return domain.Recommendation{}, err
	}

	resp, err := provider.Generate(ctx, llm.Request{
		Prompt:      recommendationPrompt(topic, score, total, percentage, tier),
		Schema:      recommendationSchema,
		Temperature: g.temperature,
	})
	if err != nil {
		return domain.Recommendation{}, err
	}

	result := decode[domain.Recommendation](recommendationSchema, resp.Text)
	if !result.OK() {
		return domain.Recommendation{}, fmt.Errorf("decode recommendations: %w", result.Err)
	}
	return result.Value, nil
}

var (
	_ domain.QuestionGenerator       = (*Generator)(nil)
	_ domain.RecommendationGenerator = (*Generator)(nil)
)
