package llm

import (
	"context"
	"errors"
	"fmt"

	"topic-quiz/internal/config"
)

// Factory builds providers from configuration. Sessions that carry their own
// API key get a provider bound to that key; everyone else shares the default.
type Factory struct {
	cfg      config.LLMConfig
	fallback Provider
}

// NewFactory constructs the shared provider eagerly so misconfiguration
// surfaces at startup. A missing server-side key is tolerated when keys come
// from clients.
func NewFactory(ctx context.Context, cfg config.LLMConfig, requireClientKey bool) (*Factory, error) {
	f := &Factory{cfg: cfg}
	p, err := f.build(ctx, "")
	if err != nil {
		if !requireClientKey {
			return nil, err
		}
		return f, nil
	}
	f.fallback = p
	return f, nil
}

// NewStaticFactory always hands out p. Used by tests and the CLI.
func NewStaticFactory(p Provider) *Factory {
	return &Factory{fallback: p}
}

// ForKey returns the provider to use for a request carrying apiKey.
func (f *Factory) ForKey(ctx context.Context, apiKey string) (Provider, error) {
	if apiKey == "" || f.cfg.Provider == "" || f.cfg.Provider == "ollama" {
		if f.fallback == nil {
			return nil, &ErrModelUnavailable{Provider: f.cfg.Provider, Err: errors.New("no API key configured")}
		}
		return f.fallback, nil
	}
	return f.build(ctx, apiKey)
}

func (f *Factory) build(ctx context.Context, apiKey string) (Provider, error) {
	var (
		p   Provider
		err error
	)
	switch f.cfg.Provider {
	case "gemini":
		key := apiKey
		if key == "" {
			key = f.cfg.Gemini.APIKey
		}
		p, err = NewGeminiProvider(ctx, key, f.cfg.Model)
	case "openai":
		key := apiKey
		if key == "" {
			key = f.cfg.OpenAI.APIKey
		}
		p, err = NewOpenAIProvider(key, f.cfg.Model)
	case "ollama":
		p, err = NewOllamaProvider(f.cfg.Ollama.Server, f.cfg.Model, f.cfg.Timeout)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", f.cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return WithLogging(p), nil
}
