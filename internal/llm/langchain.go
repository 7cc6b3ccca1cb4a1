package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// LangchainProvider implements Provider on top of any langchaingo model.
type LangchainProvider struct {
	model   llms.Model
	modelID string
}

// NewLangchainProvider wraps an already constructed langchaingo model.
func NewLangchainProvider(model llms.Model, modelID string) *LangchainProvider {
	return &LangchainProvider{model: model, modelID: modelID}
}

// NewOllamaProvider talks to a local Ollama server. A zero timeout means the
// HTTP client never gives up on its own.
func NewOllamaProvider(serverURL, model string, timeout time.Duration) (*LangchainProvider, error) {
	if serverURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}

	httpClient := &http.Client{Timeout: timeout}
	llm, err := ollama.New(
		ollama.WithServerURL(serverURL),
		ollama.WithModel(model),
		ollama.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ollama client: %w", err)
	}
	return NewLangchainProvider(llm, model), nil
}

// NewOpenAIProvider talks to the OpenAI chat completions API.
func NewOpenAIProvider(apiKey, model string) (*LangchainProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key cannot be empty")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}

	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}
	return NewLangchainProvider(llm, model), nil
}

func (p *LangchainProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var opts []llms.CallOption
	if req.Temperature > 0 {
		opts = append(opts, llms.WithTemperature(req.Temperature))
	}
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}

	text, err := llms.GenerateFromSinglePrompt(ctx, p.model, req.Prompt, opts...)
	if err != nil {
		return nil, &ErrModelUnavailable{Provider: p.modelID, Err: err}
	}
	return &Response{Text: text, Model: p.modelID}, nil
}

func (p *LangchainProvider) ModelID() string {
	return p.modelID
}
