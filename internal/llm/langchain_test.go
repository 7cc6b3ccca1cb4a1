package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// fakeModel is a minimal llms.Model returning a fixed completion.
type fakeModel struct {
	text    string
	err     error
	prompts []string
	opts    llms.CallOptions
}

func (f *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, o := range options {
		o(&f.opts)
	}
	for _, m := range messages {
		for _, part := range m.Parts {
			if tp, ok := part.(llms.TextContent); ok {
				f.prompts = append(f.prompts, tp.Text)
			}
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.text}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func TestLangchainProvider_Generate(t *testing.T) {
	model := &fakeModel{text: `{"ok":true}`}
	p := NewLangchainProvider(model, "llama3")

	resp, err := p.Generate(context.Background(), Request{Prompt: "hello", Temperature: 0.4, MaxTokens: 100})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, resp.Text)
	assert.Equal(t, "llama3", resp.Model)
	assert.Equal(t, "llama3", p.ModelID())
	assert.Equal(t, []string{"hello"}, model.prompts)
	assert.Equal(t, 0.4, model.opts.Temperature)
	assert.Equal(t, 100, model.opts.MaxTokens)
}

func TestLangchainProvider_GenerateError(t *testing.T) {
	p := NewLangchainProvider(&fakeModel{err: errors.New("connection refused")}, "llama3")

	_, err := p.Generate(context.Background(), Request{Prompt: "hello"})
	var unavailable *ErrModelUnavailable
	assert.ErrorAs(t, err, &unavailable)
}

func TestNewOllamaProvider_Validation(t *testing.T) {
	_, err := NewOllamaProvider("", "llama3", 0)
	assert.Error(t, err)
	_, err = NewOllamaProvider("http://localhost:11434", "", 0)
	assert.Error(t, err)
}

func TestNewOpenAIProvider_RequiresKey(t *testing.T) {
	_, err := NewOpenAIProvider("", "gpt-4o-mini")
	assert.Error(t, err)
}
