package llm

import (
	"context"
	"errors"
	"testing"

	"topic-quiz/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_StaticAlwaysReturnsSameProvider(t *testing.T) {
	scripted := NewScriptedProvider()
	f := NewStaticFactory(scripted)

	p, err := f.ForKey(context.Background(), "")
	require.NoError(t, err)
	assert.Same(t, scripted, p)

	p, err = f.ForKey(context.Background(), "client-key")
	require.NoError(t, err)
	assert.Same(t, scripted, p)
}

func TestFactory_ClientKeyModeWithoutServerKey(t *testing.T) {
	cfg := config.LLMConfig{Provider: "gemini", Model: "gemini-flash"}

	_, err := NewFactory(context.Background(), cfg, false)
	require.Error(t, err)

	f, err := NewFactory(context.Background(), cfg, true)
	require.NoError(t, err)

	_, err = f.ForKey(context.Background(), "")
	var unavailable *ErrModelUnavailable
	assert.ErrorAs(t, err, &unavailable)
}

func TestFactory_UnsupportedProvider(t *testing.T) {
	_, err := NewFactory(context.Background(), config.LLMConfig{Provider: "anthropic"}, false)
	assert.Error(t, err)
}

func TestFactory_OllamaIgnoresClientKey(t *testing.T) {
	cfg := config.LLMConfig{
		Provider: "ollama",
		Model:    "llama3",
		Ollama:   config.OllamaConfig{Server: "http://localhost:11434"},
	}
	f, err := NewFactory(context.Background(), cfg, false)
	require.NoError(t, err)

	p1, err := f.ForKey(context.Background(), "")
	require.NoError(t, err)
	p2, err := f.ForKey(context.Background(), "client-key")
	require.NoError(t, err)
	assert.Same(t, p1, p2)
	assert.Equal(t, "llama3", p1.ModelID())
}

func TestScriptedProvider_RepliesInOrder(t *testing.T) {
	p := NewScriptedProvider(Reply{Text: "first"}, Reply{Err: &ErrRateLimited{Provider: "gemini"}}, Reply{Text: "third"})

	r1, err := p.Generate(context.Background(), Request{Prompt: "a"})
	require.NoError(t, err)
	assert.Equal(t, "first", r1.Text)
	assert.Equal(t, "scripted", r1.Model)

	_, err = p.Generate(context.Background(), Request{Prompt: "b"})
	var limited *ErrRateLimited
	require.ErrorAs(t, err, &limited)
	assert.Contains(t, err.Error(), "gemini: quota exhausted")

	r3, err := p.Generate(context.Background(), Request{Prompt: "c"})
	require.NoError(t, err)
	assert.Equal(t, "third", r3.Text)

	_, err = p.Generate(context.Background(), Request{Prompt: "d"})
	var unavailable *ErrModelUnavailable
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "scripted", unavailable.Provider)

	assert.Equal(t, 4, p.CallCount())
	prompts := make([]string, 0, 4)
	for _, req := range p.Requests() {
		prompts = append(prompts, req.Prompt)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, prompts)
}

func TestPurpose(t *testing.T) {
	assert.Equal(t, Purpose("unlabelled"), PurposeFrom(context.Background()))
	assert.Equal(t, PurposeQuestions, PurposeFrom(WithPurpose(context.Background(), PurposeQuestions)))
}

func TestErrModelUnavailable_Message(t *testing.T) {
	assert.Equal(t, "model unavailable", (&ErrModelUnavailable{}).Error())
	err := &ErrModelUnavailable{Provider: "gemini", Err: errors.New("no API key configured")}
	assert.Equal(t, "gemini unavailable: no API key configured", err.Error())
}
