package llm

import "context"

// Provider is the abstraction over a hosted text-completion model.
type Provider interface {
	// Generate sends a single prompt and returns the raw text completion.
	// When req.Schema is set, providers that support structured output are
	// asked to produce JSON matching it; the caller still validates the text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes one completion call.
type Request struct {
	// Prompt is the full natural-language instruction.
	Prompt string

	// Schema, when set, describes the JSON the caller expects back.
	Schema *Schema

	// Temperature controls randomness. Zero leaves the provider default.
	Temperature float64

	// MaxTokens caps the response length. Zero leaves the provider default.
	MaxTokens int
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema, kebab-case, e.g. "quiz-questions".
	Name string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response holds the model output.
type Response struct {
	// Text is the completion exactly as returned by the provider.
	Text string

	// Model is the model that served the request.
	Model string
}
