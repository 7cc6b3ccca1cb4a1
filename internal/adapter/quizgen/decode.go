package quizgen

import (
	"encoding/json"
	"errors"
	"strings"

	"topic-quiz/internal/llm"
)

// DecodeResult is the tagged outcome of decoding model output: either Value
// is usable or Err says why not. Raw keeps the cleaned text for logging.
type DecodeResult[T any] struct {
	Value T
	Err   error
	Raw   string
}

// OK reports whether decoding succeeded.
func (r DecodeResult[T]) OK() bool {
	return r.Err == nil
}

// decode cleans text, validates it against schema and unmarshals it into T.
func decode[T any](schema *llm.Schema, text string) DecodeResult[T] {
	cleaned := cleanResponse(text)
	result := DecodeResult[T]{Raw: cleaned}

	if cleaned == "" {
		result.Err = &llm.ErrMalformedReply{Reply: text, Err: errors.New("empty reply")}
		return result
	}
	if err := llm.ValidateReply(schema, cleaned); err != nil {
		result.Err = err
		return result
	}

	if err := json.Unmarshal([]byte(cleaned), &result.Value); err != nil {
		result.Err = &llm.ErrMalformedReply{Reply: cleaned, Err: err}
	}
	return result
}

// cleanResponse strips markdown code fences and <think> blocks that local
// reasoning models prepend to their answer.
func cleanResponse(text string) string {
	cleaned := strings.TrimSpace(text)

	for {
		start := strings.Index(cleaned, "<think>")
		if start == -1 {
			break
		}
		end := strings.Index(cleaned, "</think>")
		if end == -1 || end < start {
			break
		}
		cleaned = cleaned[:start] + cleaned[end+len("</think>"):]
	}

	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}
