package quizgen

import (
	"fmt"

	"topic-quiz/internal/domain"
	"topic-quiz/internal/llm"
)

// questionsSchema describes an array of exactly count questions.
func questionsSchema(count int) *llm.Schema {
	return &llm.Schema{
		Name: fmt.Sprintf("quiz-questions-%d", count),
		Definition: map[string]any{
			"type":     "array",
			"minItems": count,
			"maxItems": count,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"question": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"options": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "string"},
						"minItems": domain.OptionsPerQuestion,
						"maxItems": domain.OptionsPerQuestion,
					},
					"correctAnswer": map[string]any{
						"type":        "integer",
						"description": "Index of the correct option, 0 is the first option",
						"minimum":     0,
						"maximum":     domain.OptionsPerQuestion - 1,
					},
					"explanation": map[string]any{"type": "string"},
				},
				"required": []any{"question", "options", "correctAnswer", "explanation"},
			},
		},
	}
}

var recommendationSchema = &llm.Schema{
	Name: "learning-recommendations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"skills": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 1,
			},
			"courses": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":       map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
					},
					"required": []any{"title", "description"},
				},
				"minItems": 1,
			},
			"tips": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 1,
			},
		},
		"required": []any{"skills", "courses", "tips"},
	},
}
