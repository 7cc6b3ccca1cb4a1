package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func optionsSchema(count int) *Schema {
	return &Schema{
		Name: "quiz-options",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question":      map[string]any{"type": "string", "minLength": 1},
				"correctAnswer": map[string]any{"type": "integer", "minimum": 0},
				"options": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": count,
					"maxItems": count,
				},
			},
			"required": []any{"question", "correctAnswer"},
		},
	}
}

func TestValidateReply(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		wantErr string
	}{
		{name: "valid", reply: `{"question":"What is a goroutine?","correctAnswer":1,"options":["a","b"]}`},
		{name: "options omitted", reply: `{"question":"What is a slice?","correctAnswer":0}`},
		{name: "missing answer", reply: `{"question":"What is a map?"}`, wantErr: "does not match quiz-options"},
		{name: "answer as text", reply: `{"question":"Q","correctAnswer":"B"}`, wantErr: "does not match quiz-options"},
		{name: "negative answer", reply: `{"question":"Q","correctAnswer":-1}`, wantErr: "does not match quiz-options"},
		{name: "too many options", reply: `{"question":"Q","correctAnswer":0,"options":["a","b","c"]}`, wantErr: "does not match quiz-options"},
		{name: "prose", reply: `Here is your quiz!`, wantErr: "not JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReply(optionsSchema(2), tt.reply)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var malformed *ErrMalformedReply
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.reply, malformed.Reply)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateReply_SameNameDifferentCount(t *testing.T) {
	reply := `{"question":"Q","correctAnswer":0,"options":["a","b","c"]}`

	require.Error(t, ValidateReply(optionsSchema(2), reply))
	assert.NoError(t, ValidateReply(optionsSchema(3), reply))
	assert.Error(t, ValidateReply(optionsSchema(2), reply))
}

func TestValidateReply_NilSchema(t *testing.T) {
	assert.NoError(t, ValidateReply(nil, "anything at all"))
}
