package quizgen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"topic-quiz/internal/domain"
	"topic-quiz/internal/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionJSON(correct int) string {
	return fmt.Sprintf(`{"question":"What is a goroutine?","options":["A thread","A lightweight thread managed by the Go runtime","A process","A channel"],"correctAnswer":%d,"explanation":"Goroutines are scheduled by the runtime."}`, correct)
}

func questionsJSON(n int) string {
	items := make([]string, n)
	for i := range items {
		items[i] = questionJSON(1)
	}
	return "[" + strings.Join(items, ",") + "]"
}

const recommendationJSON = `{
  "skills": ["Concurrency patterns"],
  "courses": [{"title": "Go in Practice", "description": "Hands-on Go"}],
  "tips": ["Write small programs daily"]
}`

type keyRecorder struct {
	provider llm.Provider
	keys     []string
	err      error
}

func (k *keyRecorder) ForKey(_ context.Context, apiKey string) (llm.Provider, error) {
	k.keys = append(k.keys, apiKey)
	if k.err != nil {
		return nil, k.err
	}
	return k.provider, nil
}

func TestGenerateQuestions(t *testing.T) {
	tests := []struct {
		name     string
		response llm.Reply
		wantErr  bool
		wantLen  int
	}{
		{
			name:     "plain json",
			response: llm.Reply{Text: questionsJSON(5)},
			wantLen:  5,
		},
		{
			name:     "fenced json",
			response: llm.Reply{Text: "```json\n" + questionsJSON(5) + "\n```"},
			wantLen:  5,
		},
		{
			name:     "think block before json",
			response: llm.Reply{Text: "<think>Let me plan five questions.</think>\n" + questionsJSON(5)},
			wantLen:  5,
		},
		{
			name:     "wrong question count",
			response: llm.Reply{Text: questionsJSON(3)},
			wantErr:  true,
		},
		{
			name:     "correct answer out of range",
			response: llm.Reply{Text: "[" + strings.Repeat(questionJSON(4)+",", 4) + questionJSON(4) + "]"},
			wantErr:  true,
		},
		{
			name:     "not json",
			response: llm.Reply{Text: "Sorry, I cannot help with that."},
			wantErr:  true,
		},
		{
			name:     "empty response",
			response: llm.Reply{Text: "   "},
			wantErr:  true,
		},
		{
			name:     "provider failure",
			response: llm.Reply{Err: &llm.ErrModelUnavailable{Err: errors.New("connection refused")}},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewScriptedProvider(tt.response)
			g := NewGenerator(llm.NewStaticFactory(mock), 0.7)

			questions, err := g.GenerateQuestions(context.Background(), "Go concurrency", domain.QuestionsPerSession, "")
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, questions)
				var domainErr *domain.DomainError
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, domain.CodeGeneration, domainErr.Code)
				assert.True(t, strings.HasPrefix(domainErr.Message, "Failed to generate quiz questions"))
				return
			}
			require.NoError(t, err)
			assert.Len(t, questions, tt.wantLen)
			for _, q := range questions {
				assert.True(t, q.HasOption(q.CorrectAnswer))
			}
		})
	}
}

func TestGenerateQuestions_Request(t *testing.T) {
	mock := llm.NewScriptedProvider(llm.Reply{Text: questionsJSON(5)})
	g := NewGenerator(llm.NewStaticFactory(mock), 0.3)

	_, err := g.GenerateQuestions(context.Background(), "Kubernetes", 5, "")
	require.NoError(t, err)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Requests()[0]
	assert.Contains(t, req.Prompt, `Generate 5 multiple-choice quiz questions about "Kubernetes"`)
	assert.Contains(t, req.Prompt, "0-3")
	assert.Equal(t, 0.3, req.Temperature)
	require.NotNil(t, req.Schema)
	assert.Equal(t, "quiz-questions-5", req.Schema.Name)
}

func TestGenerateQuestions_PassesClientKey(t *testing.T) {
	source := &keyRecorder{provider: llm.NewScriptedProvider(llm.Reply{Text: questionsJSON(5)})}
	g := NewGenerator(source, 0.7)

	_, err := g.GenerateQuestions(context.Background(), "Rust", 5, "client-key")
	require.NoError(t, err)
	assert.Equal(t, []string{"client-key"}, source.keys)
}

func TestGenerateQuestions_NoProvider(t *testing.T) {
	source := &keyRecorder{err: &llm.ErrModelUnavailable{Err: errors.New("no API key configured")}}
	g := NewGenerator(source, 0.7)

	_, err := g.GenerateQuestions(context.Background(), "Rust", 5, "")
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeGeneration, domainErr.Code)
}

func TestGenerateRecommendations(t *testing.T) {
	mock := llm.NewScriptedProvider(llm.Reply{Text: "```json\n" + recommendationJSON + "\n```"})
	g := NewGenerator(llm.NewStaticFactory(mock), 0.7)

	rec := g.GenerateRecommendations(context.Background(), 3, 5, "Go", "")

	assert.Equal(t, []string{"Concurrency patterns"}, rec.Skills)
	assert.Equal(t, "Go in Practice", rec.Courses[0].Title)
	assert.Equal(t, []string{"Write small programs daily"}, rec.Tips)

	require.Equal(t, 1, mock.CallCount())
	assert.Contains(t, mock.Requests()[0].Prompt, "scored 3/5 (60%)")
	assert.Contains(t, mock.Requests()[0].Prompt, `"intermediate" level`)
}

func TestGenerateRecommendations_FallsBack(t *testing.T) {
	tests := []struct {
		name     string
		response llm.Reply
		score    int
		tier     domain.Tier
	}{
		{name: "provider error", response: llm.Reply{Err: errors.New("boom")}, score: 2, tier: domain.TierBeginner},
		{name: "malformed json", response: llm.Reply{Text: "{skills:"}, score: 4, tier: domain.TierAdvanced},
		{name: "schema mismatch", response: llm.Reply{Text: `{"skills":"one"}`}, score: 3, tier: domain.TierIntermediate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(llm.NewStaticFactory(llm.NewScriptedProvider(tt.response)), 0.7)

			rec := g.GenerateRecommendations(context.Background(), tt.score, 5, "Docker", "")

			assert.Equal(t, domain.FallbackRecommendation("Docker", tt.tier), rec)
			assert.Len(t, rec.Skills, 4)
			assert.Len(t, rec.Courses, 3)
			assert.Len(t, rec.Tips, 2)
		})
	}
}

func TestCleanResponse(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanResponse("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanResponse("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanResponse("<think>\nhmm\n</think>\n{\"a\":1}"))
	assert.Equal(t, `<think>unterminated {"a":1}`, cleanResponse(`<think>unterminated {"a":1}`))
}
