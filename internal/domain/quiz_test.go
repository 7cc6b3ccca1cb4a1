package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validQuestion() Question {
	return Question{
		Question:      "What is 2 + 2?",
		Options:       []string{"3", "4", "5", "22"},
		CorrectAnswer: 1,
		Explanation:   "Two plus two is four.",
	}
}

func TestQuestion_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(q *Question)
		wantErr bool
		errText string
	}{
		{"valid question", func(q *Question) {}, false, ""},
		{"empty text", func(q *Question) { q.Question = "  " }, true, "question text is required"},
		{"three options", func(q *Question) { q.Options = q.Options[:3] }, true, "exactly 4 options"},
		{"five options", func(q *Question) { q.Options = append(q.Options, "6") }, true, "exactly 4 options"},
		{"negative correct answer", func(q *Question) { q.CorrectAnswer = -1 }, true, "not a valid option index"},
		{"correct answer past options", func(q *Question) { q.CorrectAnswer = 4 }, true, "not a valid option index"},
		{"last option correct", func(q *Question) { q.CorrectAnswer = 3 }, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)
			err := q.Validate()
			if tt.wantErr {
				if assert.Error(t, err) {
					assert.Contains(t, err.Error(), tt.errText)
				}
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestQuestion_OptionText(t *testing.T) {
	q := validQuestion()
	assert.Equal(t, "4", q.OptionText(1))
	assert.Equal(t, "", q.OptionText(-1))
	assert.Equal(t, "", q.OptionText(4))
}

func TestQuestionSet_Validate(t *testing.T) {
	set := QuestionSet{validQuestion(), validQuestion(), validQuestion(), validQuestion(), validQuestion()}
	assert.NoError(t, set.Validate(QuestionsPerSession))

	err := set[:4].Validate(QuestionsPerSession)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "expected 5 questions, got 4")
	}

	assert.Error(t, QuestionSet{}.Validate(0))

	broken := append(QuestionSet{}, set...)
	broken[2].CorrectAnswer = 7
	err = broken.Validate(QuestionsPerSession)
	if assert.Error(t, err) {
		assert.True(t, strings.HasPrefix(err.Error(), "question 3:"), err.Error())
	}
}

func TestScore(t *testing.T) {
	set := QuestionSet{validQuestion(), validQuestion(), validQuestion()}
	set[2].CorrectAnswer = 0

	assert.Equal(t, 0, Score(set, nil))
	assert.Equal(t, 1, Score(set, []int{1}))
	assert.Equal(t, 3, Score(set, []int{1, 1, 0}))
	assert.Equal(t, 1, Score(set, []int{1, 2, 3}))
	assert.Equal(t, 3, Score(set, []int{1, 1, 0, 1, 1}), "answers beyond the set are ignored")
}

func TestPercentageAndTier(t *testing.T) {
	tests := []struct {
		score, total int
		percentage   int
		tier         Tier
	}{
		{5, 5, 100, TierAdvanced},
		{4, 5, 80, TierAdvanced},
		{3, 5, 60, TierIntermediate},
		{2, 5, 40, TierBeginner},
		{0, 5, 0, TierBeginner},
		{2, 3, 67, TierIntermediate},
		{1, 3, 33, TierBeginner},
		{1, 0, 0, TierBeginner},
	}
	for _, tt := range tests {
		p := Percentage(tt.score, tt.total)
		assert.Equal(t, tt.percentage, p, "percentage for %d/%d", tt.score, tt.total)
		assert.Equal(t, tt.tier, TierFor(p), "tier for %d/%d", tt.score, tt.total)
	}
}

func TestTier_Message(t *testing.T) {
	assert.Contains(t, TierAdvanced.Message(), "Excellent!")
	assert.Contains(t, TierIntermediate.Message(), "Good job!")
	assert.Contains(t, TierBeginner.Message(), "Keep learning!")
}

func TestFallbackRecommendation(t *testing.T) {
	tests := []struct {
		tier     Tier
		audience string
	}{
		{TierBeginner, "Beginners"},
		{TierIntermediate, "Intermediate Learners"},
		{TierAdvanced, "Advanced Users"},
	}
	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			rec := FallbackRecommendation("Go Concurrency", tt.tier)
			assert.Len(t, rec.Skills, 4)
			assert.Len(t, rec.Courses, 3)
			assert.Len(t, rec.Tips, 2)
			for _, s := range rec.Skills {
				assert.Contains(t, s, "Go Concurrency")
			}
			assert.Equal(t, "Go Concurrency for "+tt.audience, rec.Courses[0].Title)
			assert.Contains(t, rec.Courses[0].Description, string(tt.tier)+" level learners")
			assert.Equal(t, "Regular practice is key to mastering Go Concurrency.", rec.Tips[0])
		})
	}

	assert.Equal(t, FallbackRecommendation("X", TierBeginner), FallbackRecommendation("X", TierBeginner))
}
