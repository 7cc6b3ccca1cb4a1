package domain

import (
	"fmt"
	"math"
	"strings"
)

const (
	// QuestionsPerSession is the fixed size of a generated question set.
	QuestionsPerSession = 5
	// OptionsPerQuestion is the number of answer options every question carries.
	OptionsPerQuestion = 4
)

// Question is a single generated multiple-choice question.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Validate checks the question invariants: non-empty text, exactly four
// options and a correct answer that indexes into them.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return NewValidationError("question text is required")
	}
	if len(q.Options) != OptionsPerQuestion {
		return NewValidationError(fmt.Sprintf("question must have exactly %d options, got %d", OptionsPerQuestion, len(q.Options)))
	}
	if !q.HasOption(q.CorrectAnswer) {
		return NewValidationError(fmt.Sprintf("correct answer %d is not a valid option index", q.CorrectAnswer))
	}
	return nil
}

// HasOption reports whether idx is a valid index into Options.
func (q Question) HasOption(idx int) bool {
	return idx >= 0 && idx < len(q.Options)
}

// OptionText returns the option text at idx, or "" when idx is out of range.
func (q Question) OptionText(idx int) string {
	if !q.HasOption(idx) {
		return ""
	}
	return q.Options[idx]
}

// QuestionSet is the ordered list of questions for one session. It is never
// mutated after generation.
type QuestionSet []Question

// Validate checks every question and the expected set size.
func (qs QuestionSet) Validate(expected int) error {
	if len(qs) == 0 {
		return NewValidationError("question set is empty")
	}
	if expected > 0 && len(qs) != expected {
		return NewValidationError(fmt.Sprintf("expected %d questions, got %d", expected, len(qs)))
	}
	for i, q := range qs {
		if err := q.Validate(); err != nil {
			return NewValidationError(fmt.Sprintf("question %d: %v", i+1, err))
		}
	}
	return nil
}

// Score counts the answers matching the correct option of the question at the
// same position. Answers beyond the set are ignored.
func Score(questions QuestionSet, answers []int) int {
	score := 0
	for i, a := range answers {
		if i >= len(questions) {
			break
		}
		if a == questions[i].CorrectAnswer {
			score++
		}
	}
	return score
}

// Percentage returns round(score / total * 100). A non-positive total yields 0.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// Tier is the proficiency level derived from a score percentage.
type Tier string

const (
	TierBeginner     Tier = "beginner"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
)

// TierFor classifies a percentage: >= 80 advanced, >= 60 intermediate,
// otherwise beginner.
func TierFor(percentage int) Tier {
	switch {
	case percentage >= 80:
		return TierAdvanced
	case percentage >= 60:
		return TierIntermediate
	default:
		return TierBeginner
	}
}

// Audience is the learner label used in course titles.
func (t Tier) Audience() string {
	switch t {
	case TierBeginner:
		return "Beginners"
	case TierIntermediate:
		return "Intermediate Learners"
	default:
		return "Advanced Users"
	}
}

// Message is the summary line shown next to the score.
func (t Tier) Message() string {
	switch t {
	case TierAdvanced:
		return "Excellent! You have a strong understanding of this topic."
	case TierIntermediate:
		return "Good job! You have a solid grasp of the basics."
	default:
		return "Keep learning! You're making progress."
	}
}
