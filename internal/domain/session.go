package domain

import (
	"fmt"
	"strings"
	"time"
)

// SessionState is the position of a session in the quiz flow.
type SessionState string

const (
	StatePending   SessionState = "pending"   // topic collected, nothing generated yet
	StateLoading   SessionState = "loading"   // question generation in flight
	StateReady     SessionState = "ready"     // questions loaded, first question shown
	StateAnswering SessionState = "answering" // moving forward through questions
	StateReviewing SessionState = "reviewing" // revisiting an already answered question
	StateComplete  SessionState = "complete"  // all questions answered, results available
	StateError     SessionState = "error"     // question generation failed
)

// Session is the typed context shared by the intake, quiz and results
// stages of one quiz attempt.
type Session struct {
	ID             string
	Topic          string
	APIKey         string
	State          SessionState
	Questions      QuestionSet
	Answers        []int
	CurrentIndex   int
	Selection      *int
	Score          int
	TotalQuestions int
	ErrorMessage   string
	Recommendation *Recommendation
	CreatedAt      time.Time
}

// NewSession creates a pending session for topic. The topic must be non-empty.
func NewSession(id, topic, apiKey string, now time.Time) (*Session, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, ValidationErrors{NewMissingFieldError("topic")}
	}
	return &Session{
		ID:        id,
		Topic:     topic,
		APIKey:    apiKey,
		State:     StatePending,
		Answers:   []int{},
		CreatedAt: now,
	}, nil
}

// BeginLoading moves a pending session into the loading state.
func (s *Session) BeginLoading() error {
	if s.State != StatePending {
		return NewInvalidStateError("start generation", s.State)
	}
	s.State = StateLoading
	return nil
}

// LoadQuestions stores the generated set and shows the first question.
func (s *Session) LoadQuestions(questions QuestionSet) error {
	if s.State != StateLoading {
		return NewInvalidStateError("load questions", s.State)
	}
	if len(questions) == 0 {
		return NewGenerationError(fmt.Errorf("no questions were generated"))
	}
	s.Questions = questions
	s.Answers = []int{}
	s.CurrentIndex = 0
	s.Selection = nil
	s.Score = 0
	s.ErrorMessage = ""
	s.State = StateReady
	return nil
}

// Fail records a generation failure. The message is shown to the user.
func (s *Session) Fail(message string) error {
	if s.State != StateLoading {
		return NewInvalidStateError("record a generation failure", s.State)
	}
	s.ErrorMessage = message
	s.State = StateError
	return nil
}

// InProgress reports whether questions are being answered or reviewed.
func (s *Session) InProgress() bool {
	switch s.State {
	case StateReady, StateAnswering, StateReviewing:
		return true
	}
	return false
}

// CurrentQuestion returns the question at the current index.
func (s *Session) CurrentQuestion() (Question, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.CurrentIndex], true
}

// IsLastQuestion reports whether the current question is the final one.
func (s *Session) IsLastQuestion() bool {
	return s.CurrentIndex == len(s.Questions)-1
}

// Select makes option the pending selection for the current question.
func (s *Session) Select(option int) error {
	if !s.InProgress() {
		return NewInvalidStateError("select an option", s.State)
	}
	q, ok := s.CurrentQuestion()
	if !ok {
		return NewInternalError("current question index out of range", nil)
	}
	if !q.HasOption(option) {
		return ValidationErrors{NewOutOfRangeError("option", option, 0, len(q.Options)-1)}
	}
	selected := option
	s.Selection = &selected
	if s.State == StateReady {
		s.State = StateAnswering
	}
	return nil
}

// CanAdvance reports whether the advance control is enabled.
func (s *Session) CanAdvance() bool {
	return s.InProgress() && s.Selection != nil
}

// CanGoPrevious reports whether the previous control is enabled.
func (s *Session) CanGoPrevious() bool {
	return s.InProgress() && s.CurrentIndex > 0
}

// Next records the pending selection for the current question and moves on.
// On the last question the session completes and Next returns true.
//
// The score is recomputed from the whole answer log, so re-answering a
// question after going back replaces its earlier contribution.
func (s *Session) Next() (bool, error) {
	if !s.InProgress() {
		return false, NewInvalidStateError("advance", s.State)
	}
	if s.Selection == nil {
		return false, ValidationErrors{NewMissingFieldError("option")}
	}

	i := s.CurrentIndex
	if i < len(s.Answers) {
		s.Answers[i] = *s.Selection
	} else {
		s.Answers = append(s.Answers, *s.Selection)
	}
	s.Score = Score(s.Questions, s.Answers)

	if !s.IsLastQuestion() {
		s.CurrentIndex++
		s.Selection = nil
		s.State = StateAnswering
		return false, nil
	}

	s.Selection = nil
	s.TotalQuestions = len(s.Questions)
	s.State = StateComplete
	return true, nil
}

// Previous steps back one question and restores its recorded answer as the
// active selection. The answer log and score are left untouched.
func (s *Session) Previous() error {
	if !s.InProgress() {
		return NewInvalidStateError("go back", s.State)
	}
	if s.CurrentIndex == 0 {
		return NewInvalidInputError("already at the first question")
	}
	s.CurrentIndex--
	s.Selection = nil
	if s.CurrentIndex < len(s.Answers) {
		restored := s.Answers[s.CurrentIndex]
		s.Selection = &restored
	}
	s.State = StateReviewing
	return nil
}

// Progress is (currentIndex + 1) / total as a percentage.
func (s *Session) Progress() float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	return float64(s.CurrentIndex+1) / float64(len(s.Questions)) * 100
}

// HasResults reports whether everything the results stage needs is present.
func (s *Session) HasResults() bool {
	return s.State == StateComplete &&
		s.Topic != "" &&
		s.TotalQuestions > 0 &&
		len(s.Questions) == s.TotalQuestions &&
		len(s.Answers) == s.TotalQuestions
}
