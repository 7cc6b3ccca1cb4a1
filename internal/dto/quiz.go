package dto

import "time"

// CreateSessionRequest is the intake form.
// @Description Topic to be quizzed on and an optional model API key
type CreateSessionRequest struct {
	Topic  string `json:"topic" validate:"notblank,max=200" example:"Go concurrency"`
	APIKey string `json:"api_key,omitempty" validate:"omitempty,max=256"`
}

// CreateSessionResponse is returned after a successful intake.
type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
	Next      string `json:"next" example:"/quiz"`
}

// SelectOptionRequest picks one option of the current question.
type SelectOptionRequest struct {
	Option *int `json:"option" validate:"required,min=0" example:"2"`
}

// QuestionView is a question as shown to the user, without the answer.
type QuestionView struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// QuizView is the state of the quiz page.
// @Description Current question, selection and navigation state
type QuizView struct {
	SessionID      string        `json:"session_id"`
	Topic          string        `json:"topic"`
	State          string        `json:"state"`
	CurrentIndex   int           `json:"current_index"`
	TotalQuestions int           `json:"total_questions"`
	Question       *QuestionView `json:"question,omitempty"`
	SelectedOption *int          `json:"selected_option"`
	Progress       float64       `json:"progress"`
	CanGoPrevious  bool          `json:"can_go_previous"`
	CanAdvance     bool          `json:"can_advance"`
	NextLabel      string        `json:"next_label"`
	ErrorMessage   string        `json:"error_message,omitempty"`
}

// NextResponse is returned by the advance action. Redirect is set once the
// last question has been answered.
type NextResponse struct {
	Complete bool      `json:"complete"`
	Redirect string    `json:"redirect,omitempty" example:"/results"`
	Quiz     *QuizView `json:"quiz,omitempty"`
}

// CourseResponse is one recommended course.
type CourseResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// RecommendationResponse groups the learning recommendations.
type RecommendationResponse struct {
	Skills  []string         `json:"skills"`
	Courses []CourseResponse `json:"courses"`
	Tips    []string         `json:"tips"`
}

// ReviewItem is the per-question breakdown on the results page.
// CorrectAnswer is only present when the user answered incorrectly.
type ReviewItem struct {
	Index         int    `json:"index"`
	Question      string `json:"question"`
	YourAnswer    string `json:"your_answer"`
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
	Explanation   string `json:"explanation"`
}

// ResultsResponse is the results page.
// @Description Score, tier, recommendations and question review
type ResultsResponse struct {
	Topic           string                 `json:"topic"`
	Score           int                    `json:"score"`
	TotalQuestions  int                    `json:"total_questions"`
	Percentage      int                    `json:"percentage"`
	Tier            string                 `json:"tier"`
	Message         string                 `json:"message"`
	Recommendations RecommendationResponse `json:"recommendations"`
	Review          []ReviewItem           `json:"review"`
}

// AttemptResponse summarises one completed session.
type AttemptResponse struct {
	ID             string    `json:"id"`
	Topic          string    `json:"topic"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Percentage     int       `json:"percentage"`
	Tier           string    `json:"tier"`
	CompletedAt    time.Time `json:"completed_at"`
}

// AttemptsResponse lists recent attempts, newest first.
type AttemptsResponse struct {
	Attempts []AttemptResponse `json:"attempts"`
}

// RedirectResponse tells the client which page to show next.
type RedirectResponse struct {
	Redirect string `json:"redirect" example:"/"`
}

// HealthResponse reports dependency status.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
