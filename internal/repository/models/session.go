package models

// Hash fields of a stored quiz session. The names match the keys the
// browser client has always used, so a session dump reads the same on
// both sides.
const (
	FieldTopic          = "quizTopic"
	FieldAPIKey         = "geminiApiKey"
	FieldState          = "quizState"
	FieldCurrentIndex   = "quizCurrentIndex"
	FieldSelection      = "quizSelection"
	FieldScore          = "quizScore"
	FieldTotalQuestions = "quizTotalQuestions"
	FieldAnswers        = "quizAnswers"
	FieldQuestions      = "quizQuestions"
	FieldError          = "quizError"
	FieldRecommendation = "quizRecommendation"
	FieldCreatedAt      = "quizCreatedAt"
)

// OptionalFields are removed from the hash when the session has no value
// for them.
var OptionalFields = []string{
	FieldAPIKey,
	FieldSelection,
	FieldQuestions,
	FieldError,
	FieldRecommendation,
}
