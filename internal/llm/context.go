package llm

import "context"

// Purpose labels a model call in the request log.
type Purpose string

const (
	PurposeQuestions       Purpose = "quiz_questions"
	PurposeRecommendations Purpose = "recommendations"
	purposeUnlabelled      Purpose = "unlabelled"
)

type purposeKey struct{}

func WithPurpose(ctx context.Context, p Purpose) context.Context {
	return context.WithValue(ctx, purposeKey{}, p)
}

// PurposeFrom returns the label set by WithPurpose.
func PurposeFrom(ctx context.Context) Purpose {
	if p, ok := ctx.Value(purposeKey{}).(Purpose); ok && p != "" {
		return p
	}
	return purposeUnlabelled
}
