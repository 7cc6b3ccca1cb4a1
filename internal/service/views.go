package service

import (
	"topic-quiz/internal/domain"
	"topic-quiz/internal/dto"
)

const (
	labelNext   = "Next"
	labelFinish = "Finish Quiz"

	pathIntake  = "/"
	pathQuiz    = "/quiz"
	pathResults = "/results"
)

func toQuizView(s *domain.Session) *dto.QuizView {
	view := &dto.QuizView{
		SessionID:      s.ID,
		Topic:          s.Topic,
		State:          string(s.State),
		CurrentIndex:   s.CurrentIndex,
		TotalQuestions: len(s.Questions),
		CanGoPrevious:  s.CanGoPrevious(),
		CanAdvance:     s.CanAdvance(),
		NextLabel:      labelNext,
		ErrorMessage:   s.ErrorMessage,
	}
	if s.InProgress() {
		if q, ok := s.CurrentQuestion(); ok {
			view.Question = &dto.QuestionView{Text: q.Question, Options: q.Options}
		}
		view.Progress = s.Progress()
		if s.Selection != nil {
			selected := *s.Selection
			view.SelectedOption = &selected
		}
	}
	if s.IsLastQuestion() {
		view.NextLabel = labelFinish
	}
	return view
}

func toRecommendationResponse(r domain.Recommendation) dto.RecommendationResponse {
	courses := make([]dto.CourseResponse, 0, len(r.Courses))
	for _, c := range r.Courses {
		courses = append(courses, dto.CourseResponse{Title: c.Title, Description: c.Description})
	}
	return dto.RecommendationResponse{
		Skills:  r.Skills,
		Courses: courses,
		Tips:    r.Tips,
	}
}

func toReview(questions domain.QuestionSet, answers []int) []dto.ReviewItem {
	review := make([]dto.ReviewItem, 0, len(questions))
	for i, q := range questions {
		chosen := -1
		if i < len(answers) {
			chosen = answers[i]
		}
		item := dto.ReviewItem{
			Index:       i,
			Question:    q.Question,
			YourAnswer:  q.OptionText(chosen),
			IsCorrect:   chosen == q.CorrectAnswer,
			Explanation: q.Explanation,
		}
		if !item.IsCorrect {
			item.CorrectAnswer = q.OptionText(q.CorrectAnswer)
		}
		review = append(review, item)
	}
	return review
}

func toAttemptResponse(a *domain.Attempt) dto.AttemptResponse {
	return dto.AttemptResponse{
		ID:             a.ID,
		Topic:          a.Topic,
		Score:          a.Score,
		TotalQuestions: a.TotalQuestions,
		Percentage:     a.Percentage,
		Tier:           string(a.Tier),
		CompletedAt:    a.CompletedAt,
	}
}
