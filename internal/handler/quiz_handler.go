package handler

import (
	"topic-quiz/internal/domain"
	"topic-quiz/internal/dto"
	"topic-quiz/internal/middleware"
	"topic-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// StartQuiz godoc
// @Summary Generate the questions
// @Description Generates the question set for the session and returns the first question.
// @Description Concurrent calls for one session share a single generation.
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.QuizView
// @Success 303 {object} dto.RedirectResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /quiz/start [post]
func (h *QuizHandler) StartQuiz(c *fiber.Ctx) error {
	view, err := h.service.StartQuiz(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// GetQuiz godoc
// @Summary Current quiz state
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.QuizView
// @Success 303 {object} dto.RedirectResponse
// @Router /quiz [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	view, err := h.service.GetQuiz(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// SelectOption godoc
// @Summary Select an option
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.SelectOptionRequest true "Option index"
// @Success 200 {object} dto.QuizView
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /quiz/selection [put]
func (h *QuizHandler) SelectOption(c *fiber.Ctx) error {
	req, ok := middleware.ValidatedBody[dto.SelectOptionRequest](c)
	if !ok || req.Option == nil {
		return domain.ValidationErrors{domain.NewMissingFieldError("option")}
	}
	view, err := h.service.SelectOption(c.UserContext(), middleware.SessionID(c), *req.Option)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Next godoc
// @Summary Record the answer and advance
// @Description On the last question the quiz completes and the response redirects to /results.
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.NextResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /quiz/next [post]
func (h *QuizHandler) Next(c *fiber.Ctx) error {
	resp, err := h.service.Next(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Previous godoc
// @Summary Go back one question
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.QuizView
// @Failure 400 {object} middleware.ErrorResponse
// @Router /quiz/previous [post]
func (h *QuizHandler) Previous(c *fiber.Ctx) error {
	view, err := h.service.Previous(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}
