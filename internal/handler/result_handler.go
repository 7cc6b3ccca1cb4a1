package handler

import (
	"topic-quiz/internal/middleware"
	"topic-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ResultHandler serves the results page and attempt history
type ResultHandler struct {
	service service.ResultService
}

// NewResultHandler creates a new ResultHandler instance
func NewResultHandler(service service.ResultService) *ResultHandler {
	return &ResultHandler{service: service}
}

// GetResults godoc
// @Summary Results and recommendations
// @Description Score, tier, learning recommendations and a review of every question.
// @Description Recommendations are generated on the first view and reused afterwards.
// @Tags results
// @Produce json
// @Success 200 {object} dto.ResultsResponse
// @Success 303 {object} dto.RedirectResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /results [get]
func (h *ResultHandler) GetResults(c *fiber.Ctx) error {
	resp, err := h.service.GetResults(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListAttempts godoc
// @Summary Recent attempts
// @Tags results
// @Produce json
// @Param limit query int false "Maximum number of attempts (1-50)" default(10)
// @Success 200 {object} dto.AttemptsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /attempts [get]
func (h *ResultHandler) ListAttempts(c *fiber.Ctx) error {
	resp, err := h.service.ListAttempts(c.UserContext(), middleware.ValidatedLimit(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
