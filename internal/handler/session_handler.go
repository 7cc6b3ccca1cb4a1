package handler

import (
	"topic-quiz/internal/config"
	"topic-quiz/internal/domain"
	"topic-quiz/internal/dto"
	"topic-quiz/internal/middleware"
	"topic-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler handles intake and restart requests
type SessionHandler struct {
	service service.SessionService
	cookie  config.SessionConfig
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(service service.SessionService, cookie config.SessionConfig) *SessionHandler {
	return &SessionHandler{
		service: service,
		cookie:  cookie,
	}
}

// CreateSession godoc
// @Summary Start a quiz session
// @Description Validates the intake form, creates a session and sets the session cookie
// @Tags session
// @Accept json
// @Produce json
// @Param request body dto.CreateSessionRequest true "Intake form"
// @Success 201 {object} dto.CreateSessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	req, ok := middleware.ValidatedBody[dto.CreateSessionRequest](c)
	if !ok {
		return domain.NewInternalError("validated request missing from context", nil)
	}

	resp, err := h.service.CreateSession(c.UserContext(), req, middleware.SessionID(c))
	if err != nil {
		return err
	}

	middleware.SetSessionCookie(c, h.cookie, resp.SessionID)
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// DeleteSession godoc
// @Summary Restart
// @Description Clears the session and its cookie
// @Tags session
// @Produce json
// @Success 200 {object} dto.RedirectResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /session [delete]
func (h *SessionHandler) DeleteSession(c *fiber.Ctx) error {
	if err := h.service.Restart(c.UserContext(), middleware.SessionID(c)); err != nil {
		return err
	}
	middleware.ClearSessionCookie(c, h.cookie)
	return c.JSON(dto.RedirectResponse{Redirect: middleware.IntakePath})
}
