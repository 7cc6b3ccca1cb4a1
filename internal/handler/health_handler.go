package handler

import (
	"context"
	"time"

	"topic-quiz/internal/domain"
	"topic-quiz/internal/dto"
	"topic-quiz/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler reports whether the session store and history database respond.
type HealthHandler struct {
	cache domain.Cache
	db    *sqlx.DB
}

// NewHealthHandler creates a HealthHandler. db may be nil when history is disabled.
func NewHealthHandler(cache domain.Cache, db *sqlx.DB) *HealthHandler {
	return &HealthHandler{cache: cache, db: db}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Checks: map[string]string{}}
	status := fiber.StatusOK

	if err := h.cache.Ping(ctx); err != nil {
		logger.Get().Warn("Session store health check failed", zap.Error(err))
		resp.Checks["session_store"] = "unavailable"
		resp.Status = "degraded"
		status = fiber.StatusServiceUnavailable
	} else {
		resp.Checks["session_store"] = "ok"
	}

	if h.db != nil {
		if err := h.db.PingContext(ctx); err != nil {
			logger.Get().Warn("History database health check failed", zap.Error(err))
			resp.Checks["history"] = "unavailable"
			resp.Status = "degraded"
			status = fiber.StatusServiceUnavailable
		} else {
			resp.Checks["history"] = "ok"
		}
	}

	return c.Status(status).JSON(resp)
}
