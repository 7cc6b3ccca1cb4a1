package middleware

import (
	"time"

	"topic-quiz/internal/config"
	"topic-quiz/internal/domain"
	"topic-quiz/internal/util"

	"github.com/gofiber/fiber/v2"
)

const SessionIDKey = "sessionID" // Key for storing the session id in fiber.Ctx locals

// Session reads the session cookie and stores its id in the context when it
// is a well-formed ULID. Anything else is treated as no session.
func Session(cfg config.SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id := c.Cookies(cfg.CookieName); util.IsValidULID(id) {
			c.Locals(SessionIDKey, id)
		}
		return c.Next()
	}
}

// RequireSession redirects to intake when the request carries no session.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if SessionID(c) == "" {
			return domain.NewSessionNotFoundError("")
		}
		return c.Next()
	}
}

// SessionID returns the id stored by Session, or "".
func SessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(SessionIDKey).(string)
	return id
}

// SetSessionCookie issues the session cookie for id.
func SetSessionCookie(c *fiber.Ctx, cfg config.SessionConfig, id string) {
	c.Cookie(&fiber.Cookie{
		Name:     cfg.CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(cfg.TTL / time.Second),
		Secure:   cfg.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Locals(SessionIDKey, id)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *fiber.Ctx, cfg config.SessionConfig) {
	c.Cookie(&fiber.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Secure:   cfg.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
