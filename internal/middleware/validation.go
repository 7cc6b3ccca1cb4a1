package middleware

import (
	"strconv"

	"topic-quiz/internal/domain"
	"topic-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	validatedBodyKey  = "validated_body"
	validatedLimitKey = "validated_limit"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(v *validation.Validator) *ValidationMiddleware {
	return &ValidationMiddleware{validator: v}
}

// ValidateBody parses the JSON body into a fresh value from newReq and
// validates it. Handlers read the result with ValidatedBody.
func (vm *ValidationMiddleware) ValidateBody(newReq func() interface{}) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := newReq()
		if err := c.BodyParser(req); err != nil {
			return domain.ValidationErrors{domain.NewValidationError("request body must be valid JSON")}
		}
		if err := vm.validator.Struct(req); err != nil {
			return err // This will be handled by ErrorHandler middleware
		}
		c.Locals(validatedBodyKey, req)
		return c.Next()
	}
}

// ValidateLimit validates the optional limit query parameter. A missing
// limit is stored as 0 so the service applies its default.
func (vm *ValidationMiddleware) ValidateLimit(max int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := 0
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				return domain.ValidationErrors{{
					Field:   "limit",
					Code:    domain.CodeValidation,
					Message: "limit must be a number",
					Value:   raw,
				}}
			}
			if err := vm.validator.Var("limit", parsed, "min=1,max="+strconv.Itoa(max)); err != nil {
				return err
			}
			limit = parsed
		}
		c.Locals(validatedLimitKey, limit)
		return c.Next()
	}
}

// ValidatedBody returns the body stored by ValidateBody.
func ValidatedBody[T any](c *fiber.Ctx) (*T, bool) {
	req, ok := c.Locals(validatedBodyKey).(*T)
	return req, ok
}

// ValidatedLimit returns the limit stored by ValidateLimit.
func ValidatedLimit(c *fiber.Ctx) int {
	limit, _ := c.Locals(validatedLimitKey).(int)
	return limit
}
