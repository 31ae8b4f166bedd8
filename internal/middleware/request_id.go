package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestID assigns each request a uuid, honoring one supplied by the
// caller, and echoes it on the response for log correlation.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals("requestID", id)
		c.Set("X-Request-Id", id)

		return c.Next()
	}
}
