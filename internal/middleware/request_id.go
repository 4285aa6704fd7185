package middleware

import (
	"github.com/Karan28272827/testurself-backend/internal/util"

	"github.com/gofiber/fiber/v2"
)

// HeaderXRequestID is the header carrying the request correlation ID.
const HeaderXRequestID = "X-Request-ID"

// RequestIDKey is the fiber locals key under which the ID is stored.
const RequestIDKey = "request_id"

// RequestID assigns a ULID to every request that does not already carry one
// and echoes it back in the response headers.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderXRequestID)
		if rid == "" {
			rid = util.NewULID()
		}
		c.Locals(RequestIDKey, rid)
		c.Set(HeaderXRequestID, rid)
		return c.Next()
	}
}
