package middlewares

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// RequestID tags every request (X-Request-ID) with a uuid unless the proxy already did.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: "requestid",
	})
}

// RequestContext gives every request a context derived from base (cancelled on shutdown)
// with a deadline. fasthttp does not report client disconnects, so the deadline is what
// stops backend calls for a browser that went away. timeout <= 0 falls back to 30s.
func RequestContext(base context.Context, timeout time.Duration) fiber.Handler {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()
		ctx, cancel := context.WithTimeout(base, timeout)
		defer cancel()
		c.SetUserContext(ctx)

		err := c.Next()
		log.Printf("[REQ] id=%v %s %s status=%d dur=%s",
			c.Locals("requestid"), c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	}
}
