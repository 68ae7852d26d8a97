package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/apiclient"
	"otm_dashboard/internals/session"
)

const apiLocalsKey = "api"

// APIMiddleware puts a backend client bound to the browser's current credential into the request.
func APIMiddleware(base *apiclient.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(apiLocalsKey, base.WithToken(session.AuthFrom(c).TokenSource()))
		return c.Next()
	}
}

// API returns the request's backend client. It panics when APIMiddleware is not mounted,
// which is a wiring bug rather than a runtime condition.
func API(c *fiber.Ctx) *apiclient.Client {
	api, ok := c.Locals(apiLocalsKey).(*apiclient.Client)
	if !ok || api == nil {
		panic("middlewares: APIMiddleware is not mounted")
	}
	return api
}
