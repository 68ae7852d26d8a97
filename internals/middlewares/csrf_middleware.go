package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/google/uuid"
)

// CSRFMiddleware protects every form post; templates read the token from .CSRF.
func CSRFMiddleware(secure bool) fiber.Handler {
	return csrf.New(csrf.Config{
		KeyLookup:      "form:_csrf",
		CookieName:     "otm_csrf",
		CookieSameSite: "Lax",
		CookieSecure:   secure,
		CookieHTTPOnly: true,
		Expiration:     2 * time.Hour,
		KeyGenerator:   uuid.NewString,
		ContextKey:     "csrf",
	})
}
