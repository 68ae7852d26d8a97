package auth

import (
	"log"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/session"
)

// RequireLogin sends anonymous browsers to /login and drops credentials whose JWT exp has passed.
func RequireLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		store := session.From(c)
		auth := session.NewAuth(store)

		if !auth.IsAuthenticated() {
			return c.Redirect("/login?next=" + url.QueryEscape(c.OriginalURL()))
		}
		if auth.Expired(time.Now()) {
			log.Printf("[AUTH] expired credential for role %q, logging out", auth.ActiveRole())
			_ = auth.Logout()
			session.SetFlash(store, "auth.expired")
			return c.Redirect("/login?next=" + url.QueryEscape(c.OriginalURL()))
		}
		return c.Next()
	}
}

// RoleMiddlewareWithCustomError validasi role + custom error message
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := session.AuthFrom(c).ActiveRole()
		if role == "" {
			return c.Redirect("/login")
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this page"
		}
		log.Printf("[AUTH] role %q denied %s", role, c.Path())
		return fiber.NewError(fiber.StatusForbidden, customForbiddenMessage)
	}
}

// Shortcut biar lebih clean pemakaian
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
