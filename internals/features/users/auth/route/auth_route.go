package route

import (
	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/apiclient"
	"otm_dashboard/internals/configs"
	"otm_dashboard/internals/features/users/auth/controller"
	"otm_dashboard/internals/middlewares"
)

// AuthRoutes are reachable without a session credential.
func AuthRoutes(app fiber.Router, api *apiclient.Client) {
	authController := controller.NewAuthController(api, configs.LoginEndpoint)

	app.Get("/login", authController.LoginPage)
	app.Post("/login", middlewares.LoginRateLimiter(), authController.Login)
	app.Post("/logout", authController.Logout)
	app.Post("/theme/toggle", authController.ToggleTheme)
	app.Get("/lang/:lang", authController.SetLang)
}

// RoleRoutes need a logged-in browser.
func RoleRoutes(r fiber.Router, api *apiclient.Client) {
	authController := controller.NewAuthController(api, configs.LoginEndpoint)
	r.Post("/role/:role", authController.SwitchRole)
}
