package details

import (
	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/apiclient"
	authRoutes "otm_dashboard/internals/features/users/auth/route"
)

func AuthRoutes(app fiber.Router, api *apiclient.Client) {
	authRoutes.AuthRoutes(app, api)
}

func RoleRoutes(r fiber.Router, api *apiclient.Client) {
	authRoutes.RoleRoutes(r, api)
}
