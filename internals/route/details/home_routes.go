package details

import (
	"github.com/gofiber/fiber/v2"

	dashboardRoutes "otm_dashboard/internals/features/home/dashboard/route"
	"otm_dashboard/internals/features/options"
	"otm_dashboard/internals/services/health"
)

func HomeRoutes(r fiber.Router, m *health.Monitor) {
	dashboardRoutes.DashboardRoutes(r, m)
	r.Get("/options/:source", options.Handler)
}

func ReportRoutes(r fiber.Router, m *health.Monitor) {
	dashboardRoutes.ReportRoutes(r, m)
}
