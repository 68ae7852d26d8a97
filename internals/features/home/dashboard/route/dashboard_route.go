package route

import (
	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/features/home/dashboard/controller"
	"otm_dashboard/internals/services/health"
)

func DashboardRoutes(r fiber.Router, m *health.Monitor) {
	ctrl := controller.NewDashboardController(m)
	r.Get("/", ctrl.Index)
}

func ReportRoutes(r fiber.Router, m *health.Monitor) {
	ctrl := controller.NewDashboardController(m)
	r.Get("/reports", ctrl.Reports)
}
