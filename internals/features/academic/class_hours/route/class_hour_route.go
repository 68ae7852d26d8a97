package route

import (
	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/features/academic/class_hours/controller"
)

func ClassHourRoutes(r fiber.Router) {
	ctrl := controller.NewClassHourController()
	r.Get("/class-hours", ctrl.Index)
	r.Post("/class-hours", ctrl.Save)
}
