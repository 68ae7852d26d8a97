package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/configs"
	"otm_dashboard/internals/services/health"
)

func BaseRoutes(app *fiber.App, monitor *health.Monitor) {
	app.Get("/health", func(c *fiber.Ctx) error {
		backend := "unknown"
		httpStatus := fiber.StatusOK
		var last health.Status
		if monitor != nil {
			last = monitor.Last()
			switch {
			case !last.Checked:
				backend = "unknown"
			case last.Up:
				backend = "up"
			default:
				backend = "down"
				httpStatus = fiber.StatusServiceUnavailable
			}
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         "OK",
			"backend":        backend,
			"backend_url":    configs.APIBaseURL,
			"backend_http":   last.HTTP,
			"backend_ms":     last.Latency.Milliseconds(),
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		})
	})
}
