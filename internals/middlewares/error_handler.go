package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"

	helper "otm_dashboard/internals/helpers"
)

// ErrorHandler renders 404/error pages for the browser and the JSON error shape for /options and /health.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := helper.StatusOf(err)

	if helper.WantsJSON(c) {
		return helper.FromFiberError(c, err)
	}

	if code >= fiber.StatusInternalServerError {
		log.Printf("[ERROR] id=%v %s %s: %v", c.Locals("requestid"), c.Method(), c.OriginalURL(), err)
	}

	var rerr error
	switch code {
	case fiber.StatusNotFound:
		rerr = helper.RenderStatus(c, code, "errors/404", fiber.Map{"Title": "error.not_found"})
	default:
		msg := err.Error()
		if code >= fiber.StatusInternalServerError {
			if fe, ok := err.(*fiber.Error); !ok || fe.Code >= fiber.StatusInternalServerError {
				msg = ""
			}
		}
		rerr = helper.RenderStatus(c, code, "errors/error", fiber.Map{
			"Title":        "error.title",
			"ErrorCode":    code,
			"ErrorMessage": msg,
		})
	}
	if rerr != nil {
		// template engine itself failed; plain text is all that is left
		log.Printf("[ERROR] render error page: %v", rerr)
		return c.Status(code).SendString(err.Error())
	}
	return nil
}
