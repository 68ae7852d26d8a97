package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/apiclient"
)

// StatusOf picks the HTTP status an error should be answered with.
// *fiber.Error keeps its code, backend errors keep theirs, transport errors become 502.
func StatusOf(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	var ae *apiclient.AppError
	if errors.As(err, &ae) {
		switch {
		case ae.Kind == apiclient.KindTransport:
			return fiber.StatusBadGateway
		case ae.Status >= 400:
			return ae.Status
		default:
			return fiber.StatusBadGateway
		}
	}
	return fiber.StatusInternalServerError
}

// FromFiberError answers err as the standard JSON error shape. Backend field errors
// keep their per-field messages.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	var ae *apiclient.AppError
	if errors.As(err, &ae) {
		status := StatusOf(err)
		if fields := ae.FieldErrors(); len(fields) > 0 && (status == fiber.StatusBadRequest || status == fiber.StatusUnprocessableEntity) {
			return JsonValidationError(c, fields)
		}
		return JsonError(c, status, ae.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
