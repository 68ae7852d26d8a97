package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// FormValues returns every posted value of a repeated form field, in order.
func FormValues(c *fiber.Ctx, key string) []string {
	if form, err := c.MultipartForm(); err == nil && form != nil {
		if vs, ok := form.Value[key]; ok {
			return vs
		}
	}
	raw := c.Context().PostArgs().PeekMulti(key)
	out := make([]string, 0, len(raw))
	for _, b := range raw {
		out = append(out, strings.TrimSpace(string(b)))
	}
	return out
}
