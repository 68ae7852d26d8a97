// file: internals/helpers/render.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/constants"
	"otm_dashboard/internals/i18n"
	"otm_dashboard/internals/session"
)

const MainLayout = "layouts/main"

type NavItem struct {
	Path  string
	Label string // i18n key
}

var (
	adminNav = []NavItem{
		{"/", "nav.dashboard"},
		{"/staff", "nav.staff"},
		{"/teachers", "nav.teachers"},
		{"/groups", "nav.groups"},
		{"/curricula", "nav.curricula"},
		{"/students", "nav.students"},
		{"/buildings", "nav.buildings"},
		{"/rooms", "nav.rooms"},
		{"/class-hours", "nav.class_hours"},
		{"/schedules", "nav.schedules"},
		{"/ratings", "nav.ratings"},
		{"/reports", "nav.reports"},
	}
	teacherNav = []NavItem{
		{"/", "nav.dashboard"},
		{"/schedules", "nav.schedules"},
		{"/ratings", "nav.ratings"},
		{"/curricula", "nav.curricula"},
	}
)

// NavFor returns the menu variant for the selected role.
func NavFor(role string) []NavItem {
	if role == constants.RoleTeacher {
		return teacherNav
	}
	return adminNav
}

// Lang is the locale resolved for this request (cached in Locals).
func Lang(c *fiber.Ctx) string {
	if l, ok := c.Locals("lang").(string); ok && l != "" {
		return l
	}
	l := i18n.Resolve(c)
	c.Locals("lang", l)
	return l
}

// T translates key for the request locale.
func T(c *fiber.Ctx, key string) string { return i18n.T(Lang(c), key) }

// LayoutData is what every page gets besides its own data.
func LayoutData(c *fiber.Ctx) fiber.Map {
	store := session.From(c)
	auth := session.NewAuth(store)
	lang := Lang(c)
	selectRole := auth.SelectRole()

	csrf, _ := c.Locals("csrf").(string)
	return fiber.Map{
		"Lang":          lang,
		"Langs":         i18n.Supported,
		"T":             i18n.Translator{Lang: lang},
		"Theme":         session.NewTheme(store).Current(),
		"Role":          auth.ActiveRole(),
		"SelectRole":    selectRole,
		"Roles":         auth.Roles(),
		"Authenticated": auth.IsAuthenticated(),
		"Nav":           NavFor(selectRole),
		"Path":          c.Path(),
		"Flash":         session.PopFlash(store),
		"CSRF":          csrf,
		"RequestID":     c.Locals("requestid"),
	}
}

// Render draws view inside the main layout with LayoutData merged under data.
func Render(c *fiber.Ctx, view string, data fiber.Map) error {
	return RenderStatus(c, fiber.StatusOK, view, data)
}

func RenderStatus(c *fiber.Ctx, status int, view string, data fiber.Map) error {
	merged := LayoutData(c)
	for k, v := range data {
		merged[k] = v
	}
	if _, ok := merged["Title"]; !ok {
		merged["Title"] = "app.title"
	}
	return c.Status(status).Render(view, merged, MainLayout)
}

// WantsJSON is true for API-style paths and clients that ask for JSON.
func WantsJSON(c *fiber.Ctx) bool {
	p := c.Path()
	if strings.HasPrefix(p, "/options") || strings.HasPrefix(p, "/health") {
		return true
	}
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON) &&
		!strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMETextHTML)
}
