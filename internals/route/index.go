// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/apiclient"
	"otm_dashboard/internals/constants"
	"otm_dashboard/internals/middlewares"
	"otm_dashboard/internals/middlewares/auth"
	routeDetails "otm_dashboard/internals/route/details"
	"otm_dashboard/internals/services/health"
)

var startTime time.Time

// admin-only page prefixes
var adminPaths = []string{
	"/staff", "/teachers", "/students",
	"/buildings", "/rooms",
	"/groups", "/class-hours",
	"/reports",
}

// pages both roles may open
var teacherPaths = []string{
	"/schedules", "/ratings", "/curricula", "/subjects",
}

func SetupRoutes(app *fiber.App, api *apiclient.Client, monitor *health.Monitor) {
	startTime = time.Now()

	app.Use(middlewares.APIMiddleware(api))

	// ===================== PUBLIC =====================
	BaseRoutes(app, monitor)

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, api)

	// ===================== LOGGED IN =====================
	app.Use(auth.RequireLogin())
	app.Use(adminPaths, auth.OnlyRoles(constants.RoleErrorAdmin("this page"), constants.AdminOnly...))
	app.Use(teacherPaths, auth.OnlyRoles(constants.RoleErrorTeacher("this page"), constants.TeacherAndAbove...))

	routeDetails.RoleRoutes(app, api)

	log.Println("[INFO] Setting up HomeRoutes...")
	routeDetails.HomeRoutes(app, monitor)

	log.Println("[INFO] Setting up PeopleRoutes...")
	routeDetails.PeopleRoutes(app)

	log.Println("[INFO] Setting up CampusRoutes...")
	routeDetails.CampusRoutes(app)

	log.Println("[INFO] Setting up AcademicRoutes...")
	routeDetails.AcademicAdminRoutes(app)
	routeDetails.AcademicTeacherRoutes(app)

	routeDetails.ReportRoutes(app, monitor)

	// ===================== FALLBACK =====================
	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	log.Println("[INFO] Routes ready ✅")
}
