package details

import (
	"github.com/gofiber/fiber/v2"

	staffRoutes "otm_dashboard/internals/features/people/staff/route"
	studentRoutes "otm_dashboard/internals/features/people/students/route"
	teacherRoutes "otm_dashboard/internals/features/people/teachers/route"
)

func PeopleRoutes(r fiber.Router) {
	staffRoutes.StaffRoutes(r)
	teacherRoutes.TeacherRoutes(r)
	studentRoutes.StudentRoutes(r)
}
