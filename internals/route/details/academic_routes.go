package details

import (
	"github.com/gofiber/fiber/v2"

	classHourRoutes "otm_dashboard/internals/features/academic/class_hours/route"
	curriculumRoutes "otm_dashboard/internals/features/academic/curricula/route"
	groupRoutes "otm_dashboard/internals/features/academic/groups/route"
	ratingRoutes "otm_dashboard/internals/features/academic/ratings/route"
	scheduleRoutes "otm_dashboard/internals/features/academic/schedules/route"
	topicRoutes "otm_dashboard/internals/features/academic/topics/route"
)

// AcademicAdminRoutes are the institution admin's pages.
func AcademicAdminRoutes(r fiber.Router) {
	groupRoutes.GroupRoutes(r)
	classHourRoutes.ClassHourRoutes(r)
}

// AcademicTeacherRoutes are open to teachers as well.
func AcademicTeacherRoutes(r fiber.Router) {
	curriculumRoutes.CurriculumRoutes(r)
	topicRoutes.TopicRoutes(r)
	scheduleRoutes.ScheduleRoutes(r)
	ratingRoutes.RatingRoutes(r)
}
