package route

import (
	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/constants"
	"otm_dashboard/internals/features/academic/schedules/dto"
	"otm_dashboard/internals/features/crud"
	"otm_dashboard/internals/listview"
)

// Schedules: the form needs five option lists, loaded in parallel.
var Resource = &crud.Resource[dto.Schedule, *dto.ScheduleDraft]{
	Name:     "schedules",
	Title:    "nav.schedules",
	Path:     "/schedules",
	Endpoint: "schedules/",
	List: listview.Config[dto.Schedule]{
		Pagination:   listview.ClientPaginated,
		Search:       listview.ClientSearch,
		SearchFields: dto.Schedule.SearchFields,
		PageSize:     20,
	},
	Columns: []crud.Column[dto.Schedule]{
		{Label: "field.weekday", Value: dto.Schedule.WeekdayKey},
		{Label: "field.group", Value: func(s dto.Schedule) string { return s.GroupName }},
		{Label: "field.subject", Value: func(s dto.Schedule) string { return s.SubjectName }},
		{Label: "field.teacher", Value: func(s dto.Schedule) string { return s.TeacherName }},
		{Label: "field.room", Value: func(s dto.Schedule) string { return s.RoomName }},
	},
	ID:       func(s dto.Schedule) int { return s.ID },
	NewDraft: dto.NewScheduleDraft,
	DraftOf:  dto.ScheduleDraftOf,
	Payload:  func(d *dto.ScheduleDraft) any { return d.Payload() },

	WriteRoles: constants.AdminOnly,
	FieldMap: map[string]string{
		"group":      "group_id",
		"subject":    "subject_id",
		"teacher":    "teacher_id",
		"room":       "room_id",
		"class_hour": "class_hour_id",
	},
	Sources: []string{"groups", "subjects", "teachers", "rooms", "class-hours"},
	Filters: []crud.Filter{
		{Param: "group", Label: "field.group", Source: "groups"},
	},
}

func ScheduleRoutes(r fiber.Router) {
	Resource.Mount(r, "")
}
