package route

import (
	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/features/crud"
	"otm_dashboard/internals/features/people/students/dto"
	"otm_dashboard/internals/listview"
)

// Students are paged and searched by the backend.
var Resource = &crud.Resource[dto.Student, *dto.StudentDraft]{
	Name:     "students",
	Title:    "nav.students",
	Path:     "/students",
	Endpoint: "students/",
	List: listview.Config[dto.Student]{
		Pagination: listview.ServerPaginated,
		Search:     listview.ServerSearch,
	},
	Columns: []crud.Column[dto.Student]{
		{Label: "field.full_name", Value: func(s dto.Student) string { return s.FullName }},
		{Label: "field.group", Value: func(s dto.Student) string { return s.GroupName }},
		{Label: "field.birth_date", Value: func(s dto.Student) string { return s.BirthDate }},
		{Label: "field.phone", Value: func(s dto.Student) string { return s.Phone }},
	},
	ID:       func(s dto.Student) int { return s.ID },
	NewDraft: dto.NewStudentDraft,
	DraftOf:  dto.StudentDraftOf,
	Payload:  func(d *dto.StudentDraft) any { return d.Payload() },
	FieldMap: map[string]string{"group": "group_id"},
	Sources:  []string{"groups"},
}

func StudentRoutes(r fiber.Router) {
	Resource.Mount(r, "")
}
