package route

import (
	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/features/crud"
	"otm_dashboard/internals/features/people/teachers/dto"
	"otm_dashboard/internals/listview"
)

var Resource = &crud.Resource[dto.Teacher, *dto.TeacherDraft]{
	Name:     "teachers",
	Title:    "nav.teachers",
	Path:     "/teachers",
	Endpoint: "teachers/",
	List: listview.Config[dto.Teacher]{
		Pagination:   listview.ClientPaginated,
		Search:       listview.ClientSearch,
		SearchFields: dto.Teacher.SearchFields,
	},
	Columns: []crud.Column[dto.Teacher]{
		{Label: "field.full_name", Value: func(t dto.Teacher) string { return t.FullName }},
		{Label: "field.department", Value: func(t dto.Teacher) string { return t.Department }},
		{Label: "field.degree", Value: func(t dto.Teacher) string { return t.Degree }},
		{Label: "field.phone", Value: func(t dto.Teacher) string { return t.Phone }},
	},
	ID:       func(t dto.Teacher) int { return t.ID },
	NewDraft: dto.NewTeacherDraft,
	DraftOf:  dto.TeacherDraftOf,
	Payload:  func(d *dto.TeacherDraft) any { return d.Payload() },
}

func TeacherRoutes(r fiber.Router) {
	Resource.Mount(r, "")
}
