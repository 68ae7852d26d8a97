package route

import (
	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/constants"
	"otm_dashboard/internals/features/academic/curricula/controller"
	"otm_dashboard/internals/features/academic/curricula/dto"
	"otm_dashboard/internals/features/crud"
	"otm_dashboard/internals/listview"
	"otm_dashboard/internals/middlewares/auth"
)

// Curricula are fetched unbounded and paged in memory.
var Resource = &crud.Resource[dto.Curriculum, *dto.CurriculumDraft]{
	Name:     "curricula",
	Title:    "nav.curricula",
	Path:     "/curricula",
	Endpoint: "curriculums/",
	List: listview.Config[dto.Curriculum]{
		Pagination:   listview.ClientPaginated,
		Search:       listview.ClientSearch,
		SearchFields: dto.Curriculum.SearchFields,
	},
	Columns: []crud.Column[dto.Curriculum]{
		{Label: "field.name", Value: func(c dto.Curriculum) string { return c.Name }},
		{Label: "field.speciality", Value: func(c dto.Curriculum) string { return c.Speciality }},
		{Label: "field.year", Value: func(c dto.Curriculum) string { return crud.Itoa(c.Year) }},
		{Label: "field.semester_count", Value: func(c dto.Curriculum) string { return crud.Itoa(c.SemesterCount) }},
	},
	ID:       func(c dto.Curriculum) int { return c.ID },
	NewDraft: dto.NewCurriculumDraft,
	DraftOf:  dto.CurriculumDraftOf,
	Payload:  func(d *dto.CurriculumDraft) any { return d.Payload() },

	WriteRoles: constants.AdminOnly,
}

// CurriculumRoutes mounts the CRUD pages plus the subject/semester pages.
func CurriculumRoutes(r fiber.Router) {
	ctrl := controller.NewSubjectController()
	r.Get("/curricula/:id<int>/subjects", ctrl.List)
	adminOnly := auth.OnlyRoles(constants.RoleErrorAdmin("changing curriculum subjects"), constants.AdminOnly...)
	r.Post("/curricula/:id<int>/subjects", adminOnly, ctrl.Attach)
	r.Post("/curricula/:id<int>/subjects/distribute", adminOnly, ctrl.Distribute)
	Resource.Mount(r, "")
}

