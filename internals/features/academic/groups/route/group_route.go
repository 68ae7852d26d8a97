package route

import (
	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/features/academic/groups/dto"
	"otm_dashboard/internals/features/crud"
	"otm_dashboard/internals/listview"
)

var Resource = &crud.Resource[dto.Group, *dto.GroupDraft]{
	Name:     "groups",
	Title:    "nav.groups",
	Path:     "/groups",
	Endpoint: "edu-groups/",
	List: listview.Config[dto.Group]{
		Pagination:   listview.ClientPaginated,
		Search:       listview.ClientSearch,
		SearchFields: dto.Group.SearchFields,
	},
	Columns: []crud.Column[dto.Group]{
		{Label: "field.name", Value: func(g dto.Group) string { return g.Name }},
		{Label: "field.speciality", Value: func(g dto.Group) string { return g.Speciality }},
		{Label: "field.course", Value: func(g dto.Group) string { return crud.Itoa(g.Course) }},
		{Label: "field.curriculum", Value: func(g dto.Group) string { return g.CurriculumName }},
	},
	ID:       func(g dto.Group) int { return g.ID },
	NewDraft: dto.NewGroupDraft,
	DraftOf:  dto.GroupDraftOf,
	Payload:  func(d *dto.GroupDraft) any { return d.Payload() },
	FieldMap: map[string]string{"curriculum": "curriculum_id"},
	Sources:  []string{"curricula"},
}

func GroupRoutes(r fiber.Router) {
	Resource.Mount(r, "")
}
