package route

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/features/campus/buildings/dto"
	"otm_dashboard/internals/features/crud"
	"otm_dashboard/internals/listview"
)

var Resource = &crud.Resource[dto.Building, *dto.BuildingDraft]{
	Name:     "buildings",
	Title:    "nav.buildings",
	Path:     "/buildings",
	Endpoint: "buildings/",
	List: listview.Config[dto.Building]{
		Pagination: listview.ServerPaginated,
		Search:     listview.ServerSearch,
	},
	Columns: []crud.Column[dto.Building]{
		{Label: "field.name", Value: func(b dto.Building) string { return b.Name }},
		{Label: "field.address", Value: func(b dto.Building) string { return b.Address }},
		{Label: "field.floor_count", Value: func(b dto.Building) string { return strconv.Itoa(b.Storeys) }},
	},
	ID:       func(b dto.Building) int { return b.ID },
	NewDraft: dto.NewBuildingDraft,
	DraftOf:  dto.BuildingDraftOf,
	Payload:  func(d *dto.BuildingDraft) any { return d.Payload() },
	FieldMap: map[string]string{"storeys": "floor_count"},
}

func BuildingRoutes(r fiber.Router) {
	Resource.Mount(r, "")
}
