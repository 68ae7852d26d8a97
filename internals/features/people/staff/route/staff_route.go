package route

import (
	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/features/crud"
	"otm_dashboard/internals/features/people/staff/dto"
	"otm_dashboard/internals/listview"
)

// Staff: whole collection fetched once, searched and paged in memory.
var Resource = &crud.Resource[dto.Staff, *dto.StaffDraft]{
	Name:     "staff",
	Title:    "nav.staff",
	Path:     "/staff",
	Endpoint: "staffs/",
	List: listview.Config[dto.Staff]{
		Pagination:   listview.ClientPaginated,
		Search:       listview.ClientSearch,
		SearchFields: dto.Staff.SearchFields,
	},
	Columns: []crud.Column[dto.Staff]{
		{Label: "field.full_name", Value: func(s dto.Staff) string { return s.FullName }},
		{Label: "field.position", Value: func(s dto.Staff) string { return s.Position }},
		{Label: "field.phone", Value: func(s dto.Staff) string { return s.Phone }},
		{Label: "field.email", Value: func(s dto.Staff) string { return s.Email }},
	},
	ID:       func(s dto.Staff) int { return s.ID },
	NewDraft: dto.NewStaffDraft,
	DraftOf:  dto.StaffDraftOf,
	Payload:  func(d *dto.StaffDraft) any { return d.Payload() },
}

func StaffRoutes(r fiber.Router) {
	Resource.Mount(r, "")
}
