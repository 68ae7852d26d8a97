package route

import (
	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/features/academic/ratings/dto"
	"otm_dashboard/internals/features/crud"
	"otm_dashboard/internals/listview"
)

// Ratings are server paged; edits go out as PATCH.
var Resource = &crud.Resource[dto.Rating, *dto.RatingDraft]{
	Name:     "ratings",
	Title:    "nav.ratings",
	Path:     "/ratings",
	Endpoint: "ratings/",
	List: listview.Config[dto.Rating]{
		Pagination: listview.ServerPaginated,
		Search:     listview.ServerSearch,
		PageSize:   20,
	},
	Columns: []crud.Column[dto.Rating]{
		{Label: "field.student", Value: func(r dto.Rating) string { return r.StudentName }},
		{Label: "field.group", Value: func(r dto.Rating) string { return r.GroupName }},
		{Label: "field.subject", Value: func(r dto.Rating) string { return r.SubjectName }},
		{Label: "field.ball", Value: dto.Rating.BallText},
	},
	ID:       func(r dto.Rating) int { return r.ID },
	NewDraft: dto.NewRatingDraft,
	DraftOf:  dto.RatingDraftOf,
	Payload:  func(d *dto.RatingDraft) any { return d.Payload() },
	FieldMap: map[string]string{"student": "student_id", "subject": "subject_id"},
	Sources:  []string{"students", "subjects"},
	Filters: []crud.Filter{
		{Param: "group", Label: "field.group", Source: "groups"},
		{Param: "subject", Label: "field.subject", Source: "subjects"},
	},
	UsePatch: true,
}

func RatingRoutes(r fiber.Router) {
	Resource.Mount(r, "")
}
