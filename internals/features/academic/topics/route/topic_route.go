package route

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/features/academic/topics/dto"
	"otm_dashboard/internals/features/crud"
	"otm_dashboard/internals/listview"
)

func subject(c *fiber.Ctx) string { return url.PathEscape(c.Params("subject")) }

// Topics are nested under a subject and fetched whole.
var Resource = &crud.Resource[dto.Topic, *dto.TopicDraft]{
	Name:         "topics",
	Title:        "nav.topics",
	EndpointFunc: func(c *fiber.Ctx) string { return "subjects/" + subject(c) + "/topics/" },
	PathFunc:     func(c *fiber.Ctx) string { return "/subjects/" + subject(c) + "/topics" },
	List: listview.Config[dto.Topic]{
		Pagination:   listview.ClientPaginated,
		Search:       listview.ClientSearch,
		SearchFields: dto.Topic.SearchFields,
	},
	Columns: []crud.Column[dto.Topic]{
		{Label: "field.order", Value: func(t dto.Topic) string { return crud.Itoa(t.Order) }},
		{Label: "field.topic", Value: func(t dto.Topic) string { return t.Name }},
		{Label: "field.hours", Value: func(t dto.Topic) string { return crud.Itoa(t.Hours) }},
	},
	ID:       func(t dto.Topic) int { return t.ID },
	NewDraft: dto.NewTopicDraft,
	DraftOf:  dto.TopicDraftOf,
	Payload:  func(d *dto.TopicDraft) any { return d.Payload() },
}

func TopicRoutes(r fiber.Router) {
	Resource.Mount(r, "/subjects/:subject<int>/topics")
}
