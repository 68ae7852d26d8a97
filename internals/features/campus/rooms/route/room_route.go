package route

import (
	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/features/campus/rooms/dto"
	"otm_dashboard/internals/features/crud"
	"otm_dashboard/internals/listview"
)

var Resource = &crud.Resource[dto.Room, *dto.RoomDraft]{
	Name:     "rooms",
	Title:    "nav.rooms",
	Path:     "/rooms",
	Endpoint: "rooms/",
	List: listview.Config[dto.Room]{
		Pagination: listview.ServerPaginated,
		Search:     listview.ServerSearch,
	},
	Columns: []crud.Column[dto.Room]{
		{Label: "field.room", Value: func(r dto.Room) string { return r.Name }},
		{Label: "field.building", Value: func(r dto.Room) string { return r.BuildingName }},
		{Label: "field.floor", Value: func(r dto.Room) string { return crud.Itoa(r.Floor) }},
		{Label: "field.capacity", Value: func(r dto.Room) string { return crud.Itoa(r.Capacity) }},
	},
	ID:       func(r dto.Room) int { return r.ID },
	NewDraft: dto.NewRoomDraft,
	DraftOf:  dto.RoomDraftOf,
	Payload:  func(d *dto.RoomDraft) any { return d.Payload() },
	FieldMap: map[string]string{"building": "building_id"},
	Sources:  []string{"buildings"},
}

func RoomRoutes(r fiber.Router) {
	Resource.Mount(r, "")
}
