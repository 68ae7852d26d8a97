package dto

import (
	"strings"

	"otm_dashboard/internals/features/crud"
)

type Room struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Building     int    `json:"building"`
	BuildingName string `json:"building_name"`
	Floor        int    `json:"floor"`
	Capacity     int    `json:"capacity"`
}

type RoomDraft struct {
	Name       string `form:"name" validate:"required,max=50"`
	BuildingID int    `form:"building_id" validate:"required,gt=0"`
	Floor      int    `form:"floor" validate:"gte=0,lte=100"`
	Capacity   int    `form:"capacity" validate:"gte=0,lte=10000"`
}

func NewRoomDraft() *RoomDraft { return &RoomDraft{} }

func RoomDraftOf(r Room) *RoomDraft {
	return &RoomDraft{Name: r.Name, BuildingID: r.Building, Floor: r.Floor, Capacity: r.Capacity}
}

func (d *RoomDraft) Fields() []crud.Field {
	return []crud.Field{
		crud.Text("name", "field.room", d.Name, true),
		crud.Select("building_id", "field.building", "buildings", d.BuildingID, true),
		crud.Number("floor", "field.floor", d.Floor, false),
		crud.Number("capacity", "field.capacity", d.Capacity, false),
	}
}

type RoomPayload struct {
	Name     string `json:"name"`
	Building int    `json:"building"`
	Floor    int    `json:"floor"`
	Capacity int    `json:"capacity"`
}

func (d *RoomDraft) Payload() RoomPayload {
	return RoomPayload{
		Name:     strings.TrimSpace(d.Name),
		Building: d.BuildingID,
		Floor:    d.Floor,
		Capacity: d.Capacity,
	}
}
