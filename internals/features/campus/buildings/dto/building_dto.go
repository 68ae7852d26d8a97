package dto

import (
	"strings"

	"otm_dashboard/internals/features/crud"
)

// Building as buildings/ returns it. The backend calls the floor count "storeys".
type Building struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Storeys int    `json:"storeys"`
}

type BuildingDraft struct {
	Name       string `form:"name" validate:"required,max=150"`
	Address    string `form:"address" validate:"omitempty,max=255"`
	FloorCount int    `form:"floor_count" validate:"required,gte=1,lte=100"`
}

func NewBuildingDraft() *BuildingDraft { return &BuildingDraft{} }

func BuildingDraftOf(b Building) *BuildingDraft {
	return &BuildingDraft{Name: b.Name, Address: b.Address, FloorCount: b.Storeys}
}

func (d *BuildingDraft) Fields() []crud.Field {
	return []crud.Field{
		crud.Text("name", "field.name", d.Name, true),
		crud.Text("address", "field.address", d.Address, false),
		crud.Number("floor_count", "field.floor_count", d.FloorCount, true),
	}
}

type BuildingPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Storeys int    `json:"storeys"`
}

func (d *BuildingDraft) Payload() BuildingPayload {
	return BuildingPayload{
		Name:    strings.TrimSpace(d.Name),
		Address: strings.TrimSpace(d.Address),
		Storeys: d.FloorCount,
	}
}
