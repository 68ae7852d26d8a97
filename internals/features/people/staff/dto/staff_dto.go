package dto

import (
	"strings"

	"otm_dashboard/internals/features/crud"
)

/* =======================================================
   BACKEND SHAPE (staffs/)
   ======================================================= */

type Staff struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
	Position string `json:"position"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

func (s Staff) SearchFields() []string {
	return []string{s.FullName, s.Position, s.Phone}
}

/* =======================================================
   FORM DRAFT
   ======================================================= */

type StaffDraft struct {
	FullName string `form:"full_name" validate:"required,max=150"`
	Position string `form:"position" validate:"required,max=100"`
	Phone    string `form:"phone" validate:"omitempty,max=20"`
	Email    string `form:"email" validate:"omitempty,email"`
}

func NewStaffDraft() *StaffDraft { return &StaffDraft{} }

func StaffDraftOf(s Staff) *StaffDraft {
	return &StaffDraft{FullName: s.FullName, Position: s.Position, Phone: s.Phone, Email: s.Email}
}

func (d *StaffDraft) Fields() []crud.Field {
	return []crud.Field{
		crud.Text("full_name", "field.full_name", d.FullName, true),
		crud.Text("position", "field.position", d.Position, true),
		crud.Input("tel", "phone", "field.phone", d.Phone, false),
		crud.Input("email", "email", "field.email", d.Email, false),
	}
}

// StaffPayload is what staffs/ accepts on create and update.
type StaffPayload struct {
	FullName string `json:"full_name"`
	Position string `json:"position"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

func (d *StaffDraft) Payload() StaffPayload {
	return StaffPayload{
		FullName: strings.TrimSpace(d.FullName),
		Position: strings.TrimSpace(d.Position),
		Phone:    strings.TrimSpace(d.Phone),
		Email:    strings.ToLower(strings.TrimSpace(d.Email)),
	}
}
