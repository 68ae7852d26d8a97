package dto

import (
	"strings"

	"otm_dashboard/internals/features/crud"
)

/* =======================================================
   BACKEND SHAPE (students/, server paginated)
   ======================================================= */

type Student struct {
	ID        int    `json:"id"`
	FullName  string `json:"full_name"`
	Group     int    `json:"group"`
	GroupName string `json:"group_name"`
	BirthDate string `json:"birth_date"`
	Phone     string `json:"phone"`
}

/* =======================================================
   FORM DRAFT (group picked with a searchable select)
   ======================================================= */

type StudentDraft struct {
	FullName  string `form:"full_name" validate:"required,max=150"`
	GroupID   int    `form:"group_id" validate:"required,gt=0"`
	BirthDate string `form:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Phone     string `form:"phone" validate:"omitempty,max=20"`
}

func NewStudentDraft() *StudentDraft { return &StudentDraft{} }

func StudentDraftOf(s Student) *StudentDraft {
	return &StudentDraft{FullName: s.FullName, GroupID: s.Group, BirthDate: s.BirthDate, Phone: s.Phone}
}

func (d *StudentDraft) Fields() []crud.Field {
	return []crud.Field{
		crud.Text("full_name", "field.full_name", d.FullName, true),
		crud.Select("group_id", "field.group", "groups", d.GroupID, true),
		crud.Input("date", "birth_date", "field.birth_date", d.BirthDate, false),
		crud.Input("tel", "phone", "field.phone", d.Phone, false),
	}
}

type StudentPayload struct {
	FullName  string  `json:"full_name"`
	Group     int     `json:"group"`
	BirthDate *string `json:"birth_date"`
	Phone     string  `json:"phone"`
}

func (d *StudentDraft) Payload() StudentPayload {
	p := StudentPayload{
		FullName: strings.TrimSpace(d.FullName),
		Group:    d.GroupID,
		Phone:    strings.TrimSpace(d.Phone),
	}
	if b := strings.TrimSpace(d.BirthDate); b != "" {
		p.BirthDate = &b
	}
	return p
}
