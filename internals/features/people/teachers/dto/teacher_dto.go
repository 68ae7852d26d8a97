package dto

import (
	"strings"

	"otm_dashboard/internals/features/crud"
)

type Teacher struct {
	ID         int    `json:"id"`
	FullName   string `json:"full_name"`
	Department string `json:"department"`
	Degree     string `json:"degree"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

func (t Teacher) SearchFields() []string {
	return []string{t.FullName, t.Department, t.Degree}
}

type TeacherDraft struct {
	FullName   string `form:"full_name" validate:"required,max=150"`
	Department string `form:"department" validate:"required,max=150"`
	Degree     string `form:"degree" validate:"omitempty,max=100"`
	Phone      string `form:"phone" validate:"omitempty,max=20"`
	Email      string `form:"email" validate:"omitempty,email"`
}

func NewTeacherDraft() *TeacherDraft { return &TeacherDraft{} }

func TeacherDraftOf(t Teacher) *TeacherDraft {
	return &TeacherDraft{
		FullName:   t.FullName,
		Department: t.Department,
		Degree:     t.Degree,
		Phone:      t.Phone,
		Email:      t.Email,
	}
}

func (d *TeacherDraft) Fields() []crud.Field {
	return []crud.Field{
		crud.Text("full_name", "field.full_name", d.FullName, true),
		crud.Text("department", "field.department", d.Department, true),
		crud.Text("degree", "field.degree", d.Degree, false),
		crud.Input("tel", "phone", "field.phone", d.Phone, false),
		crud.Input("email", "email", "field.email", d.Email, false),
	}
}

type TeacherPayload struct {
	FullName   string `json:"full_name"`
	Department string `json:"department"`
	Degree     string `json:"degree"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

func (d *TeacherDraft) Payload() TeacherPayload {
	return TeacherPayload{
		FullName:   strings.TrimSpace(d.FullName),
		Department: strings.TrimSpace(d.Department),
		Degree:     strings.TrimSpace(d.Degree),
		Phone:      strings.TrimSpace(d.Phone),
		Email:      strings.ToLower(strings.TrimSpace(d.Email)),
	}
}
