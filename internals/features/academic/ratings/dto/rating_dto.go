package dto

import (
	"strconv"

	"otm_dashboard/internals/features/crud"
)

// Rating is one student's ball in one subject. The ball is shown as-is, never recomputed.
type Rating struct {
	ID          int     `json:"id"`
	Student     int     `json:"student"`
	StudentName string  `json:"student_name"`
	Subject     int     `json:"subject"`
	SubjectName string  `json:"subject_name"`
	Group       int     `json:"group"`
	GroupName   string  `json:"group_name"`
	Ball        float64 `json:"ball"`
}

func (r Rating) BallText() string {
	return strconv.FormatFloat(r.Ball, 'f', -1, 64)
}

type RatingDraft struct {
	StudentID int     `form:"student_id" validate:"required,gt=0"`
	SubjectID int     `form:"subject_id" validate:"required,gt=0"`
	Ball      float64 `form:"ball" validate:"gte=0,lte=100"`
}

func NewRatingDraft() *RatingDraft { return &RatingDraft{} }

func RatingDraftOf(r Rating) *RatingDraft {
	return &RatingDraft{StudentID: r.Student, SubjectID: r.Subject, Ball: r.Ball}
}

func (d *RatingDraft) Fields() []crud.Field {
	return []crud.Field{
		crud.Select("student_id", "field.student", "students", d.StudentID, true),
		crud.Select("subject_id", "field.subject", "subjects", d.SubjectID, true),
		crud.Input("number", "ball", "field.ball", strconv.FormatFloat(d.Ball, 'f', -1, 64), true),
	}
}

type RatingPayload struct {
	Student int     `json:"student"`
	Subject int     `json:"subject"`
	Ball    float64 `json:"ball"`
}

func (d *RatingDraft) Payload() RatingPayload {
	return RatingPayload{Student: d.StudentID, Subject: d.SubjectID, Ball: d.Ball}
}
