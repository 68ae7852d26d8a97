package dto

import (
	"strings"

	"otm_dashboard/internals/features/crud"
)

// Group is one study group from edu-groups/.
type Group struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Speciality     string `json:"speciality"`
	Course         int    `json:"course"`
	Curriculum     int    `json:"curriculum"`
	CurriculumName string `json:"curriculum_name"`
}

func (g Group) SearchFields() []string {
	return []string{g.Name, g.Speciality}
}

type GroupDraft struct {
	Name         string `form:"name" validate:"required,max=50"`
	Speciality   string `form:"speciality" validate:"required,max=150"`
	Course       int    `form:"course" validate:"required,gte=1,lte=7"`
	CurriculumID int    `form:"curriculum_id" validate:"required,gt=0"`
}

func NewGroupDraft() *GroupDraft { return &GroupDraft{} }

func GroupDraftOf(g Group) *GroupDraft {
	return &GroupDraft{Name: g.Name, Speciality: g.Speciality, Course: g.Course, CurriculumID: g.Curriculum}
}

func (d *GroupDraft) Fields() []crud.Field {
	return []crud.Field{
		crud.Text("name", "field.name", d.Name, true),
		crud.Text("speciality", "field.speciality", d.Speciality, true),
		crud.Number("course", "field.course", d.Course, true),
		crud.Select("curriculum_id", "field.curriculum", "curricula", d.CurriculumID, true),
	}
}

type GroupPayload struct {
	Name       string `json:"name"`
	Speciality string `json:"speciality"`
	Course     int    `json:"course"`
	Curriculum int    `json:"curriculum"`
}

func (d *GroupDraft) Payload() GroupPayload {
	return GroupPayload{
		Name:       strings.TrimSpace(d.Name),
		Speciality: strings.TrimSpace(d.Speciality),
		Course:     d.Course,
		Curriculum: d.CurriculumID,
	}
}
