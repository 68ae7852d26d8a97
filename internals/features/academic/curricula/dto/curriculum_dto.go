package dto

import (
	"strconv"
	"strings"

	"otm_dashboard/internals/features/crud"
)

/* =======================================================
   CURRICULUM (curriculums/, unbounded, paged in memory)
   ======================================================= */

type Curriculum struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Speciality    string `json:"speciality"`
	Year          int    `json:"year"`
	SemesterCount int    `json:"semester_count"`
}

func (c Curriculum) SearchFields() []string {
	return []string{c.Name, c.Speciality}
}

type CurriculumDraft struct {
	Name          string `form:"name" validate:"required,max=255"`
	Speciality    string `form:"speciality" validate:"required,max=150"`
	Year          int    `form:"year" validate:"required,gte=1990,lte=2100"`
	SemesterCount int    `form:"semester_count" validate:"required,gte=1,lte=12"`
}

func NewCurriculumDraft() *CurriculumDraft { return &CurriculumDraft{SemesterCount: 8} }

func CurriculumDraftOf(c Curriculum) *CurriculumDraft {
	return &CurriculumDraft{Name: c.Name, Speciality: c.Speciality, Year: c.Year, SemesterCount: c.SemesterCount}
}

func (d *CurriculumDraft) Fields() []crud.Field {
	return []crud.Field{
		crud.Text("name", "field.name", d.Name, true),
		crud.Text("speciality", "field.speciality", d.Speciality, true),
		crud.Number("year", "field.year", d.Year, true),
		crud.Number("semester_count", "field.semester_count", d.SemesterCount, true),
	}
}

type CurriculumPayload struct {
	Name          string `json:"name"`
	Speciality    string `json:"speciality"`
	Year          int    `json:"year"`
	SemesterCount int    `json:"semester_count"`
}

func (d *CurriculumDraft) Payload() CurriculumPayload {
	return CurriculumPayload{
		Name:          strings.TrimSpace(d.Name),
		Speciality:    strings.TrimSpace(d.Speciality),
		Year:          d.Year,
		SemesterCount: d.SemesterCount,
	}
}

/* =======================================================
   SUBJECTS OF A CURRICULUM (curriculums/{id}/subjects/)
   ======================================================= */

type CurriculumSubject struct {
	ID          int    `json:"id"`
	Subject     int    `json:"subject"`
	SubjectName string `json:"subject_name"`
	Semester    int    `json:"semester"`
	Hours       int    `json:"hours"`
	Credits     int    `json:"credits"`
}

type AttachSubjectRequest struct {
	SubjectID int `form:"subject_id" validate:"required,gt=0"`
	Semester  int `form:"semester" validate:"required,gte=1,lte=12"`
	Hours     int `form:"hours" validate:"gte=0,lte=2000"`
	Credits   int `form:"credits" validate:"gte=0,lte=60"`
}

type AttachSubjectPayload struct {
	Subject  int `json:"subject"`
	Semester int `json:"semester"`
	Hours    int `json:"hours"`
	Credits  int `json:"credits"`
}

func (r AttachSubjectRequest) Payload() AttachSubjectPayload {
	return AttachSubjectPayload{Subject: r.SubjectID, Semester: r.Semester, Hours: r.Hours, Credits: r.Credits}
}

/* =======================================================
   SEMESTER DISTRIBUTION (curriculums/{id}/subjects/distribute/)
   ======================================================= */

// DistributionItem places one attached subject into a semester.
type DistributionItem struct {
	Subject  int `json:"subject" validate:"required,gt=0"`
	Semester int `json:"semester" validate:"required,gte=1"`
	Hours    int `json:"hours" validate:"gte=0"`
}

type DistributionPayload struct {
	Items []DistributionItem `json:"items" validate:"required,min=1,dive"`
}

// ParseDistribution zips the posted columns. Rows whose subject is not a number are dropped.
func ParseDistribution(subjects, semesters, hours []string) DistributionPayload {
	p := DistributionPayload{Items: make([]DistributionItem, 0, len(subjects))}
	for i, raw := range subjects {
		id, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			continue
		}
		item := DistributionItem{Subject: id}
		if i < len(semesters) {
			item.Semester, _ = strconv.Atoi(strings.TrimSpace(semesters[i]))
		}
		if i < len(hours) {
			item.Hours, _ = strconv.Atoi(strings.TrimSpace(hours[i]))
		}
		p.Items = append(p.Items, item)
	}
	return p
}

// OutOfRange lists the subjects placed past the curriculum's last semester.
func (p DistributionPayload) OutOfRange(semesterCount int) []int {
	var out []int
	for _, it := range p.Items {
		if semesterCount > 0 && it.Semester > semesterCount {
			out = append(out, it.Subject)
		}
	}
	return out
}

// Semesters is 1..n for the semester selects.
func Semesters(n int) []int {
	out := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, i)
	}
	return out
}
