package dto

import (
	"strconv"

	"otm_dashboard/internals/features/crud"
	"otm_dashboard/internals/widgets"
)

type Schedule struct {
	ID          int    `json:"id"`
	Group       int    `json:"group"`
	GroupName   string `json:"group_name"`
	Subject     int    `json:"subject"`
	SubjectName string `json:"subject_name"`
	Teacher     int    `json:"teacher"`
	TeacherName string `json:"teacher_name"`
	Room        int    `json:"room"`
	RoomName    string `json:"room_name"`
	ClassHour   int    `json:"class_hour"`
	Weekday     int    `json:"weekday"`
}

func (s Schedule) SearchFields() []string {
	return []string{s.SubjectName, s.TeacherName, s.RoomName, s.GroupName}
}

// WeekdayKey is the i18n key of the weekday (1 = Monday).
func (s Schedule) WeekdayKey() string { return "weekday." + strconv.Itoa(s.Weekday) }

func weekdays() []widgets.Option {
	out := make([]widgets.Option, 0, 6)
	for d := 1; d <= 6; d++ {
		out = append(out, widgets.Option{ID: d, Name: "weekday." + strconv.Itoa(d)})
	}
	return out
}

type ScheduleDraft struct {
	GroupID     int `form:"group_id" validate:"required,gt=0"`
	SubjectID   int `form:"subject_id" validate:"required,gt=0"`
	TeacherID   int `form:"teacher_id" validate:"required,gt=0"`
	RoomID      int `form:"room_id" validate:"required,gt=0"`
	ClassHourID int `form:"class_hour_id" validate:"required,gt=0"`
	Weekday     int `form:"weekday" validate:"required,gte=1,lte=6"`
}

func NewScheduleDraft() *ScheduleDraft { return &ScheduleDraft{} }

func ScheduleDraftOf(s Schedule) *ScheduleDraft {
	return &ScheduleDraft{
		GroupID:     s.Group,
		SubjectID:   s.Subject,
		TeacherID:   s.Teacher,
		RoomID:      s.Room,
		ClassHourID: s.ClassHour,
		Weekday:     s.Weekday,
	}
}

func (d *ScheduleDraft) Fields() []crud.Field {
	day := crud.Select("weekday", "field.weekday", "", d.Weekday, true)
	day.Options = weekdays()
	return []crud.Field{
		crud.Select("group_id", "field.group", "groups", d.GroupID, true),
		crud.Select("subject_id", "field.subject", "subjects", d.SubjectID, true),
		crud.Select("teacher_id", "field.teacher", "teachers", d.TeacherID, true),
		crud.Select("room_id", "field.room", "rooms", d.RoomID, true),
		crud.Select("class_hour_id", "field.class_hour", "class-hours", d.ClassHourID, true),
		day,
	}
}

type SchedulePayload struct {
	Group     int `json:"group"`
	Subject   int `json:"subject"`
	Teacher   int `json:"teacher"`
	Room      int `json:"room"`
	ClassHour int `json:"class_hour"`
	Weekday   int `json:"weekday"`
}

func (d *ScheduleDraft) Payload() SchedulePayload {
	return SchedulePayload{
		Group:     d.GroupID,
		Subject:   d.SubjectID,
		Teacher:   d.TeacherID,
		Room:      d.RoomID,
		ClassHour: d.ClassHourID,
		Weekday:   d.Weekday,
	}
}
