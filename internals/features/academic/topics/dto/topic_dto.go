package dto

import (
	"strings"

	"otm_dashboard/internals/features/crud"
)

// Topic belongs to a subject; the collection lives at subjects/{id}/topics/.
type Topic struct {
	ID      int    `json:"id"`
	Subject int    `json:"subject"`
	Name    string `json:"name"`
	Hours   int    `json:"hours"`
	Order   int    `json:"order"`
}

func (t Topic) SearchFields() []string { return []string{t.Name} }

type TopicDraft struct {
	Name  string `form:"name" validate:"required,max=255"`
	Hours int    `form:"hours" validate:"gte=0,lte=500"`
	Order int    `form:"order" validate:"gte=0"`
}

func NewTopicDraft() *TopicDraft { return &TopicDraft{} }

func TopicDraftOf(t Topic) *TopicDraft {
	return &TopicDraft{Name: t.Name, Hours: t.Hours, Order: t.Order}
}

func (d *TopicDraft) Fields() []crud.Field {
	return []crud.Field{
		crud.Input("textarea", "name", "field.topic", d.Name, true),
		crud.Number("hours", "field.hours", d.Hours, false),
		crud.Number("order", "field.order", d.Order, false),
	}
}

type TopicPayload struct {
	Name  string `json:"name"`
	Hours int    `json:"hours"`
	Order int    `json:"order"`
}

func (d *TopicDraft) Payload() TopicPayload {
	return TopicPayload{Name: strings.TrimSpace(d.Name), Hours: d.Hours, Order: d.Order}
}
