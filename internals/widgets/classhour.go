// file: internals/widgets/classhour.go
package widgets

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

/* =======================================================
   BACKEND SHAPES
   ======================================================= */

// ClassHour is one pair as institutions/{id}/class-hours/ returns it.
type ClassHour struct {
	ID         int    `json:"id,omitempty"`
	PairNumber int    `json:"pair_number"`
	BeginTime  string `json:"begin_time"`
	EndTime    string `json:"end_time"`
}

// ClassHourPayload is one pair as the backend accepts it on save.
type ClassHourPayload struct {
	Para      int    `json:"para"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

/* =======================================================
   FORM
   ======================================================= */

type ClassHourRow struct {
	Label int    `validate:"min=1"`
	Start string `validate:"required,datetime=15:04"`
	End   string `validate:"required,datetime=15:04"`
}

// Display is the row caption, e.g. "2 para".
func (r ClassHourRow) Display(pairWord string) string {
	return strconv.Itoa(r.Label) + " " + pairWord
}

// ClassHourForm is the modal editor draft.
type ClassHourForm struct {
	Rows []ClassHourRow
}

// NewClassHourForm pre-populates one row per existing pair.
func NewClassHourForm(existing []ClassHour) *ClassHourForm {
	f := &ClassHourForm{Rows: make([]ClassHourRow, 0, len(existing))}
	for _, h := range existing {
		f.Rows = append(f.Rows, ClassHourRow{
			Label: h.PairNumber + 1,
			Start: ShortTime(h.BeginTime),
			End:   ShortTime(h.EndTime),
		})
	}
	return f
}

// ParseClassHourForm rebuilds the draft from posted columns. Missing labels are renumbered.
func ParseClassHourForm(labels, starts, ends []string) *ClassHourForm {
	n := len(starts)
	if len(ends) > n {
		n = len(ends)
	}
	f := &ClassHourForm{Rows: make([]ClassHourRow, 0, n)}
	for i := 0; i < n; i++ {
		row := ClassHourRow{Start: ShortTime(at(starts, i)), End: ShortTime(at(ends, i))}
		if l, err := strconv.Atoi(strings.TrimSpace(at(labels, i))); err == nil && l > 0 {
			row.Label = l
		} else {
			row.Label = f.nextLabel()
		}
		f.Rows = append(f.Rows, row)
	}
	return f
}

func at(xs []string, i int) string {
	if i < len(xs) {
		return xs[i]
	}
	return ""
}

func (f *ClassHourForm) nextLabel() int {
	if len(f.Rows) == 0 {
		return 1
	}
	return f.Rows[len(f.Rows)-1].Label + 1
}

// Append adds an empty row numbered after the last one.
func (f *ClassHourForm) Append() {
	f.Rows = append(f.Rows, ClassHourRow{Label: f.nextLabel()})
}

// ErrNoRows is returned when there is nothing to save.
var ErrNoRows = errors.New("at least one pair is required")

// RowError points at one invalid cell.
type RowError struct {
	Row   int
	Field string
	Tag   string
}

type RowErrors []RowError

func (e RowErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, re := range e {
		parts = append(parts, fmt.Sprintf("row %d: %s %s", re.Row+1, strings.ToLower(re.Field), re.Tag))
	}
	return strings.Join(parts, "; ")
}

// Has reports whether a given row/field is invalid, for highlighting in the template.
func (e RowErrors) Has(row int, field string) bool {
	for _, re := range e {
		if re.Row == row && re.Field == field {
			return true
		}
	}
	return false
}

// Validate checks every row has a start and an end in HH:MM.
func (f *ClassHourForm) Validate() error {
	if len(f.Rows) == 0 {
		return ErrNoRows
	}
	var out RowErrors
	for i, row := range f.Rows {
		err := validate.Struct(row)
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			out = append(out, RowError{Row: i, Field: fe.Field(), Tag: fe.Tag()})
		}
	}
	if len(out) > 0 {
		return out
	}
	return nil
}

// Payload numbers pairs by position (0-based), not by their display label.
func (f *ClassHourForm) Payload() []ClassHourPayload {
	out := make([]ClassHourPayload, 0, len(f.Rows))
	for i, row := range f.Rows {
		out = append(out, ClassHourPayload{Para: i, StartTime: row.Start, EndTime: row.End})
	}
	return out
}

// Submit validates and hands the full corrected sequence to save. save is never called on
// invalid input.
func (f *ClassHourForm) Submit(save func([]ClassHourPayload) error) error {
	if err := f.Validate(); err != nil {
		return err
	}
	return save(f.Payload())
}

// ShortTime trims "08:00:00" to "08:00".
func ShortTime(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 5 && s[2] == ':' {
		return s[:5]
	}
	return s
}
