// file: internals/widgets/searchselect.go
package widgets

import (
	"strconv"
	"strings"

	"otm_dashboard/internals/listview"
)

// Option is one choice of a searchable select.
type Option struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func optionName(o Option) []string { return []string{o.Name} }

// FilterOptions keeps options whose name contains q (case-insensitive), in the given order.
func FilterOptions(opts []Option, q string) []Option {
	return listview.FilterBySubstring(opts, q, optionName)
}

// OptionsFrom maps backend rows to options.
func OptionsFrom[T any](rows []T, fn func(T) Option) []Option {
	out := make([]Option, 0, len(rows))
	for _, r := range rows {
		out = append(out, fn(r))
	}
	return out
}

// SearchSelect is the render model of the searchable select partial.
// Name is the form field the selected ID is posted under; Source feeds the /options lookup.
type SearchSelect struct {
	Label    string
	Name     string
	Source   string
	Options  []Option
	Value    int
	Query    string
	Required bool
}

func NewSearchSelect(label, name, source string, opts []Option, value int) SearchSelect {
	return SearchSelect{Label: label, Name: name, Source: source, Options: opts, Value: value}
}

// Matches is what the dropdown lists for the current query.
func (s SearchSelect) Matches() []Option {
	return FilterOptions(s.Options, s.Query)
}

func (s SearchSelect) Selected() (Option, bool) {
	for _, o := range s.Options {
		if o.ID == s.Value && s.Value != 0 {
			return o, true
		}
	}
	return Option{}, false
}

// SelectedName is the text the input shows before the user types.
func (s SearchSelect) SelectedName() string {
	if o, ok := s.Selected(); ok {
		return o.Name
	}
	return s.Query
}

// Pick resolves a submitted value: a numeric id, or an exact (case-insensitive) name typed
// into the box. Unknown input yields ok=false.
func (s SearchSelect) Pick(raw string) (Option, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Option{}, false
	}
	if id, err := strconv.Atoi(raw); err == nil {
		for _, o := range s.Options {
			if o.ID == id {
				return o, true
			}
		}
		return Option{}, false
	}
	for _, o := range s.Options {
		if strings.EqualFold(o.Name, raw) {
			return o, true
		}
	}
	return Option{}, false
}
