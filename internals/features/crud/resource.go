// file: internals/features/crud/resource.go
package crud

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/listview"
	"otm_dashboard/internals/widgets"
)

/* =======================================================
   DESCRIPTORS
   ======================================================= */

// Column is one table column; Label is an i18n key.
type Column[T any] struct {
	Label string
	Value func(T) string
}

// Field is one form input. Name is the UI field name the browser posts.
type Field struct {
	Name     string
	Label    string
	Type     string // text|number|date|time|email|tel|textarea|select
	Value    string
	Required bool
	Source   string           // option source of a select
	Options  []widgets.Option // static choices when Source is empty
	Error    string

	// Select is the searchable select model, filled by FillOptions.
	Select widgets.SearchSelect
}

func Text(name, label, value string, required bool) Field {
	return Field{Name: name, Label: label, Type: "text", Value: value, Required: required}
}

// Input is a text-like field of another input type (email, tel, date, time, textarea).
func Input(typ, name, label, value string, required bool) Field {
	return Field{Name: name, Label: label, Type: typ, Value: value, Required: required}
}

func Number(name, label string, value int, required bool) Field {
	return Field{Name: name, Label: label, Type: "number", Value: Itoa(value), Required: required}
}

// Select is a searchable select fed by an option source.
func Select(name, label, source string, value int, required bool) Field {
	return Field{Name: name, Label: label, Type: "select", Value: Itoa(value), Required: required, Source: source}
}

// SelectedID parses Value for select fields.
func (f Field) SelectedID() int {
	n, _ := strconv.Atoi(f.Value)
	return n
}

// Draft is an in-progress create/edit form in UI field names.
type Draft interface {
	Fields() []Field
}

// Resource wires one backend collection to list/detail/form pages.
type Resource[T any, D Draft] struct {
	Name  string // i18n prefix and default path segment
	Title string // i18n key
	Path  string // e.g. "/buildings"; PathFunc overrides for nested pages

	Endpoint     string
	EndpointFunc func(c *fiber.Ctx) string
	PathFunc     func(c *fiber.Ctx) string
	ListParams   func(c *fiber.Ctx) url.Values

	List    listview.Config[T]
	Columns []Column[T]
	ID      func(T) int

	NewDraft func() D
	DraftOf  func(T) D
	Payload  func(D) any

	// FieldMap renames backend error keys to UI field names (storeys → floor_count).
	FieldMap map[string]string
	// Sources are the option lists the form needs; they are loaded in parallel.
	Sources []string

	// Filters are select boxes above the list whose values are passed to the backend as-is.
	Filters []Filter

	UsePatch bool
	ReadOnly bool
	// WriteRoles may create, edit and delete; empty means every logged-in role.
	WriteRoles []string
}

// Filter narrows a list by a backend query parameter chosen from an option source.
type Filter struct {
	Param  string
	Label  string
	Source string
}

// FilterView is a Filter with its current value and choices, for the list template.
type FilterView struct {
	Filter
	Value   int
	Options []widgets.Option
}

func (r *Resource[T, D]) endpoint(c *fiber.Ctx) string {
	if r.EndpointFunc != nil {
		return r.EndpointFunc(c)
	}
	return r.Endpoint
}

func (r *Resource[T, D]) itemEndpoint(c *fiber.Ctx, id int) string {
	return r.endpoint(c) + strconv.Itoa(id) + "/"
}

func (r *Resource[T, D]) base(c *fiber.Ctx) string {
	if r.PathFunc != nil {
		return r.PathFunc(c)
	}
	return r.Path
}

func (r *Resource[T, D]) listConfig(c *fiber.Ctx) listview.Config[T] {
	cfg := r.List
	cfg.Endpoint = r.endpoint(c)
	if r.ListParams == nil && len(r.Filters) == 0 {
		return cfg
	}
	params := url.Values{}
	for k, vs := range cfg.Params {
		params[k] = append([]string(nil), vs...)
	}
	if r.ListParams != nil {
		for k, vs := range r.ListParams(c) {
			params[k] = vs
		}
	}
	for _, f := range r.Filters {
		if id := c.QueryInt(f.Param); id > 0 {
			params.Set(f.Param, strconv.Itoa(id))
		}
	}
	cfg.Params = params
	return cfg
}

/* =======================================================
   TABLE
   ======================================================= */

type Table struct {
	Columns []string
	Rows    []TableRow
}

type TableRow struct {
	ID     int
	Number int
	Cells  []string
}

func (r *Resource[T, D]) table(items []T, offset int) Table {
	t := Table{Columns: make([]string, 0, len(r.Columns))}
	for _, col := range r.Columns {
		t.Columns = append(t.Columns, col.Label)
	}
	for i, it := range items {
		row := TableRow{Number: offset + i + 1, Cells: make([]string, 0, len(r.Columns))}
		if r.ID != nil {
			row.ID = r.ID(it)
		}
		for _, col := range r.Columns {
			row.Cells = append(row.Cells, col.Value(it))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Pair is one label/value line of a detail page.
type Pair struct {
	Label string
	Value string
}

func (r *Resource[T, D]) pairs(item T) []Pair {
	out := make([]Pair, 0, len(r.Columns))
	for _, col := range r.Columns {
		out = append(out, Pair{Label: col.Label, Value: col.Value(item)})
	}
	return out
}

/* ===== small formatting helpers used by resource packages ===== */

func Itoa(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func Atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
