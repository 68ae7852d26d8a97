package stubapi

import (
	"fmt"
	"strconv"
	"strings"
)

// schema is what the stub checks on writes to a collection kind.
type schema struct {
	Required []string
	// Parent is the field set from the path on nested collections.
	Parent string
	Check  func(Doc) map[string][]string
}

// kinds maps a collection path with numeric segments replaced by "*".
var kinds = map[string]schema{
	"staffs":      {Required: []string{"full_name"}},
	"teachers":    {Required: []string{"full_name"}},
	"students":    {Required: []string{"full_name", "group"}},
	"buildings":   {Required: []string{"name", "storeys"}, Check: checkBuilding},
	"rooms":       {Required: []string{"name", "building"}},
	"edu-groups":  {Required: []string{"name", "curriculum"}},
	"curriculums": {Required: []string{"name", "semester_count"}},
	"subjects":    {Required: []string{"name"}},
	"ratings":     {Required: []string{"student", "subject", "ball"}, Check: checkRating},
	"schedules":   {Required: []string{"group", "subject", "teacher", "room", "class_hour", "weekday"}, Check: checkSchedule},

	"subjects/*/topics":          {Required: []string{"name"}, Parent: "subject"},
	"curriculums/*/subjects":     {Required: []string{"subject", "semester"}, Parent: "curriculum"},
	"institutions/*/class-hours": {},
}

// relation resolves a foreign key to a display name ("group" → "group_name").
type relation struct {
	Collection string
	NameKey    string
}

var relations = map[string]relation{
	"group":      {"edu-groups", "name"},
	"building":   {"buildings", "name"},
	"curriculum": {"curriculums", "name"},
	"subject":    {"subjects", "name"},
	"teacher":    {"teachers", "full_name"},
	"room":       {"rooms", "name"},
	"student":    {"students", "full_name"},
}

// kindOf returns the schema key of a collection path, or "" when unknown.
func kindOf(collection string) (string, bool) {
	segs := strings.Split(collection, "/")
	for i, s := range segs {
		if i%2 == 1 {
			if _, err := strconv.Atoi(s); err != nil {
				return "", false
			}
			segs[i] = "*"
		}
	}
	k := strings.Join(segs, "/")
	_, ok := kinds[k]
	return k, ok
}

// parentID is the id segment right before the last one of a nested path.
func parentID(collection string) int {
	segs := strings.Split(collection, "/")
	if len(segs) < 3 {
		return 0
	}
	n, _ := strconv.Atoi(segs[len(segs)-2])
	return n
}

const msgRequired = "This field is required."

func validate(kind string, doc Doc, partial bool) map[string][]string {
	sc := kinds[kind]
	errs := map[string][]string{}
	for _, f := range sc.Required {
		v, present := doc[f]
		if partial && !present {
			continue
		}
		if blank(v) {
			errs[f] = append(errs[f], msgRequired)
		}
	}
	if sc.Check != nil {
		for k, v := range sc.Check(doc) {
			errs[k] = append(errs[k], v...)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func blank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	}
	return false
}

func checkBuilding(d Doc) map[string][]string {
	if v, ok := d["storeys"]; ok && !blank(v) {
		if n, ok := intOf(v); !ok || n < 1 {
			return map[string][]string{"storeys": {"Ensure this value is greater than or equal to 1."}}
		}
	}
	return nil
}

func checkRating(d Doc) map[string][]string {
	v, ok := d["ball"]
	if !ok || blank(v) {
		return nil
	}
	f, ok := v.(float64)
	if !ok {
		return map[string][]string{"ball": {"A valid number is required."}}
	}
	if f < 0 || f > 100 {
		return map[string][]string{"ball": {fmt.Sprintf("Ensure this value is between 0 and 100 (got %g).", f)}}
	}
	return nil
}

func checkSchedule(d Doc) map[string][]string {
	v, ok := d["weekday"]
	if !ok || blank(v) {
		return nil
	}
	if n, ok := intOf(v); !ok || n < 1 || n > 6 {
		return map[string][]string{"weekday": {"\"" + fmt.Sprint(v) + "\" is not a valid choice."}}
	}
	return nil
}
