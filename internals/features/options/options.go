// file: internals/features/options/options.go
package options

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/apiclient"
	"otm_dashboard/internals/configs"
	helper "otm_dashboard/internals/helpers"
	"otm_dashboard/internals/listview"
	"otm_dashboard/internals/middlewares"
	"otm_dashboard/internals/widgets"
)

// Source describes where a searchable select gets its choices.
type Source struct {
	Endpoint func() string
	Params   url.Values
	Name     func(row map[string]any) string
}

func fixed(endpoint string) func() string { return func() string { return endpoint } }

func field(keys ...string) func(map[string]any) string {
	return func(row map[string]any) string {
		for _, k := range keys {
			if s := str(row[k]); s != "" {
				return s
			}
		}
		return ""
	}
}

var (
	mu      sync.RWMutex
	sources = map[string]Source{
		"buildings":  {Endpoint: fixed("buildings/"), Params: url.Values{"page_size": {"1000"}}, Name: field("name")},
		"rooms":      {Endpoint: fixed("rooms/"), Params: url.Values{"page_size": {"1000"}}, Name: field("name", "number")},
		"groups":     {Endpoint: fixed("edu-groups/"), Name: field("name")},
		"curricula":  {Endpoint: fixed("curriculums/"), Name: field("name")},
		"teachers":   {Endpoint: fixed("teachers/"), Name: field("full_name", "name")},
		"students":   {Endpoint: fixed("students/"), Params: url.Values{"page_size": {"1000"}}, Name: field("full_name", "name")},
		"subjects":   {Endpoint: fixed("subjects/"), Name: field("name")},
		"class-hours": {
			Endpoint: func() string { return ClassHoursEndpoint(configs.InstitutionID) },
			Name: func(row map[string]any) string {
				n, _ := row["pair_number"].(float64)
				return fmt.Sprintf("%d: %s-%s", int(n)+1, widgets.ShortTime(str(row["begin_time"])), widgets.ShortTime(str(row["end_time"])))
			},
		},
	}
)

// ClassHoursEndpoint is the institution-scoped pair timetable.
func ClassHoursEndpoint(institutionID string) string {
	return "institutions/" + url.PathEscape(institutionID) + "/class-hours/"
}

// Register adds or replaces a source.
func Register(name string, s Source) {
	mu.Lock()
	sources[name] = s
	mu.Unlock()
}

func lookup(name string) (Source, bool) {
	mu.RLock()
	defer mu.RUnlock()
	s, ok := sources[name]
	return s, ok
}

// Names lists registered sources, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(sources))
	for k := range sources {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var ErrUnknownSource = fiber.NewError(fiber.StatusNotFound, "unknown option source")

// Load fetches one source. Rows without a numeric id are skipped.
func Load(ctx context.Context, api listview.Fetcher, name string) ([]widgets.Option, error) {
	src, ok := lookup(name)
	if !ok {
		return nil, ErrUnknownSource
	}
	res := api.Fetch(ctx, src.Endpoint(), src.Params)
	if !res.Success {
		return nil, res.Err
	}
	if !res.ResultsShapeOK() {
		return nil, apiclient.NewShapeError("%s: \"results\" is not a list", name)
	}
	rows, err := apiclient.DecodeResults[map[string]any](res)
	if err != nil {
		return nil, err
	}
	out := make([]widgets.Option, 0, len(rows))
	for _, r := range rows {
		id, ok := r["id"].(float64)
		if !ok {
			continue
		}
		out = append(out, widgets.Option{ID: int(id), Name: src.Name(r)})
	}
	return out, nil
}

// LoadMany fetches several sources concurrently.
func LoadMany(ctx context.Context, api listview.Fetcher, names ...string) (map[string][]widgets.Option, error) {
	results := make([][]widgets.Option, len(names))
	loaders := make([]listview.Loader, 0, len(names))
	for i, name := range names {
		i, name := i, name
		loaders = append(loaders, func(ctx context.Context) error {
			opts, err := Load(ctx, api, name)
			results[i] = opts
			return err
		})
	}
	if err := listview.LoadParallel(ctx, loaders...); err != nil {
		return nil, err
	}
	out := make(map[string][]widgets.Option, len(names))
	for i, name := range names {
		out[name] = results[i]
	}
	return out, nil
}

/* ===== GET /options/:source?q= ===== */

func Handler(c *fiber.Ctx) error {
	name := c.Params("source")
	opts, err := Load(c.UserContext(), middlewares.API(c), name)
	if err != nil {
		return err
	}
	matches := widgets.FilterOptions(opts, c.Query("q"))
	return helper.JsonList(c, "ok", matches, helper.BuildPaginationFromPage(len(matches), 1, max(len(matches), 1)))
}

func str(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return fmt.Sprint(t)
	default:
		b, err := sonic.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
