package controller

import (
	"context"
	"log"
	"net/url"
	"sort"
	"sync"

	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/apiclient"
	"otm_dashboard/internals/constants"
	"otm_dashboard/internals/features/crud"
	helper "otm_dashboard/internals/helpers"
	"otm_dashboard/internals/listview"
	"otm_dashboard/internals/middlewares"
	"otm_dashboard/internals/services/health"
	"otm_dashboard/internals/session"
)

/* =======================================================
   COUNTERS
   ======================================================= */

// Counter is one tile of the dashboard.
type Counter struct {
	Label    string
	Path     string
	Endpoint string
	Count    int
	Failed   bool
}

var adminCounters = []Counter{
	{Label: "nav.staff", Path: "/staff", Endpoint: "staffs/"},
	{Label: "nav.teachers", Path: "/teachers", Endpoint: "teachers/"},
	{Label: "nav.groups", Path: "/groups", Endpoint: "edu-groups/"},
	{Label: "nav.curricula", Path: "/curricula", Endpoint: "curriculums/"},
	{Label: "nav.students", Path: "/students", Endpoint: "students/"},
	{Label: "nav.buildings", Path: "/buildings", Endpoint: "buildings/"},
	{Label: "nav.rooms", Path: "/rooms", Endpoint: "rooms/"},
}

var teacherCounters = []Counter{
	{Label: "nav.schedules", Path: "/schedules", Endpoint: "schedules/"},
	{Label: "nav.ratings", Path: "/ratings", Endpoint: "ratings/"},
	{Label: "nav.curricula", Path: "/curricula", Endpoint: "curriculums/"},
}

var oneRow = url.Values{"page": {"1"}, "page_size": {"1"}}

// LoadCounters reads every count concurrently. A failed tile does not fail the page,
// except for a rejected credential, which is returned.
func LoadCounters(ctx context.Context, api listview.Fetcher, tiles []Counter) ([]Counter, error) {
	out := append([]Counter(nil), tiles...)
	var (
		mu      sync.Mutex
		authErr error
	)
	loaders := make([]listview.Loader, 0, len(out))
	for i := range out {
		i := i
		loaders = append(loaders, func(ctx context.Context) error {
			res := api.Fetch(ctx, out[i].Endpoint, oneRow)
			if !res.Success {
				out[i].Failed = true
				if res.Err.Status == fiber.StatusUnauthorized {
					mu.Lock()
					authErr = res.Err
					mu.Unlock()
				}
				return nil
			}
			out[i].Count = res.Count
			return nil
		})
	}
	if err := listview.LoadParallel(ctx, loaders...); err != nil {
		return out, err
	}
	return out, authErr
}

type DashboardController struct {
	Monitor *health.Monitor
}

func NewDashboardController(m *health.Monitor) *DashboardController {
	return &DashboardController{Monitor: m}
}

func (ctl *DashboardController) health() health.Status {
	if ctl.Monitor == nil {
		return health.Status{}
	}
	return ctl.Monitor.Last()
}

/* ===== GET / ===== */

func (ctl *DashboardController) Index(c *fiber.Ctx) error {
	tiles := adminCounters
	if session.AuthFrom(c).SelectRole() == constants.RoleTeacher {
		tiles = teacherCounters
	}
	counters, err := LoadCounters(c.UserContext(), middlewares.API(c), tiles)
	if done, rerr := crud.HandleAuthFailure(c, err); done {
		return rerr
	}
	if err != nil {
		log.Printf("[WARN] dashboard: %v", err)
	}
	return helper.Render(c, "pages/dashboard", fiber.Map{
		"Title":    "nav.dashboard",
		"Counters": counters,
		"Health":   ctl.health(),
	})
}

/* =======================================================
   REPORTS
   ======================================================= */

// RoomRow and GroupRow are the slices of rooms/ and edu-groups/ the reports read.
type RoomRow struct {
	BuildingName string `json:"building_name"`
	Capacity     int    `json:"capacity"`
}

type GroupRow struct {
	Course int `json:"course"`
}

// BuildingLoad sums rooms and seats per building.
type BuildingLoad struct {
	Building string
	Rooms    int
	Seats    int
}

// CourseLoad counts groups per course year.
type CourseLoad struct {
	Course int
	Groups int
}

func AggregateRooms(rows []RoomRow) []BuildingLoad {
	idx := map[string]*BuildingLoad{}
	for _, r := range rows {
		b, ok := idx[r.BuildingName]
		if !ok {
			b = &BuildingLoad{Building: r.BuildingName}
			idx[r.BuildingName] = b
		}
		b.Rooms++
		b.Seats += r.Capacity
	}
	out := make([]BuildingLoad, 0, len(idx))
	for _, b := range idx {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Building < out[j].Building })
	return out
}

func AggregateGroups(rows []GroupRow) []CourseLoad {
	idx := map[int]int{}
	for _, g := range rows {
		idx[g.Course]++
	}
	out := make([]CourseLoad, 0, len(idx))
	for course, n := range idx {
		out = append(out, CourseLoad{Course: course, Groups: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Course < out[j].Course })
	return out
}

/* ===== GET /reports ===== */

func (ctl *DashboardController) Reports(c *fiber.Ctx) error {
	api := middlewares.API(c)
	rooms := listview.New[RoomRow](api, listview.Config[RoomRow]{
		Endpoint:   "rooms/",
		Params:     url.Values{"page_size": {"1000"}},
		Pagination: listview.ClientPaginated,
		PageSize:   listview.MaxPageSize,
	})
	groups := listview.New[GroupRow](api, listview.Config[GroupRow]{
		Endpoint:   "edu-groups/",
		Pagination: listview.ClientPaginated,
		PageSize:   listview.MaxPageSize,
	})

	var counters []Counter
	err := listview.LoadParallel(c.UserContext(),
		rooms.Refresh,
		groups.Refresh,
		func(ctx context.Context) error {
			var err error
			counters, err = LoadCounters(ctx, api, adminCounters)
			return err
		},
	)
	if done, rerr := crud.HandleAuthFailure(c, err); done {
		return rerr
	}

	msg := ""
	if err != nil {
		if ae, ok := err.(*apiclient.AppError); ok {
			msg = ae.Message
		} else {
			msg = err.Error()
		}
	}
	return helper.Render(c, "pages/reports", fiber.Map{
		"Title":     "nav.reports",
		"Counters":  counters,
		"Buildings": AggregateRooms(rooms.All()),
		"Courses":   AggregateGroups(groups.All()),
		"Error":     msg,
		"Health":    ctl.health(),
	})
}
