package controller

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"otm_dashboard/internals/apiclient"
)

// countsAPI answers every endpoint with a fixed count, or fails the ones listed in fail.
type countsAPI struct {
	counts map[string]string
	fail   map[string]int
}

func (f countsAPI) Fetch(_ context.Context, endpoint string, params url.Values) apiclient.Result {
	if status, ok := f.fail[endpoint]; ok {
		return apiclient.Failure(&apiclient.AppError{Kind: apiclient.KindBackend, Status: status, Message: "nope"})
	}
	if params.Get("page_size") != "1" {
		return apiclient.Failure(&apiclient.AppError{Kind: apiclient.KindBackend, Status: 400, Message: "expected page_size=1"})
	}
	res, _ := apiclient.Normalize(200, []byte(`{"count":`+f.counts[endpoint]+`,"results":[{}]}`))
	return res
}

func TestLoadCounters(t *testing.T) {
	api := countsAPI{
		counts: map[string]string{"schedules/": "14", "ratings/": "230", "curriculums/": "3"},
		fail:   map[string]int{"ratings/": 500},
	}
	out, err := LoadCounters(context.Background(), api, teacherCounters)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, 14, out[0].Count)
	assert.True(t, out[1].Failed)
	assert.Equal(t, 3, out[2].Count)

	// the shared tile list is untouched
	assert.Zero(t, teacherCounters[0].Count)
}

func TestLoadCountersReportsRejectedCredential(t *testing.T) {
	api := countsAPI{counts: map[string]string{}, fail: map[string]int{"staffs/": 401}}
	for _, c := range adminCounters {
		if c.Endpoint != "staffs/" {
			api.counts[c.Endpoint] = "1"
		}
	}
	out, err := LoadCounters(context.Background(), api, adminCounters)
	require.Error(t, err)
	var appErr *apiclient.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Status)
	assert.Len(t, out, len(adminCounters))
}

func TestAggregateRooms(t *testing.T) {
	got := AggregateRooms([]RoomRow{
		{BuildingName: "Main", Capacity: 30},
		{BuildingName: "Lab", Capacity: 16},
		{BuildingName: "Main", Capacity: 25},
	})
	assert.Equal(t, []BuildingLoad{
		{Building: "Lab", Rooms: 1, Seats: 16},
		{Building: "Main", Rooms: 2, Seats: 55},
	}, got)
	assert.Empty(t, AggregateRooms(nil))
}

func TestAggregateGroups(t *testing.T) {
	got := AggregateGroups([]GroupRow{{Course: 2}, {Course: 1}, {Course: 2}})
	assert.Equal(t, []CourseLoad{{Course: 1, Groups: 1}, {Course: 2, Groups: 2}}, got)
}

func TestCounterPathsAreDashboardPages(t *testing.T) {
	for _, c := range append(append([]Counter{}, adminCounters...), teacherCounters...) {
		assert.True(t, strings.HasPrefix(c.Path, "/"), c.Path)
		assert.True(t, strings.HasSuffix(c.Endpoint, "/"), c.Endpoint)
	}
}
