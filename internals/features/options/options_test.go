package options

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"otm_dashboard/internals/apiclient"
	"otm_dashboard/internals/widgets"
)

// bodies maps an endpoint to the raw JSON the backend would send.
type bodies map[string]string

func (b bodies) Fetch(_ context.Context, endpoint string, _ url.Values) apiclient.Result {
	raw, ok := b[endpoint]
	if !ok {
		return apiclient.Failure(&apiclient.AppError{Kind: apiclient.KindBackend, Status: 404, Message: "Not found."})
	}
	res, err := apiclient.Normalize(200, []byte(raw))
	if err != nil {
		return apiclient.Failure(apiclient.NewShapeError("%v", err))
	}
	return res
}

func TestLoadSkipsRowsWithoutID(t *testing.T) {
	api := bodies{"buildings/": `{"count":3,"results":[{"id":1,"name":"Main"},{"name":"ghost"},{"id":2,"name":" Lab "}]}`}
	got, err := Load(context.Background(), api, "buildings")
	require.NoError(t, err)
	assert.Equal(t, []widgets.Option{{ID: 1, Name: "Main"}, {ID: 2, Name: "Lab"}}, got)
}

func TestLoadFallsBackToSecondNameField(t *testing.T) {
	api := bodies{"teachers/": `[{"id":5,"name":"Karimova"},{"id":6,"full_name":"Aliev A.","name":"x"}]`}
	got, err := Load(context.Background(), api, "teachers")
	require.NoError(t, err)
	assert.Equal(t, []widgets.Option{{ID: 5, Name: "Karimova"}, {ID: 6, Name: "Aliev A."}}, got)
}

func TestLoadUnknownSource(t *testing.T) {
	_, err := Load(context.Background(), bodies{}, "planets")
	assert.ErrorIs(t, err, ErrUnknownSource)
}

func TestLoadResultsNotAList(t *testing.T) {
	api := bodies{"subjects/": `{"count":1,"results":{"id":1}}`}
	_, err := Load(context.Background(), api, "subjects")
	var appErr *apiclient.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apiclient.KindShape, appErr.Kind)
}

func TestClassHoursNames(t *testing.T) {
	Register("test-hours", Source{
		Endpoint: fixed(ClassHoursEndpoint("7")),
		Name:     sources["class-hours"].Name,
	})
	api := bodies{"institutions/7/class-hours/": `[{"id":1,"pair_number":0,"begin_time":"08:30:00","end_time":"09:50:00"}]`}
	got, err := Load(context.Background(), api, "test-hours")
	require.NoError(t, err)
	assert.Equal(t, []widgets.Option{{ID: 1, Name: "1: 08:30-09:50"}}, got)
	assert.Contains(t, Names(), "test-hours")
}

func TestLoadManyFailsOnAnyError(t *testing.T) {
	api := bodies{"rooms/": `[]`}
	_, err := LoadMany(context.Background(), api, "rooms", "groups")
	assert.Error(t, err)

	api["edu-groups/"] = `{"count":1,"results":[{"id":3,"name":"IT-21"}]}`
	got, err := LoadMany(context.Background(), api, "rooms", "groups")
	require.NoError(t, err)
	assert.Empty(t, got["rooms"])
	assert.Equal(t, "IT-21", got["groups"][0].Name)
}
