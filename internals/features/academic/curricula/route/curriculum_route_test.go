package route

import (
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"otm_dashboard/internals/constants"
	"otm_dashboard/internals/stubapi"
	"otm_dashboard/internals/stubapi/stubtest"
)

const subjectsCollection = "curriculums/1/subjects"

type fixture struct {
	backend     *stubtest.Backend
	distributes *atomic.Int32
	app         *fiber.App
}

func setup(t *testing.T, role string) fixture {
	t.Helper()
	var distributes atomic.Int32
	b := stubtest.NewBackend(t, func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodPost && strings.HasSuffix(c.Path(), "/distribute/") {
			distributes.Add(1)
		}
		return c.Next()
	})
	b.Seed(t, "curriculums", stubapi.Doc{"name": "Dasturiy injiniring", "speciality": "IT", "year": 2024, "semester_count": 4})
	b.Seed(t, "subjects", stubapi.Doc{"name": "Matematika"}, stubapi.Doc{"name": "Fizika"})
	app := stubtest.Dashboard(t, b.URL, role, stubtest.Token(t, "u", role), func(app *fiber.App) { CurriculumRoutes(app) })
	return fixture{backend: b, distributes: &distributes, app: app}
}

func TestSubjectsPageOffersSearchableAttach(t *testing.T) {
	f := setup(t, constants.RoleOtmAdmin)
	f.backend.Seed(t, subjectsCollection, stubapi.Doc{"subject": 1, "semester": 1, "hours": 60, "curriculum": 1})

	resp, html := stubtest.Do(t, f.app, http.MethodGet, "/curricula/1/subjects", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, html)
	assert.Contains(t, html, `list="dl-subject_id"`)
	assert.Contains(t, html, `<option value="Fizika" data-id="2">`)
	assert.Contains(t, html, `action="/curricula/1/subjects/distribute" class="form" data-once`)
	assert.Contains(t, html, `action="/curricula/1/subjects" class="form inline-form" data-once`)
}

func TestAttachByTypedName(t *testing.T) {
	f := setup(t, constants.RoleOtmAdmin)

	resp, html := stubtest.Do(t, f.app, http.MethodPost, "/curricula/1/subjects", url.Values{
		"subject_id_search": {"fizika"}, "subject_id": {""}, "semester": {"2"}, "hours": {"60"}, "credits": {"4"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, html)
	assert.Contains(t, html, `data-redirect="/curricula/1/subjects"`)

	docs := f.backend.List(t, subjectsCollection)
	require.Len(t, docs, 1)
	assert.EqualValues(t, 2, docs[0]["subject"])
	assert.EqualValues(t, 2, docs[0]["semester"])
}

func TestAttachUnknownNameIsRejected(t *testing.T) {
	f := setup(t, constants.RoleOtmAdmin)

	// the hidden id is stale: the text no longer names an option
	resp, html := stubtest.Do(t, f.app, http.MethodPost, "/curricula/1/subjects?lang=en", url.Values{
		"subject_id_search": {"Kimyo"}, "subject_id": {"1"}, "semester": {"1"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, html, "Not one of the choices")
	assert.Empty(t, f.backend.List(t, subjectsCollection))
}

func TestDistributeOutOfRangeNeverPosts(t *testing.T) {
	f := setup(t, constants.RoleOtmAdmin)
	f.backend.Seed(t, subjectsCollection, stubapi.Doc{"subject": 1, "semester": 1, "hours": 60, "curriculum": 1})

	resp, html := stubtest.Do(t, f.app, http.MethodPost, "/curricula/1/subjects/distribute?lang=en", url.Values{
		"subject": {"1"}, "semester": {"5"}, "hours": {"60"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, html, "Semester exceeds the curriculum&#39;s semester count")
	assert.Zero(t, f.distributes.Load())
	assert.EqualValues(t, 1, f.backend.List(t, subjectsCollection)[0]["semester"])
}

func TestDistributeMovesSubjects(t *testing.T) {
	f := setup(t, constants.RoleOtmAdmin)
	f.backend.Seed(t, subjectsCollection,
		stubapi.Doc{"subject": 1, "semester": 1, "hours": 60, "curriculum": 1},
		stubapi.Doc{"subject": 2, "semester": 1, "hours": 30, "curriculum": 1},
	)

	resp, html := stubtest.Do(t, f.app, http.MethodPost, "/curricula/1/subjects/distribute", url.Values{
		"subject": {"1", "2"}, "semester": {"3", "4"}, "hours": {"72", "36"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, html)
	assert.EqualValues(t, 1, f.distributes.Load())

	docs := f.backend.List(t, subjectsCollection)
	require.Len(t, docs, 2)
	assert.EqualValues(t, 3, docs[0]["semester"])
	assert.EqualValues(t, 36, docs[1]["hours"])
}

func TestTeacherSeesSubjectsReadOnly(t *testing.T) {
	f := setup(t, constants.RoleTeacher)
	f.backend.Seed(t, subjectsCollection, stubapi.Doc{"subject": 1, "semester": 1, "hours": 60, "curriculum": 1})

	resp, html := stubtest.Do(t, f.app, http.MethodGet, "/curricula/1/subjects", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, html)
	assert.Contains(t, html, "Matematika")
	assert.NotContains(t, html, `name="semester"`)
	assert.NotContains(t, html, `list="dl-subject_id"`)

	resp, _ = stubtest.Do(t, f.app, http.MethodPost, "/curricula/1/subjects", url.Values{"subject_id": {"2"}, "semester": {"1"}})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp, _ = stubtest.Do(t, f.app, http.MethodPost, "/curricula/1/subjects/distribute", url.Values{
		"subject": {"1"}, "semester": {"2"}, "hours": {"60"},
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Zero(t, f.distributes.Load())
	assert.Len(t, f.backend.List(t, subjectsCollection), 1)
}

func TestTeacherCannotOpenCurriculumForms(t *testing.T) {
	f := setup(t, constants.RoleTeacher)

	resp, _ := stubtest.Do(t, f.app, http.MethodGet, "/curricula", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = stubtest.Do(t, f.app, http.MethodGet, "/curricula/new", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp, _ = stubtest.Do(t, f.app, http.MethodGet, "/curricula/1/edit", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
