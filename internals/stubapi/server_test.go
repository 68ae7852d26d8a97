package stubapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type fixture struct {
	srv     *Server
	app     *fiber.App
	store   *MemoryStore
	admin   string
	teacher string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := NewMemoryStore()
	users := NewMemoryUsers()
	srv := New(store, users, testSecret)

	now := time.Now()
	admin, err := IssueToken(testSecret, "admin", "otm_admin", time.Hour, now)
	require.NoError(t, err)
	teacher, err := IssueToken(testSecret, "teacher", "teacher", time.Hour, now)
	require.NoError(t, err)

	return &fixture{srv: srv, app: srv.App(), store: store, admin: admin, teacher: teacher}
}

func (f *fixture) seed(t *testing.T, collection string, docs ...Doc) {
	t.Helper()
	for _, d := range docs {
		_, err := f.store.Create(context.Background(), collection, d)
		require.NoError(t, err)
	}
}

func (f *fixture) call(t *testing.T, method, path, token string, body any) (int, any) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := sonic.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out any
	if len(raw) > 0 {
		require.NoError(t, sonic.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func obj(t *testing.T, v any) map[string]any {
	t.Helper()
	m, ok := v.(map[string]any)
	require.True(t, ok, "expected object, got %T", v)
	return m
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.NoError(t, f.srv.Users.SaveUser(context.Background(), &UserModel{UserName: "admin", Password: hash, Roles: "otm_admin"}))

	t.Run("ok", func(t *testing.T) {
		code, body := f.call(t, http.MethodPost, "/auth/login/", "", fiber.Map{"username": "Admin", "password": "s3cret", "role": "otm_admin"})
		require.Equal(t, http.StatusOK, code)
		tok, _ := obj(t, body)["token"].(string)
		claims, err := ParseToken(testSecret, tok)
		require.NoError(t, err)
		assert.Equal(t, "otm_admin", claims.Role)
		assert.Equal(t, "admin", claims.Subject)
	})

	t.Run("wrong password", func(t *testing.T) {
		code, body := f.call(t, http.MethodPost, "/auth/login/", "", fiber.Map{"username": "admin", "password": "nope"})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Contains(t, obj(t, body), "non_field_errors")
	})

	t.Run("missing fields", func(t *testing.T) {
		code, body := f.call(t, http.MethodPost, "/auth/login/", "", fiber.Map{})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Contains(t, obj(t, body), "username")
		assert.Contains(t, obj(t, body), "password")
	})

	t.Run("role not held", func(t *testing.T) {
		code, _ := f.call(t, http.MethodPost, "/auth/login/", "", fiber.Map{"username": "admin", "password": "s3cret", "role": "teacher"})
		assert.Equal(t, http.StatusForbidden, code)
	})
}

func TestRequireToken(t *testing.T) {
	f := newFixture(t)

	code, body := f.call(t, http.MethodGet, "/buildings/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Authentication credentials were not provided.", obj(t, body)["detail"])

	code, _ = f.call(t, http.MethodGet, "/buildings/", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = f.call(t, http.MethodGet, "/buildings/", f.admin, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = f.call(t, http.MethodGet, "/buildings/", "Bearer "+f.admin, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestRootIsPublic(t *testing.T) {
	f := newFixture(t)
	code, body := f.call(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, obj(t, body)["collections"], "buildings")
}

func TestListPagination(t *testing.T) {
	f := newFixture(t)
	for i := 1; i <= 25; i++ {
		f.seed(t, "buildings", Doc{"name": fmt.Sprintf("B%02d", i), "storeys": 1})
	}

	code, body := f.call(t, http.MethodGet, "/buildings/?page=2&page_size=10", f.admin, nil)
	require.Equal(t, http.StatusOK, code)
	m := obj(t, body)
	assert.EqualValues(t, 25, m["count"])
	results := m["results"].([]any)
	require.Len(t, results, 10)
	assert.Equal(t, "B11", obj(t, results[0])["name"])
	assert.Contains(t, m["next"], "page=3")
	assert.Contains(t, m["previous"], "page=1")

	code, body = f.call(t, http.MethodGet, "/buildings/?page=3&page_size=10", f.admin, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, obj(t, body)["results"], 5)
	assert.Nil(t, obj(t, body)["next"])

	code, body = f.call(t, http.MethodGet, "/buildings/?page=4&page_size=10", f.admin, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Invalid page.", obj(t, body)["detail"])

	code, body = f.call(t, http.MethodGet, "/buildings/", f.admin, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, obj(t, body)["results"], 25)
	assert.Nil(t, obj(t, body)["previous"])
}

func TestEmptyCollectionFirstPage(t *testing.T) {
	f := newFixture(t)
	code, body := f.call(t, http.MethodGet, "/rooms/?page=1&page_size=10", f.admin, nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 0, obj(t, body)["count"])
	assert.Empty(t, obj(t, body)["results"])
}

func TestSearchFilterAndNames(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "buildings", Doc{"name": "Main", "storeys": 3}, Doc{"name": "Laboratory", "storeys": 1})
	f.seed(t, "rooms",
		Doc{"name": "101", "building": 1},
		Doc{"name": "102", "building": 1},
		Doc{"name": "L1", "building": 2},
	)

	code, body := f.call(t, http.MethodGet, "/rooms/?building=1", f.admin, nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 2, obj(t, body)["count"])

	// search also sees the resolved building name
	code, body = f.call(t, http.MethodGet, "/rooms/?search=LABOR", f.admin, nil)
	require.Equal(t, http.StatusOK, code)
	results := obj(t, body)["results"].([]any)
	require.Len(t, results, 1)
	assert.Equal(t, "L1", obj(t, results[0])["name"])
	assert.Equal(t, "Laboratory", obj(t, results[0])["building_name"])

	code, body = f.call(t, http.MethodGet, "/rooms/1/", f.admin, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Main", obj(t, body)["building_name"])
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)

	code, body := f.call(t, http.MethodPost, "/buildings/", f.admin, fiber.Map{"address": "x"})
	require.Equal(t, http.StatusBadRequest, code)
	m := obj(t, body)
	assert.Equal(t, []any{msgRequired}, m["name"])
	assert.Equal(t, []any{msgRequired}, m["storeys"])

	code, body = f.call(t, http.MethodPost, "/rooms/", f.admin, fiber.Map{"name": "9", "building": 42})
	require.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, obj(t, body)["building"].([]any)[0], "does not exist")

	code, body = f.call(t, http.MethodPost, "/buildings/", f.admin, fiber.Map{"name": "New", "storeys": 2, "id": 77})
	require.Equal(t, http.StatusCreated, code)
	assert.EqualValues(t, 1, obj(t, body)["id"])

	code, _ = f.call(t, http.MethodPost, "/buildings/1/", f.admin, fiber.Map{"name": "x"})
	assert.Equal(t, http.StatusMethodNotAllowed, code)

	code, _ = f.call(t, http.MethodPost, "/nowhere/", f.admin, fiber.Map{"name": "x"})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRatingRange(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "students", Doc{"full_name": "A", "group": 1})
	f.seed(t, "subjects", Doc{"name": "Math"})

	code, body := f.call(t, http.MethodPost, "/ratings/", f.teacher, fiber.Map{"student": 1, "subject": 1, "ball": 120})
	require.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, obj(t, body), "ball")

	code, body = f.call(t, http.MethodPost, "/ratings/", f.teacher, fiber.Map{"student": 1, "subject": 1, "ball": 88.5})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Math", obj(t, body)["subject_name"])
}

func TestPatchMergesPutReplaces(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "buildings", Doc{"name": "Main", "address": "Street 1", "storeys": 3})

	code, body := f.call(t, http.MethodPatch, "/buildings/1/", f.admin, fiber.Map{"storeys": 5})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Street 1", obj(t, body)["address"])
	assert.EqualValues(t, 5, obj(t, body)["storeys"])

	code, body = f.call(t, http.MethodPut, "/buildings/1/", f.admin, fiber.Map{"name": "Main", "storeys": 4})
	require.Equal(t, http.StatusOK, code)
	assert.NotContains(t, obj(t, body), "address")

	code, body = f.call(t, http.MethodPut, "/buildings/1/", f.admin, fiber.Map{"name": "Main"})
	require.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, obj(t, body), "storeys")

	code, _ = f.call(t, http.MethodPatch, "/buildings/9/", f.admin, fiber.Map{"storeys": 5})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "staffs", Doc{"full_name": "A"})

	code, _ := f.call(t, http.MethodDelete, "/staffs/1/", f.admin, nil)
	assert.Equal(t, http.StatusNoContent, code)

	code, _ = f.call(t, http.MethodGet, "/staffs/1/", f.admin, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = f.call(t, http.MethodDelete, "/staffs/1/", f.admin, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestTeacherPermissions(t *testing.T) {
	f := newFixture(t)

	code, _ := f.call(t, http.MethodPost, "/buildings/", f.teacher, fiber.Map{"name": "x", "storeys": 1})
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = f.call(t, http.MethodGet, "/buildings/", f.teacher, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestNestedTopics(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "subjects", Doc{"name": "Math"})

	code, body := f.call(t, http.MethodPost, "/subjects/1/topics/", f.teacher, fiber.Map{"name": "Limits", "hours": 4})
	require.Equal(t, http.StatusCreated, code)
	assert.EqualValues(t, 1, obj(t, body)["subject"])
	assert.Equal(t, "Math", obj(t, body)["subject_name"])

	code, _ = f.call(t, http.MethodGet, "/subjects/2/topics/", f.admin, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, body = f.call(t, http.MethodGet, "/subjects/1/topics/", f.admin, nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, obj(t, body)["count"])
}

func TestReplaceClassHours(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "institutions/1/class-hours", Doc{"pair_number": 0, "begin_time": "08:00:00", "end_time": "09:20:00"})

	rows := []fiber.Map{
		{"para": 1, "start_time": "10:00", "end_time": "11:20"},
		{"para": 0, "start_time": "08:30", "end_time": "09:50"},
	}
	code, body := f.call(t, http.MethodPut, "/institutions/1/class-hours/", f.admin, rows)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body, 2)

	code, body = f.call(t, http.MethodGet, "/institutions/1/class-hours/", f.admin, nil)
	require.Equal(t, http.StatusOK, code)
	results := obj(t, body)["results"].([]any)
	require.Len(t, results, 2)
	first := obj(t, results[0])
	assert.EqualValues(t, 0, first["pair_number"])
	assert.Equal(t, "08:30:00", first["begin_time"])

	code, body = f.call(t, http.MethodPut, "/institutions/1/class-hours/", f.admin, []fiber.Map{
		{"para": 0, "start_time": "08:30", "end_time": ""},
	})
	require.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, obj(t, body), "non_field_errors")

	code, _ = f.call(t, http.MethodPut, "/institutions/1/class-hours/", f.teacher, rows)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestDistribute(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "curriculums", Doc{"name": "SE", "semester_count": 4})
	f.seed(t, "subjects", Doc{"name": "Math"}, Doc{"name": "Databases"})
	f.seed(t, "curriculums/1/subjects", Doc{"subject": 1, "semester": 1, "hours": 10, "curriculum": 1})

	code, body := f.call(t, http.MethodPost, "/curriculums/1/subjects/distribute/", f.admin, fiber.Map{
		"items": []fiber.Map{{"subject": 1, "semester": 5, "hours": 10}},
	})
	require.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, obj(t, body), "items")

	code, _ = f.call(t, http.MethodPost, "/curriculums/1/subjects/distribute/", f.admin, fiber.Map{
		"items": []fiber.Map{
			{"subject": 1, "semester": 2, "hours": 36},
			{"subject": 2, "semester": 3, "hours": 48},
		},
	})
	require.Equal(t, http.StatusOK, code)

	docs, err := f.store.List(context.Background(), "curriculums/1/subjects")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.EqualValues(t, 2, docs[0]["semester"])
	assert.EqualValues(t, 36, docs[0]["hours"])
	assert.EqualValues(t, 2, docs[1]["subject"])

	code, _ = f.call(t, http.MethodPost, "/curriculums/9/subjects/distribute/", f.admin, fiber.Map{"items": []fiber.Map{}})
	assert.Equal(t, http.StatusNotFound, code)
}
