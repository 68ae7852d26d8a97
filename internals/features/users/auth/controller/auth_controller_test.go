package controller

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"otm_dashboard/internals/apiclient"
	"otm_dashboard/internals/constants"
	"otm_dashboard/internals/session"
	"otm_dashboard/internals/stubapi/stubtest"
)

const loginEndpoint = "auth/login/"

// whoami reports the session state as "role|theme|flash".
func whoami(c *fiber.Ctx) error {
	store := session.From(c)
	return c.SendString(session.NewAuth(store).ActiveRole() + "|" + session.NewTheme(store).Current() + "|" + session.PopFlash(store))
}

func authApp(t *testing.T, baseURL string) *stubtest.Browser {
	t.Helper()
	app := stubtest.Dashboard(t, baseURL, "", "", func(app *fiber.App) {
		ac := NewAuthController(apiclient.New(baseURL, apiclient.WithoutLogging()), loginEndpoint)
		app.Get("/login", ac.LoginPage)
		app.Post("/login", ac.Login)
		app.Post("/logout", ac.Logout)
		app.Post("/role/:role", ac.SwitchRole)
		app.Post("/theme/toggle", ac.ToggleTheme)
		app.Get("/whoami", whoami)
	})
	return stubtest.NewBrowser(t, app)
}

func login(role, password string) url.Values {
	return url.Values{"username": {"admin"}, "password": {password}, "role": {role}, "next": {"/buildings"}}
}

func TestLoginStoresCredentialAndRedirects(t *testing.T) {
	b := stubtest.NewBackend(t)
	b.User(t, "admin", "secret", constants.RoleOtmAdmin, constants.RoleTeacher)
	browser := authApp(t, b.URL)

	resp, _ := browser.Do(http.MethodPost, "/login", login(constants.RoleOtmAdmin, "secret"))
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/buildings", resp.Header.Get(fiber.HeaderLocation))

	_, state := browser.Do(http.MethodGet, "/whoami", nil)
	assert.Equal(t, "otm_admin|light|", state)

	// already logged in: the login page sends the browser on
	resp, _ = browser.Do(http.MethodGet, "/login?next=/rooms", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/rooms", resp.Header.Get(fiber.HeaderLocation))
}

func TestLoginWrongPassword(t *testing.T) {
	b := stubtest.NewBackend(t)
	b.User(t, "admin", "secret", constants.RoleOtmAdmin)
	browser := authApp(t, b.URL)

	resp, html := browser.Do(http.MethodPost, "/login", login(constants.RoleOtmAdmin, "wrong-one"))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, html, "Unable to log in with provided credentials.")
	assert.NotContains(t, html, "wrong-one")

	_, state := browser.Do(http.MethodGet, "/whoami", nil)
	assert.Equal(t, "|light|", state)
}

func TestLoginInvalidFormStaysLocal(t *testing.T) {
	var calls atomic.Int32
	b := stubtest.NewBackend(t, func(c *fiber.Ctx) error {
		calls.Add(1)
		return c.Next()
	})
	browser := authApp(t, b.URL)

	resp, _ := browser.Do(http.MethodPost, "/login", url.Values{"username": {"  "}, "password": {"x"}, "role": {"student"}})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Zero(t, calls.Load())
}

func TestLoginWithoutTokenInResponse(t *testing.T) {
	fake := fiber.New()
	fake.Post("/auth/login/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"username": "admin"})
	})
	srv := httptest.NewServer(adaptor.FiberApp(fake))
	t.Cleanup(srv.Close)
	browser := authApp(t, srv.URL)

	resp, html := browser.Do(http.MethodPost, "/login", login(constants.RoleOtmAdmin, "secret"))
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, html, "Server kirish kalitini qaytarmadi")

	_, state := browser.Do(http.MethodGet, "/whoami", nil)
	assert.Equal(t, "|light|", state)
}

func TestSwitchRoleNeedsCredential(t *testing.T) {
	b := stubtest.NewBackend(t)
	b.User(t, "admin", "secret", constants.RoleOtmAdmin, constants.RoleTeacher)
	browser := authApp(t, b.URL)

	resp, _ := browser.Do(http.MethodPost, "/login", login(constants.RoleOtmAdmin, "secret"))
	require.Equal(t, http.StatusFound, resp.StatusCode)

	resp, _ = browser.Do(http.MethodPost, "/role/teacher", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))
	_, state := browser.Do(http.MethodGet, "/whoami", nil)
	assert.Equal(t, "otm_admin|light|auth.role_unavailable", state)

	// with both credentials held the switch goes through
	_, _ = browser.Do(http.MethodPost, "/login", login(constants.RoleTeacher, "secret"))
	resp, _ = browser.Do(http.MethodPost, "/role/otm_admin", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	_, state = browser.Do(http.MethodGet, "/whoami", nil)
	assert.Equal(t, "otm_admin|light|", state)
}

func TestThemeTogglePersistsAcrossLogout(t *testing.T) {
	b := stubtest.NewBackend(t)
	b.User(t, "admin", "secret", constants.RoleOtmAdmin)
	browser := authApp(t, b.URL)

	resp, _ := browser.Do(http.MethodPost, "/theme/toggle", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	_, state := browser.Do(http.MethodGet, "/whoami", nil)
	assert.Equal(t, "|dark|", state)

	_, _ = browser.Do(http.MethodPost, "/login", login(constants.RoleOtmAdmin, "secret"))
	_, _ = browser.Do(http.MethodPost, "/logout", nil)
	_, state = browser.Do(http.MethodGet, "/whoami", nil)
	assert.Equal(t, "|dark|", state)

	_, _ = browser.Do(http.MethodPost, "/theme/toggle", nil)
	_, state = browser.Do(http.MethodGet, "/whoami", nil)
	assert.Equal(t, "|light|", state)
}

func TestThemeToggleAnswersJSONClients(t *testing.T) {
	b := stubtest.NewBackend(t)
	browser := authApp(t, b.URL)
	browser.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)

	resp, body := browser.Do(http.MethodPost, "/theme/toggle", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success":true,"message":"ok","data":{"theme":"dark"}}`, body)

	browser.Header.Del(fiber.HeaderAccept)
	_, state := browser.Do(http.MethodGet, "/whoami", nil)
	assert.Equal(t, "|dark|", state)
}
