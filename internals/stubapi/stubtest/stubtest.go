// Package stubtest runs the stub backend and a dashboard app side by side for handler tests.
package stubtest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/require"

	"otm_dashboard/internals/apiclient"
	"otm_dashboard/internals/middlewares"
	"otm_dashboard/internals/session"
	"otm_dashboard/internals/stubapi"
	"otm_dashboard/views"
)

// Secret signs the tokens the stub backend accepts.
const Secret = "stubtest"

// Backend is a running stub API.
type Backend struct {
	Store *stubapi.MemoryStore
	Users *stubapi.MemoryUsers
	URL   string
}

// NewBackend starts the stub API over real HTTP. extra handlers run before its routes.
func NewBackend(t testing.TB, extra ...fiber.Handler) *Backend {
	t.Helper()
	b := &Backend{Store: stubapi.NewMemoryStore(), Users: stubapi.NewMemoryUsers()}
	srv := httptest.NewServer(adaptor.FiberApp(stubapi.New(b.Store, b.Users, Secret).App(extra...)))
	t.Cleanup(srv.Close)
	b.URL = srv.URL
	return b
}

// Seed creates docs in collection, failing the test on error.
func (b *Backend) Seed(t testing.TB, collection string, docs ...stubapi.Doc) {
	t.Helper()
	for _, d := range docs {
		_, err := b.Store.Create(context.Background(), collection, d)
		require.NoError(t, err)
	}
}

// User registers a login with the given roles.
func (b *Backend) User(t testing.TB, name, password string, roles ...string) {
	t.Helper()
	hash, err := stubapi.HashPassword(password)
	require.NoError(t, err)
	require.NoError(t, b.Users.SaveUser(context.Background(), &stubapi.UserModel{
		UserName: name, Password: hash, Roles: strings.Join(roles, ","),
	}))
}

// List returns every doc of collection.
func (b *Backend) List(t testing.TB, collection string) []stubapi.Doc {
	t.Helper()
	docs, err := b.Store.List(context.Background(), collection)
	require.NoError(t, err)
	return docs
}

// Token is a credential the stub accepts for user acting as role.
func Token(t testing.TB, user, role string) string {
	t.Helper()
	tok, err := stubapi.IssueToken(Secret, user, role, time.Hour, time.Now())
	require.NoError(t, err)
	return tok
}

// Dashboard is a dashboard app talking to baseURL. A non-empty token logs every request in
// as role; mount registers the routes under test.
func Dashboard(t testing.TB, baseURL, role, token string, mount func(app *fiber.App)) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{Views: views.Engine(), ErrorHandler: middlewares.ErrorHandler})
	app.Use(session.Middleware(session.NewStore(nil, time.Hour, false)))
	if token != "" {
		app.Use(func(c *fiber.Ctx) error {
			if err := session.AuthFrom(c).Login(role, token); err != nil {
				return err
			}
			return c.Next()
		})
	}
	app.Use(middlewares.APIMiddleware(apiclient.New(baseURL, apiclient.WithoutLogging())))
	mount(app)
	return app
}

// Browser sends requests to an app and keeps its cookies between them. Header is added
// to every request.
type Browser struct {
	Header http.Header

	t   testing.TB
	app *fiber.App
	jar map[string]string
}

func NewBrowser(t testing.TB, app *fiber.App) *Browser {
	return &Browser{Header: http.Header{}, t: t, app: app, jar: map[string]string{}}
}

// Do sends a request, form-encoded when form is not nil, and returns the response with its body.
func (b *Browser) Do(method, target string, form url.Values) (*http.Response, string) {
	b.t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	for name, values := range b.Header {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	if form != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	}
	for name, value := range b.jar {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	resp, err := b.app.Test(req, -1)
	require.NoError(b.t, err)
	for _, ck := range resp.Cookies() {
		if ck.MaxAge < 0 || ck.Value == "" {
			delete(b.jar, ck.Name)
			continue
		}
		b.jar[ck.Name] = ck.Value
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(b.t, err)
	_ = resp.Body.Close()
	return resp, string(raw)
}

// Do is a one-off request without cookies.
func Do(t testing.TB, app *fiber.App, method, target string, form url.Values) (*http.Response, string) {
	t.Helper()
	return NewBrowser(t, app).Do(method, target, form)
}
