// file: internals/stubapi/server.go
package stubapi

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/helpers/dbtime"
	"otm_dashboard/internals/middlewares"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 1000
)

/* =======================================================
   SERVER
   ======================================================= */

// Server answers the collection contract the dashboard consumes, DRF style.
type Server struct {
	Store    Store
	Users    UserStore
	Secret   string
	TokenTTL time.Duration

	now func() time.Time
}

func New(store Store, users UserStore, secret string) *Server {
	return &Server{Store: store, Users: users, Secret: secret, TokenTTL: 12 * time.Hour, now: time.Now}
}

// App builds a standalone fiber app serving the API at its root; extra runs before the routes.
func (s *Server) App(extra ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler,
	})
	app.Use(middlewares.RecoveryMiddleware())
	for _, h := range extra {
		app.Use(h)
	}
	s.Register(app)
	return app
}

func (s *Server) Register(r fiber.Router) {
	r.Get("/", s.Root)
	r.Post("/auth/login/", s.Login)

	r.Use(s.RequireToken)
	r.Put("/institutions/:id<int>/class-hours/", s.ReplaceClassHours)
	r.Post("/curriculums/:id<int>/subjects/distribute/", s.Distribute)

	r.Get("/*", s.Read)
	r.Post("/*", s.Create)
	r.Put("/*", s.Write(false))
	r.Patch("/*", s.Write(true))
	r.Delete("/*", s.Delete)
}

// ErrorHandler answers with {"detail": ...} like DRF does.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "A server error occurred."
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	} else {
		log.Printf("[ERROR] stubapi %s %s: %v", c.Method(), c.OriginalURL(), err)
	}
	return c.Status(code).JSON(fiber.Map{"detail": msg})
}

func detail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"detail": msg})
}

func notFound(c *fiber.Ctx) error { return detail(c, fiber.StatusNotFound, "Not found.") }

/* =======================================================
   AUTH
   ======================================================= */

type loginBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

const localsClaims = "stub_claims"

// POST /auth/login/
func (s *Server) Login(c *fiber.Ctx) error {
	var in loginBody
	if err := sonic.Unmarshal(c.Body(), &in); err != nil {
		return detail(c, fiber.StatusBadRequest, "JSON parse error - "+err.Error())
	}
	errs := map[string][]string{}
	if strings.TrimSpace(in.Username) == "" {
		errs["username"] = []string{msgRequired}
	}
	if in.Password == "" {
		errs["password"] = []string{msgRequired}
	}
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	u, err := s.Users.FindUser(c.UserContext(), strings.TrimSpace(in.Username))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if u == nil || !CheckPassword(u.Password, in.Password) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"non_field_errors": []string{"Unable to log in with provided credentials."},
		})
	}
	role := in.Role
	if role == "" {
		role = strings.TrimSpace(strings.Split(u.Roles, ",")[0])
	}
	if !u.HasRole(role) {
		return detail(c, fiber.StatusForbidden, fmt.Sprintf("User has no role %q.", role))
	}

	tok, err := IssueToken(s.Secret, u.UserName, role, s.TokenTTL, s.now())
	if err != nil {
		return err
	}
	log.Printf("[INFO] stubapi login %s as %s", u.UserName, role)
	return c.JSON(fiber.Map{"token": tok, "role": role, "username": u.UserName})
}

// RequireToken accepts the credential raw or with a Bearer/Token scheme.
func (s *Server) RequireToken(c *fiber.Ctx) error {
	raw := RawToken(c.Get(fiber.HeaderAuthorization))
	if raw == "" {
		return detail(c, fiber.StatusUnauthorized, "Authentication credentials were not provided.")
	}
	claims, err := ParseToken(s.Secret, raw)
	if err != nil {
		return detail(c, fiber.StatusUnauthorized, "Invalid token.")
	}
	c.Locals(localsClaims, claims)
	return c.Next()
}

// teachers may only write these kinds
var teacherWritable = map[string]bool{
	"ratings":           true,
	"subjects/*/topics": true,
}

func (s *Server) canWrite(c *fiber.Ctx, kind string) bool {
	claims, _ := c.Locals(localsClaims).(*Claims)
	if claims == nil {
		return false
	}
	return claims.Role != "teacher" || teacherWritable[kind]
}

func forbidden(c *fiber.Ctx) error {
	return detail(c, fiber.StatusForbidden, "You do not have permission to perform this action.")
}

/* =======================================================
   ROUTING HELPERS
   ======================================================= */

type target struct {
	Collection string
	Kind       string
	ID         int
}

// resolve splits "subjects/3/topics/7" into collection "subjects/3/topics" and id 7,
// and checks that the parent of a nested collection exists.
func (s *Server) resolve(ctx context.Context, path string) (target, bool, error) {
	path = strings.Trim(path, "/")
	if path == "" {
		return target{}, false, nil
	}
	segs := strings.Split(path, "/")
	t := target{Collection: path}
	if len(segs)%2 == 0 {
		id, err := strconv.Atoi(segs[len(segs)-1])
		if err != nil || id <= 0 {
			return target{}, false, nil
		}
		t.ID = id
		t.Collection = strings.Join(segs[:len(segs)-1], "/")
	}
	kind, ok := kindOf(t.Collection)
	if !ok {
		return target{}, false, nil
	}
	t.Kind = kind

	if pid := parentID(t.Collection); pid > 0 {
		parts := strings.Split(t.Collection, "/")
		parent := strings.Join(parts[:len(parts)-2], "/")
		if _, known := kindOf(parent); known {
			if _, err := s.Store.Get(ctx, parent, pid); err != nil {
				if errors.Is(err, ErrNotFound) {
					return target{}, false, nil
				}
				return target{}, false, err
			}
		}
	}
	return t, true, nil
}

func parseBody(c *fiber.Ctx) (Doc, error) {
	var body Doc
	if len(c.Body()) > 0 {
		if err := sonic.Unmarshal(c.Body(), &body); err != nil {
			return nil, err
		}
	}
	if body == nil {
		body = Doc{}
	}
	delete(body, "id")
	for k := range body {
		if strings.HasSuffix(k, "_name") {
			if _, isRel := relations[strings.TrimSuffix(k, "_name")]; isRel {
				delete(body, k)
			}
		}
	}
	return body, nil
}

/* =======================================================
   NAMES
   ======================================================= */

// names resolves foreign keys once per request.
type names struct {
	ctx    context.Context
	store  Store
	byColl map[string]map[int]string
}

func (s *Server) names(ctx context.Context) *names {
	return &names{ctx: ctx, store: s.Store, byColl: map[string]map[int]string{}}
}

func (n *names) lookup(rel relation, id int) (string, bool) {
	m, ok := n.byColl[rel.Collection]
	if !ok {
		m = map[int]string{}
		docs, err := n.store.List(n.ctx, rel.Collection)
		if err != nil {
			log.Printf("[WARN] stubapi names %s: %v", rel.Collection, err)
		}
		for _, d := range docs {
			name, _ := d[rel.NameKey].(string)
			m[d.ID()] = name
		}
		n.byColl[rel.Collection] = m
	}
	name, ok := m[id]
	return name, ok
}

func (n *names) enrich(d Doc) {
	for field, rel := range relations {
		id, ok := intOf(d[field])
		if !ok || id == 0 {
			continue
		}
		if name, ok := n.lookup(rel, id); ok {
			d[field+"_name"] = name
		}
	}
}

// dangling lists foreign keys in doc that point nowhere.
func (n *names) dangling(d Doc) map[string][]string {
	errs := map[string][]string{}
	for field, rel := range relations {
		v, present := d[field]
		if !present || blank(v) {
			continue
		}
		id, ok := intOf(v)
		if !ok {
			errs[field] = []string{"Incorrect type. Expected pk value."}
			continue
		}
		if _, ok := n.lookup(rel, id); !ok {
			errs[field] = []string{fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id)}
		}
	}
	return errs
}

/* =======================================================
   HANDLERS
   ======================================================= */

// GET / lists the collection kinds; the dashboard health probe hits it.
func (s *Server) Root(c *fiber.Ctx) error {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Strings(out)
	return c.JSON(fiber.Map{"collections": out})
}

var filterable = map[string]bool{"weekday": true, "course": true, "semester": true}

func (s *Server) Read(c *fiber.Ctx) error {
	ctx := c.UserContext()
	t, ok, err := s.resolve(ctx, c.Params("*"))
	if err != nil {
		return err
	}
	if !ok {
		return notFound(c)
	}
	nm := s.names(ctx)

	if t.ID > 0 {
		d, err := s.Store.Get(ctx, t.Collection, t.ID)
		if errors.Is(err, ErrNotFound) {
			return notFound(c)
		}
		if err != nil {
			return err
		}
		nm.enrich(d)
		return c.JSON(d)
	}

	docs, err := s.Store.List(ctx, t.Collection)
	if err != nil {
		return err
	}
	for _, d := range docs {
		nm.enrich(d)
	}
	docs = filterDocs(docs, c.Queries())
	return s.page(c, docs)
}

func filterDocs(docs []Doc, q map[string]string) []Doc {
	out := docs[:0:0]
	search := strings.ToLower(strings.TrimSpace(q["search"]))
	for _, d := range docs {
		if !matchesFilters(d, q) {
			continue
		}
		if search != "" && !matchesSearch(d, search) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func matchesFilters(d Doc, q map[string]string) bool {
	for k, v := range q {
		if _, isRel := relations[k]; !isRel && !filterable[k] {
			continue
		}
		if strings.TrimSpace(v) == "" {
			continue
		}
		want, err := strconv.Atoi(v)
		if err != nil {
			return false
		}
		got, ok := intOf(d[k])
		if !ok || got != want {
			return false
		}
	}
	return true
}

func matchesSearch(d Doc, needle string) bool {
	for _, v := range d {
		if s, ok := v.(string); ok && strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

// page wraps docs in {count, next, previous, results}. Without page/page_size everything is returned.
func (s *Server) page(c *fiber.Ctx, docs []Doc) error {
	size := c.QueryInt("page_size", 0)
	pageNo := c.QueryInt("page", 0)
	count := len(docs)

	if size <= 0 && pageNo <= 0 {
		return c.JSON(fiber.Map{"count": count, "next": nil, "previous": nil, "results": docs})
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	if pageNo <= 0 {
		pageNo = 1
	}
	pages := (count + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	if pageNo > pages {
		return detail(c, fiber.StatusNotFound, "Invalid page.")
	}

	start := (pageNo - 1) * size
	end := start + size
	if end > count {
		end = count
	}
	var next, prev any
	if pageNo < pages {
		next = pageURL(c, pageNo+1)
	}
	if pageNo > 1 {
		prev = pageURL(c, pageNo-1)
	}
	return c.JSON(fiber.Map{"count": count, "next": next, "previous": prev, "results": docs[start:end]})
}

func pageURL(c *fiber.Ctx, page int) string {
	q := url.Values{}
	for k, v := range c.Queries() {
		q.Set(k, v)
	}
	q.Set("page", strconv.Itoa(page))
	return c.BaseURL() + c.Path() + "?" + q.Encode()
}

func (s *Server) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()
	t, ok, err := s.resolve(ctx, c.Params("*"))
	if err != nil {
		return err
	}
	if !ok {
		return notFound(c)
	}
	if t.ID > 0 {
		return detail(c, fiber.StatusMethodNotAllowed, `Method "POST" not allowed.`)
	}
	if !s.canWrite(c, t.Kind) {
		return forbidden(c)
	}
	body, err := parseBody(c)
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "JSON parse error - "+err.Error())
	}
	if p := kinds[t.Kind].Parent; p != "" {
		body[p] = parentID(t.Collection)
	}

	nm := s.names(ctx)
	if errs := s.check(nm, t.Kind, body, false); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}
	d, err := s.Store.Create(ctx, t.Collection, body)
	if err != nil {
		return err
	}
	nm.enrich(d)
	return c.Status(fiber.StatusCreated).JSON(d)
}

func (s *Server) check(nm *names, kind string, body Doc, partial bool) map[string][]string {
	errs := validate(kind, body, partial)
	for k, v := range nm.dangling(body) {
		if errs == nil {
			errs = map[string][]string{}
		}
		if _, already := errs[k]; !already {
			errs[k] = v
		}
	}
	return errs
}

// Write handles PUT (full replace) and PATCH (merge).
func (s *Server) Write(partial bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		t, ok, err := s.resolve(ctx, c.Params("*"))
		if err != nil {
			return err
		}
		if !ok || t.ID == 0 {
			return notFound(c)
		}
		if !s.canWrite(c, t.Kind) {
			return forbidden(c)
		}
		body, err := parseBody(c)
		if err != nil {
			return detail(c, fiber.StatusBadRequest, "JSON parse error - "+err.Error())
		}
		if p := kinds[t.Kind].Parent; p != "" {
			body[p] = parentID(t.Collection)
		}

		nm := s.names(ctx)
		if errs := s.check(nm, t.Kind, body, partial); errs != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errs)
		}
		d, err := s.Store.Update(ctx, t.Collection, t.ID, body, partial)
		if errors.Is(err, ErrNotFound) {
			return notFound(c)
		}
		if err != nil {
			return err
		}
		nm.enrich(d)
		return c.JSON(d)
	}
}

func (s *Server) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()
	t, ok, err := s.resolve(ctx, c.Params("*"))
	if err != nil {
		return err
	}
	if !ok || t.ID == 0 {
		return notFound(c)
	}
	if !s.canWrite(c, t.Kind) {
		return forbidden(c)
	}
	if err := s.Store.Delete(ctx, t.Collection, t.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c)
		}
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

/* =======================================================
   CLASS HOURS
   ======================================================= */

type classHourIn struct {
	Para      int    `json:"para"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// PUT /institutions/:id/class-hours/ replaces the whole timetable.
func (s *Server) ReplaceClassHours(c *fiber.Ctx) error {
	if !s.canWrite(c, "institutions/*/class-hours") {
		return forbidden(c)
	}
	var in []classHourIn
	if err := sonic.Unmarshal(c.Body(), &in); err != nil {
		return detail(c, fiber.StatusBadRequest, "Expected a list of items.")
	}
	sort.SliceStable(in, func(i, j int) bool { return in[i].Para < in[j].Para })

	docs := make([]Doc, 0, len(in))
	for i, row := range in {
		start, end := strings.TrimSpace(row.StartTime), strings.TrimSpace(row.EndTime)
		if start == "" || end == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"non_field_errors": []string{fmt.Sprintf("Pair %d: start and end time are required.", i+1)},
			})
		}
		begin, err1 := dbtime.Parse(start)
		finish, err2 := dbtime.Parse(end)
		if err1 != nil || err2 != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"non_field_errors": []string{fmt.Sprintf("Pair %d: time has wrong format. Use hh:mm.", i+1)},
			})
		}
		docs = append(docs, Doc{"pair_number": row.Para, "begin_time": begin.String(), "end_time": finish.String()})
	}

	collection := "institutions/" + c.Params("id") + "/class-hours"
	out, err := s.Store.ReplaceAll(c.UserContext(), collection, docs)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

/* =======================================================
   CURRICULUM DISTRIBUTION
   ======================================================= */

type distributeIn struct {
	Items []struct {
		Subject  int `json:"subject"`
		Semester int `json:"semester"`
		Hours    int `json:"hours"`
	} `json:"items"`
}

// POST /curriculums/:id/subjects/distribute/ assigns subjects to semesters in one go.
func (s *Server) Distribute(c *fiber.Ctx) error {
	ctx := c.UserContext()
	if !s.canWrite(c, "curriculums/*/subjects") {
		return forbidden(c)
	}
	id, _ := c.ParamsInt("id")
	cur, err := s.Store.Get(ctx, "curriculums", id)
	if errors.Is(err, ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return err
	}

	var in distributeIn
	if err := sonic.Unmarshal(c.Body(), &in); err != nil {
		return detail(c, fiber.StatusBadRequest, "JSON parse error - "+err.Error())
	}
	if len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"items": []string{"This list may not be empty."}})
	}
	semesters, _ := intOf(cur["semester_count"])
	for _, it := range in.Items {
		if it.Semester < 1 || it.Semester > semesters {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"items": []string{fmt.Sprintf("Semester %d is out of range (1-%d).", it.Semester, semesters)},
			})
		}
	}

	collection := "curriculums/" + strconv.Itoa(id) + "/subjects"
	existing, err := s.Store.List(ctx, collection)
	if err != nil {
		return err
	}
	bySubject := make(map[int]int, len(existing))
	for _, d := range existing {
		if sid, ok := intOf(d["subject"]); ok {
			bySubject[sid] = d.ID()
		}
	}
	for _, it := range in.Items {
		patch := Doc{"subject": it.Subject, "semester": it.Semester, "hours": it.Hours, "curriculum": id}
		if docID, ok := bySubject[it.Subject]; ok {
			_, err = s.Store.Update(ctx, collection, docID, patch, true)
		} else {
			_, err = s.Store.Create(ctx, collection, patch)
		}
		if err != nil {
			return err
		}
	}
	return c.JSON(fiber.Map{"detail": fmt.Sprintf("Distributed %d subjects.", len(in.Items))})
}
