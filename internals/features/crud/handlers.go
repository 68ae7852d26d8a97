// file: internals/features/crud/handlers.go
package crud

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/apiclient"
	"otm_dashboard/internals/configs"
	"otm_dashboard/internals/constants"
	"otm_dashboard/internals/features/options"
	helper "otm_dashboard/internals/helpers"
	"otm_dashboard/internals/listview"
	"otm_dashboard/internals/middlewares"
	"otm_dashboard/internals/middlewares/auth"
	"otm_dashboard/internals/session"
	"otm_dashboard/internals/widgets"
)

/* =======================================================
   ROUTES
   ======================================================= */

// Mount registers the resource pages under route (the Path when route is empty).
func (r *Resource[T, D]) Mount(router fiber.Router, route string) {
	if route == "" {
		route = r.Path
	}
	g := router.Group(route)
	g.Get("/", r.Index)
	if r.ReadOnly {
		g.Get("/:id", r.Show)
		return
	}
	write := func(h fiber.Handler) []fiber.Handler {
		if len(r.WriteRoles) == 0 {
			return []fiber.Handler{h}
		}
		return []fiber.Handler{auth.OnlyRoles(constants.RoleErrorAdmin("changing "+r.Name), r.WriteRoles...), h}
	}
	g.Get("/new", write(r.New)...)
	g.Post("/", write(r.Create)...)
	g.Get("/:id", r.Show)
	g.Get("/:id/edit", write(r.Edit)...)
	g.Post("/:id", write(r.Update)...)
	g.Post("/:id/delete", write(r.Delete)...)
}

// CanWrite reports whether the active role sees the create/edit/delete controls.
func (r *Resource[T, D]) CanWrite(c *fiber.Ctx) bool {
	if r.ReadOnly {
		return false
	}
	if len(r.WriteRoles) == 0 {
		return true
	}
	return slices.Contains(r.WriteRoles, session.AuthFrom(c).ActiveRole())
}

/* =======================================================
   LIST / DETAIL
   ======================================================= */

// Index is the list page.
func (r *Resource[T, D]) Index(c *fiber.Ctx) error {
	ctrl := listview.New[T](middlewares.API(c), r.listConfig(c))
	err := ctrl.Apply(c.UserContext(), helper.ListQuery(c))
	if done, rerr := HandleAuthFailure(c, err); done {
		return rerr
	}
	if err != nil && !isAppError(err) {
		// aborted request: nothing was loaded, the loading partial is rendered
		log.Printf("[WARN] %s list: %v", r.Name, err)
	}
	return r.renderList(c, ctrl.View(), "")
}

func (r *Resource[T, D]) filterViews(c *fiber.Ctx) []FilterView {
	if len(r.Filters) == 0 {
		return nil
	}
	names := make([]string, 0, len(r.Filters))
	for _, f := range r.Filters {
		names = append(names, f.Source)
	}
	opts, err := options.LoadMany(c.UserContext(), middlewares.API(c), names...)
	if err != nil {
		log.Printf("[WARN] %s filters: %v", r.Name, err)
	}
	out := make([]FilterView, 0, len(r.Filters))
	for _, f := range r.Filters {
		out = append(out, FilterView{Filter: f, Value: c.QueryInt(f.Param), Options: opts[f.Source]})
	}
	return out
}

// keepQuery is the part of the list URL that survives paging: search, page size and filters.
func (r *Resource[T, D]) keepQuery(c *fiber.Ctx, view listview.View[T]) string {
	q := url.Values{}
	if view.Search != "" {
		q.Set("search", view.Search)
	}
	if n := c.QueryInt("page_size"); n > 0 {
		q.Set("page_size", strconv.Itoa(view.PageSize))
	}
	for _, f := range r.Filters {
		if id := c.QueryInt(f.Param); id > 0 {
			q.Set(f.Param, strconv.Itoa(id))
		}
	}
	return q.Encode()
}

func (r *Resource[T, D]) renderList(c *fiber.Ctx, view listview.View[T], replaceURL string) error {
	return helper.Render(c, "pages/list", fiber.Map{
		"Keep":       template.URL(r.keepQuery(c, view)),
		"Filters":    r.filterViews(c),
		"Title":      r.Title,
		"Resource":   r.Name,
		"Base":       r.base(c),
		"View":       view,
		"Table":      r.table(view.Items, view.Offset()),
		"Pages":      view.PageWindow(7),
		"ReadOnly":   !r.CanWrite(c),
		"HasDetail":  r.ID != nil,
		"ReplaceURL": replaceURL,
	})
}

func (r *Resource[T, D]) Show(c *fiber.Ctx) error {
	item, err := r.fetchOne(c)
	if done, rerr := HandleAuthFailure(c, err); done {
		return rerr
	}
	if err != nil {
		return err
	}
	return helper.Render(c, "pages/detail", fiber.Map{
		"Title":    r.Title,
		"Resource": r.Name,
		"Base":     r.base(c),
		"ID":       c.Params("id"),
		"Pairs":    r.pairs(item),
		"ReadOnly": !r.CanWrite(c),
	})
}

func (r *Resource[T, D]) fetchOne(c *fiber.Ctx) (T, error) {
	var item T
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return item, fiber.ErrNotFound
	}
	res := middlewares.API(c).Fetch(c.UserContext(), r.itemEndpoint(c, id), nil)
	if !res.Success {
		if res.Err.Status == fiber.StatusNotFound {
			return item, fiber.ErrNotFound
		}
		return item, res.Err
	}
	if err := res.Decode(&item); err != nil {
		return item, apiclient.NewShapeError("%s %d: %v", r.Name, id, err)
	}
	return item, nil
}

/* =======================================================
   FORMS
   ======================================================= */

// formState is what pages/form renders.
type formState struct {
	action string
	edit   bool
	errMsg string
	errs   map[string]string
	status int
}

func (r *Resource[T, D]) New(c *fiber.Ctx) error {
	return r.renderForm(c, r.NewDraft(), formState{action: r.base(c)})
}

func (r *Resource[T, D]) Create(c *fiber.Ctx) error {
	draft, errs, err := r.parse(c)
	if err != nil {
		return err
	}
	st := formState{action: r.base(c), errs: errs}
	if len(errs) > 0 {
		st.status = fiber.StatusUnprocessableEntity
		return r.renderForm(c, draft, st)
	}

	res := middlewares.API(c).Post(c.UserContext(), r.endpoint(c), r.Payload(draft))
	return r.afterSave(c, draft, st, res, "common.created")
}

func (r *Resource[T, D]) Edit(c *fiber.Ctx) error {
	item, err := r.fetchOne(c)
	if done, rerr := HandleAuthFailure(c, err); done {
		return rerr
	}
	if err != nil {
		return err
	}
	return r.renderForm(c, r.DraftOf(item), formState{
		action: r.base(c) + "/" + c.Params("id"),
		edit:   true,
	})
}

func (r *Resource[T, D]) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.ErrNotFound
	}
	draft, errs, err := r.parse(c)
	if err != nil {
		return err
	}
	st := formState{action: r.base(c) + "/" + strconv.Itoa(id), edit: true, errs: errs}
	if len(errs) > 0 {
		st.status = fiber.StatusUnprocessableEntity
		return r.renderForm(c, draft, st)
	}

	api := middlewares.API(c)
	var res apiclient.Result
	if r.UsePatch {
		res = api.Patch(c.UserContext(), r.itemEndpoint(c, id), r.Payload(draft))
	} else {
		res = api.Put(c.UserContext(), r.itemEndpoint(c, id), r.Payload(draft))
	}
	return r.afterSave(c, draft, st, res, "common.updated")
}

func (r *Resource[T, D]) parse(c *fiber.Ctx) (D, map[string]string, error) {
	picked := r.resolveSelects(c)
	draft := r.NewDraft()
	if err := c.BodyParser(draft); err != nil {
		return draft, nil, fiber.NewError(fiber.StatusBadRequest, "invalid form: "+err.Error())
	}
	errs := helper.ValidateStruct(draft, helper.Lang(c))
	for k, v := range picked {
		if errs == nil {
			errs = map[string]string{}
		}
		errs[k] = v
	}
	return draft, errs, nil
}

func (r *Resource[T, D]) afterSave(c *fiber.Ctx, draft D, st formState, res apiclient.Result, okKey string) error {
	if res.Success {
		log.Printf("[INFO] %s saved (%d)", r.Name, res.Status)
		return Done(c, helper.T(c, okKey), r.base(c))
	}
	if done, rerr := HandleAuthFailure(c, res.Err); done {
		return rerr
	}
	st.errMsg = res.Message()
	st.errs = r.mapFieldErrors(res.Err.FieldErrors())
	st.status = fiber.StatusUnprocessableEntity
	return r.renderForm(c, draft, st)
}

func (r *Resource[T, D]) mapFieldErrors(backend map[string]string) map[string]string {
	out := make(map[string]string, len(backend))
	for k, v := range backend {
		if ui, ok := r.FieldMap[k]; ok {
			k = ui
		}
		out[k] = v
	}
	return out
}

func (r *Resource[T, D]) renderForm(c *fiber.Ctx, draft D, st formState) error {
	fields := draft.Fields()
	var opts map[string][]widgets.Option
	if len(r.Sources) > 0 {
		loaded, err := options.LoadMany(c.UserContext(), middlewares.API(c), r.Sources...)
		if done, rerr := HandleAuthFailure(c, err); done {
			return rerr
		}
		if err != nil && st.errMsg == "" {
			st.errMsg = errorText(err)
		}
		opts = loaded
	}
	translateStatic(c, fields)
	fields = FillOptions(fields, opts)
	for i := range fields {
		if msg, ok := st.errs[fields[i].Name]; ok {
			fields[i].Error = msg
		}
	}
	if st.status == 0 {
		st.status = fiber.StatusOK
	}
	return helper.RenderStatus(c, st.status, "pages/form", fiber.Map{
		"Title":    r.Title,
		"Resource": r.Name,
		"Base":     r.base(c),
		"Action":   st.action,
		"Edit":     st.edit,
		"Fields":   fields,
		"Error":    st.errMsg,
	})
}

/* =======================================================
   DELETE
   ======================================================= */

// Delete removes one row and re-renders the list from a full reload at the same page,
// clamped when the row was the last one of the last page.
func (r *Resource[T, D]) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.ErrNotFound
	}
	api := middlewares.API(c)
	ctrl := listview.New[T](api, r.listConfig(c))
	ctrl.Prime(helper.ListQuery(c))

	res, err := ctrl.Mutate(c.UserContext(), func(ctx context.Context) apiclient.Result {
		return api.Delete(ctx, r.itemEndpoint(c, id))
	})
	if !res.Success {
		if done, rerr := HandleAuthFailure(c, res.Err); done {
			return rerr
		}
		session.SetFlash(session.From(c), res.Message())
		return c.Redirect(r.base(c) + "?" + string(c.Request().URI().QueryString()))
	}
	if done, rerr := HandleAuthFailure(c, err); done {
		return rerr
	}
	log.Printf("[INFO] %s %d deleted", r.Name, id)

	view := ctrl.View()
	next := r.base(c) + "?page=" + strconv.Itoa(view.Page)
	if keep := r.keepQuery(c, view); keep != "" {
		next += "&" + keep
	}
	return r.renderList(c, view, next)
}

/* =======================================================
   SHARED
   ======================================================= */

// Done renders the confirmation interstitial that forwards to next after the redirect delay.
func Done(c *fiber.Ctx, message, next string) error {
	return helper.Render(c, "pages/done", fiber.Map{
		"Message": message,
		"Next":    next,
		"Delay":   fmt.Sprintf("%.1f", configs.RedirectDelay.Seconds()),
		"DelayMS": configs.RedirectDelay.Milliseconds(),
		"Title":   "common.saved",
	})
}

// HandleAuthFailure logs the browser out when the backend rejected its credential.
// It reports whether the response has been handled.
func HandleAuthFailure(c *fiber.Ctx, err error) (bool, error) {
	var appErr *apiclient.AppError
	if err == nil || !errors.As(err, &appErr) || appErr == nil || appErr.Status != fiber.StatusUnauthorized {
		return false, nil
	}
	store := session.From(c)
	_ = session.NewAuth(store).Logout()
	session.SetFlash(store, "auth.expired")
	log.Printf("[AUTH] backend rejected credential on %s, logging out", c.Path())
	return true, c.Redirect("/login?next=" + url.QueryEscape(c.OriginalURL()))
}

// FillOptions builds the searchable select of every select field, from the loaded option
// lists or, without a source, from the field's static choices.
func FillOptions(fields []Field, opts map[string][]widgets.Option) []Field {
	for i := range fields {
		f := &fields[i]
		if f.Type != "select" {
			continue
		}
		choices := f.Options
		if f.Source != "" {
			choices = opts[f.Source]
		}
		f.Select = widgets.NewSearchSelect(f.Label, f.Name, f.Source, choices, f.SelectedID())
		f.Select.Required = f.Required
	}
	return fields
}

// searchSuffix names the text box posted next to a select's hidden id.
const searchSuffix = "_search"

// resolveSelects reconciles what was typed into each searchable select with the posted id.
// Typed text that names an option (or its id) wins; text matching nothing clears the id and
// reports a field error. An empty box keeps the posted id as is.
func (r *Resource[T, D]) resolveSelects(c *fiber.Ctx) map[string]string {
	var typed []Field
	for _, f := range r.NewDraft().Fields() {
		if f.Type == "select" && strings.TrimSpace(c.FormValue(f.Name+searchSuffix)) != "" {
			typed = append(typed, f)
		}
	}
	if len(typed) == 0 {
		return nil
	}
	var opts map[string][]widgets.Option
	if len(r.Sources) > 0 {
		loaded, err := options.LoadMany(c.UserContext(), middlewares.API(c), r.Sources...)
		if err != nil {
			log.Printf("[WARN] %s options: %v", r.Name, err)
		}
		opts = loaded
	}
	translateStatic(c, typed)
	typed = FillOptions(typed, opts)

	errs := map[string]string{}
	for _, f := range typed {
		if !ResolvePick(c, f.Select) {
			errs[f.Name] = helper.T(c, "form.unknown_option")
		}
	}
	return errs
}

// ResolvePick reconciles the text typed into a searchable select with its posted id: text
// naming an option (or its id) sets the id, text naming nothing clears it and reports false.
// An empty box, or text equal to the selected option's name, leaves the id alone.
func ResolvePick(c *fiber.Ctx, sel widgets.SearchSelect) bool {
	text := strings.TrimSpace(c.FormValue(sel.Name + searchSuffix))
	if text == "" {
		return true
	}
	sel.Value = Atoi(c.FormValue(sel.Name))
	if cur, ok := sel.Selected(); ok && strings.EqualFold(cur.Name, text) {
		return true
	}
	args := c.Request().PostArgs()
	if o, ok := sel.Pick(text); ok {
		args.Set(sel.Name, strconv.Itoa(o.ID))
		return true
	}
	args.Del(sel.Name)
	return false
}

// translateStatic turns i18n keys of static choices (weekdays) into display names.
func translateStatic(c *fiber.Ctx, fields []Field) {
	for i := range fields {
		if fields[i].Source != "" || len(fields[i].Options) == 0 {
			continue
		}
		out := make([]widgets.Option, 0, len(fields[i].Options))
		for _, o := range fields[i].Options {
			out = append(out, widgets.Option{ID: o.ID, Name: helper.T(c, o.Name)})
		}
		fields[i].Options = out
	}
}

func isAppError(err error) bool {
	var appErr *apiclient.AppError
	return errors.As(err, &appErr)
}

func errorText(err error) string {
	var appErr *apiclient.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
