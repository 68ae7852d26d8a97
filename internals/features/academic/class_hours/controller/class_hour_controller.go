package controller

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/apiclient"
	"otm_dashboard/internals/configs"
	"otm_dashboard/internals/features/crud"
	"otm_dashboard/internals/features/options"
	helper "otm_dashboard/internals/helpers"
	"otm_dashboard/internals/listview"
	"otm_dashboard/internals/middlewares"
	"otm_dashboard/internals/widgets"
)

// ClassHourController edits the institution's pair timetable as one sequence.
type ClassHourController struct {
	InstitutionID string
}

func NewClassHourController() *ClassHourController {
	return &ClassHourController{InstitutionID: configs.InstitutionID}
}

func (ctl *ClassHourController) endpoint() string {
	return options.ClassHoursEndpoint(ctl.InstitutionID)
}

func (ctl *ClassHourController) fetch(ctx context.Context, api listview.Fetcher) listview.View[widgets.ClassHour] {
	list := listview.New[widgets.ClassHour](api, listview.Config[widgets.ClassHour]{
		Endpoint:   ctl.endpoint(),
		Pagination: listview.ClientPaginated,
		Search:     listview.ClientSearch,
		PageSize:   listview.MaxPageSize,
	})
	if err := list.Refresh(ctx); err != nil {
		log.Printf("[WARN] class hours: %v", err)
	}
	return list.View()
}

/* ===== GET /class-hours ===== */

func (ctl *ClassHourController) Index(c *fiber.Ctx) error {
	view := ctl.fetch(c.UserContext(), middlewares.API(c))
	if view.Err != nil {
		if done, rerr := crud.HandleAuthFailure(c, view.Err); done {
			return rerr
		}
	}
	return ctl.render(c, fiber.StatusOK, view, widgets.NewClassHourForm(view.Items), c.QueryBool("edit"), nil, "")
}

func (ctl *ClassHourController) render(c *fiber.Ctx, status int, view listview.View[widgets.ClassHour], form *widgets.ClassHourForm, open bool, rowErrs widgets.RowErrors, errMsg string) error {
	return helper.RenderStatus(c, status, "pages/class_hours", fiber.Map{
		"Title":     "nav.class_hours",
		"View":      view,
		"Form":      form,
		"Open":      open,
		"RowErrors": rowErrs,
		"Error":     errMsg,
	})
}

/* ===== POST /class-hours ===== */

// Save handles both buttons of the editor: "append" adds an empty row, "save" submits.
func (ctl *ClassHourController) Save(c *fiber.Ctx) error {
	form := widgets.ParseClassHourForm(
		helper.FormValues(c, "label"),
		helper.FormValues(c, "start"),
		helper.FormValues(c, "end"),
	)
	api := middlewares.API(c)

	if c.FormValue("action") == "append" {
		form.Append()
		return ctl.render(c, fiber.StatusOK, ctl.fetch(c.UserContext(), api), form, true, nil, "")
	}

	err := form.Submit(func(p []widgets.ClassHourPayload) error {
		res := api.Put(c.UserContext(), ctl.endpoint(), p)
		if !res.Success {
			return res.Err
		}
		return nil
	})
	if err == nil {
		log.Printf("[INFO] class hours saved (%d pairs)", len(form.Rows))
		return crud.Done(c, helper.T(c, "common.saved"), "/class-hours")
	}

	if done, rerr := crud.HandleAuthFailure(c, err); done {
		return rerr
	}
	var (
		rowErrs widgets.RowErrors
		appErr  *apiclient.AppError
		msg     string
	)
	switch {
	case errors.As(err, &rowErrs):
		msg = helper.T(c, "classhours.missing_time")
	case errors.Is(err, widgets.ErrNoRows):
		msg = helper.T(c, "classhours.no_rows")
	case errors.As(err, &appErr):
		msg = appErr.Message
	default:
		return err
	}
	return ctl.render(c, fiber.StatusUnprocessableEntity, ctl.fetch(c.UserContext(), api), form, true, rowErrs, msg)
}
