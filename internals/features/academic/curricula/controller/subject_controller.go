package controller

import (
	"context"
	"log"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/apiclient"
	"otm_dashboard/internals/constants"
	"otm_dashboard/internals/features/academic/curricula/dto"
	"otm_dashboard/internals/features/crud"
	"otm_dashboard/internals/features/options"
	helper "otm_dashboard/internals/helpers"
	"otm_dashboard/internals/listview"
	"otm_dashboard/internals/middlewares"
	"otm_dashboard/internals/session"
	"otm_dashboard/internals/widgets"
)

type SubjectController struct {
	Validate *validator.Validate
}

func NewSubjectController() *SubjectController {
	return &SubjectController{Validate: helper.Validate}
}

func subjectsEndpoint(id int) string {
	return "curriculums/" + strconv.Itoa(id) + "/subjects/"
}

func pagePath(id int) string {
	return "/curricula/" + strconv.Itoa(id) + "/subjects"
}

// subjectsPage is everything the subjects page shows, loaded in parallel.
type subjectsPage struct {
	curriculum dto.Curriculum
	view       listview.View[dto.CurriculumSubject]
	options    []widgets.Option
}

func (ctl *SubjectController) load(ctx context.Context, api *apiclient.Client, id int) (*subjectsPage, error) {
	p := &subjectsPage{}
	list := listview.New[dto.CurriculumSubject](api, listview.Config[dto.CurriculumSubject]{
		Endpoint:   subjectsEndpoint(id),
		Pagination: listview.ClientPaginated,
		Search:     listview.ClientSearch,
		PageSize:   listview.MaxPageSize,
	})

	err := listview.LoadParallel(ctx,
		func(ctx context.Context) error {
			res := api.Fetch(ctx, "curriculums/"+strconv.Itoa(id)+"/", nil)
			if !res.Success {
				return res.Err
			}
			return res.Decode(&p.curriculum)
		},
		list.Refresh,
		func(ctx context.Context) error {
			opts, err := options.Load(ctx, api, "subjects")
			p.options = opts
			return err
		},
	)
	p.view = list.View()
	return p, err
}

/* ===== GET /curricula/:id/subjects ===== */

func (ctl *SubjectController) List(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	return ctl.render(c, id, fiber.StatusOK, "", nil)
}

func (ctl *SubjectController) render(c *fiber.Ctx, id, status int, errMsg string, fieldErrs map[string]string) error {
	p, err := ctl.load(c.UserContext(), middlewares.API(c), id)
	if done, rerr := crud.HandleAuthFailure(c, err); done {
		return rerr
	}
	if err != nil {
		if ae, ok := err.(*apiclient.AppError); ok && ae.Status == fiber.StatusNotFound {
			return fiber.ErrNotFound
		}
		if errMsg == "" {
			errMsg = err.Error()
			if ae, ok := err.(*apiclient.AppError); ok {
				errMsg = ae.Message
			}
		}
	}
	semesters := p.curriculum.SemesterCount
	if semesters < 1 {
		semesters = 8
	}
	pick := widgets.NewSearchSelect("field.subject", "subject_id", "subjects", p.options, 0)
	pick.Required = true
	return helper.RenderStatus(c, status, "pages/curriculum_subjects", fiber.Map{
		"Title":      "curricula.subjects",
		"Curriculum": p.curriculum,
		"View":       p.view,
		"Subject":    pick,
		"CanEdit":    canEdit(c),
		"Semesters":  dto.Semesters(semesters),
		"Action":     pagePath(id),
		"Error":      errMsg,
		"Errors":     fieldErrs,
	})
}

// canEdit: attaching and distributing subjects is the institution admin's job.
func canEdit(c *fiber.Ctx) bool {
	return slices.Contains(constants.AdminOnly, session.AuthFrom(c).ActiveRole())
}

/* ===== POST /curricula/:id/subjects ===== */

func (ctl *SubjectController) Attach(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	if strings.TrimSpace(c.FormValue("subject_id_search")) != "" {
		opts, err := options.Load(c.UserContext(), middlewares.API(c), "subjects")
		if done, rerr := crud.HandleAuthFailure(c, err); done {
			return rerr
		}
		if !crud.ResolvePick(c, widgets.NewSearchSelect("field.subject", "subject_id", "subjects", opts, 0)) {
			return ctl.render(c, id, fiber.StatusUnprocessableEntity, "", map[string]string{
				"subject_id": helper.T(c, "form.unknown_option"),
			})
		}
	}
	var req dto.AttachSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form: "+err.Error())
	}
	if errs := helper.ValidateStruct(req, helper.Lang(c)); len(errs) > 0 {
		return ctl.render(c, id, fiber.StatusUnprocessableEntity, "", errs)
	}

	res := middlewares.API(c).Post(c.UserContext(), subjectsEndpoint(id), req.Payload())
	if !res.Success {
		if done, rerr := crud.HandleAuthFailure(c, res.Err); done {
			return rerr
		}
		return ctl.render(c, id, fiber.StatusUnprocessableEntity, res.Message(), res.Err.FieldErrors())
	}
	log.Printf("[INFO] curriculum %d: subject %d attached", id, req.SubjectID)
	return crud.Done(c, helper.T(c, "common.saved"), pagePath(id))
}

/* ===== POST /curricula/:id/subjects/distribute ===== */

func (ctl *SubjectController) Distribute(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	payload := dto.ParseDistribution(
		helper.FormValues(c, "subject"),
		helper.FormValues(c, "semester"),
		helper.FormValues(c, "hours"),
	)
	if err := ctl.Validate.Struct(payload); err != nil {
		return ctl.render(c, id, fiber.StatusUnprocessableEntity, helper.T(c, "curricula.distribute_invalid"), nil)
	}

	api := middlewares.API(c)
	res := api.Fetch(c.UserContext(), "curriculums/"+strconv.Itoa(id)+"/", nil)
	if !res.Success {
		if done, rerr := crud.HandleAuthFailure(c, res.Err); done {
			return rerr
		}
		return res.Err
	}
	var cur dto.Curriculum
	if err := res.Decode(&cur); err != nil {
		return apiclient.NewShapeError("curriculum %d: %v", id, err)
	}
	if bad := payload.OutOfRange(cur.SemesterCount); len(bad) > 0 {
		return ctl.render(c, id, fiber.StatusUnprocessableEntity, helper.T(c, "curricula.semester_out_of_range"), nil)
	}

	res = api.Post(c.UserContext(), subjectsEndpoint(id)+"distribute/", payload)
	if !res.Success {
		if done, rerr := crud.HandleAuthFailure(c, res.Err); done {
			return rerr
		}
		return ctl.render(c, id, fiber.StatusUnprocessableEntity, res.Message(), nil)
	}
	log.Printf("[INFO] curriculum %d: %d subjects distributed", id, len(payload.Items))
	return crud.Done(c, helper.T(c, "common.saved"), pagePath(id))
}
