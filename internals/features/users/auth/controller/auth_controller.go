package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/apiclient"
	"otm_dashboard/internals/constants"
	"otm_dashboard/internals/features/users/auth/dto"
	helper "otm_dashboard/internals/helpers"
	"otm_dashboard/internals/i18n"
	"otm_dashboard/internals/session"
)

// AuthController logs browsers in against the backend and keeps per-browser preferences.
type AuthController struct {
	API           *apiclient.Client
	LoginEndpoint string
}

func NewAuthController(api *apiclient.Client, loginEndpoint string) *AuthController {
	return &AuthController{API: api, LoginEndpoint: loginEndpoint}
}

/* ===== GET /login ===== */

func (ac *AuthController) LoginPage(c *fiber.Ctx) error {
	if session.AuthFrom(c).IsAuthenticated() {
		return c.Redirect(dto.SafeNext(c.Query("next")))
	}
	return ac.renderLogin(c, fiber.StatusOK, dto.LoginRequest{Role: constants.RoleOtmAdmin, Next: c.Query("next")}, nil, "")
}

func (ac *AuthController) renderLogin(c *fiber.Ctx, status int, req dto.LoginRequest, errs map[string]string, msg string) error {
	req.Password = ""
	return helper.RenderStatus(c, status, "pages/login", fiber.Map{
		"Title":     "login.title",
		"Form":      req,
		"Errors":    errs,
		"Error":     msg,
		"RoleNames": constants.AllRoles,
	})
}

/* ===== POST /login ===== */

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form: "+err.Error())
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req, helper.Lang(c)); len(errs) > 0 {
		return ac.renderLogin(c, fiber.StatusUnprocessableEntity, req, errs, "")
	}

	res := ac.API.Post(c.UserContext(), ac.LoginEndpoint, req.Payload())
	if !res.Success {
		log.Printf("[AUTH] login failed for %q: %s", req.Username, res.Message())
		return ac.renderLogin(c, fiber.StatusUnauthorized, req, nil, res.Message())
	}
	token := dto.TokenFrom(res.Body)
	if token == "" {
		return ac.renderLogin(c, fiber.StatusBadGateway, req, nil, helper.T(c, "login.no_token"))
	}

	if err := session.AuthFrom(c).Login(req.Role, token); err != nil {
		return ac.renderLogin(c, fiber.StatusUnprocessableEntity, req, nil, err.Error())
	}
	log.Printf("[AUTH] %q logged in as %s", req.Username, req.Role)
	return c.Redirect(dto.SafeNext(req.Next))
}

/* ===== POST /logout ===== */

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if err := session.AuthFrom(c).Logout(); err != nil {
		return err
	}
	return c.Redirect("/login")
}

/* ===== POST /role/:role ===== */

func (ac *AuthController) SwitchRole(c *fiber.Ctx) error {
	store := session.From(c)
	if err := session.NewAuth(store).SwitchRole(c.Params("role")); err != nil {
		session.SetFlash(store, "auth.role_unavailable")
	}
	return c.Redirect("/")
}

/* ===== POST /theme/toggle ===== */

// ToggleTheme redirects back, or answers the new theme when the page toggled it in place.
func (ac *AuthController) ToggleTheme(c *fiber.Ctx) error {
	theme, err := session.ThemeFrom(c).Toggle()
	if err != nil {
		return err
	}
	if helper.WantsJSON(c) {
		return helper.JsonOK(c, "ok", fiber.Map{"theme": theme})
	}
	return c.Redirect(back(c))
}

/* ===== GET /lang/:lang ===== */

func (ac *AuthController) SetLang(c *fiber.Ctx) error {
	lang := c.Params("lang")
	if !i18n.IsSupported(lang) {
		return fiber.ErrNotFound
	}
	store := session.From(c)
	store.Set(constants.KeyLang, lang)
	if err := store.Save(); err != nil {
		return err
	}
	return c.Redirect(back(c))
}

// back is the local page the request came from.
func back(c *fiber.Ctx) string {
	ref := string(c.Request().Header.Referer())
	if u := c.BaseURL(); ref != "" && len(ref) > len(u) && ref[:len(u)] == u {
		return dto.SafeNext(ref[len(u):])
	}
	return "/"
}
