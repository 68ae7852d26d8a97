// file: internals/session/auth.go
package session

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"otm_dashboard/internals/apiclient"
	"otm_dashboard/internals/constants"
)

var (
	ErrUnknownRole  = errors.New("unknown role")
	ErrEmptyToken   = errors.New("empty credential")
	ErrNoCredential = errors.New("no credential stored for this role")
)

// Auth is the role/credential provider. It holds no state of its own; every read goes to storage.
type Auth struct {
	store Storage
}

func NewAuth(store Storage) *Auth { return &Auth{store: store} }

func AuthFrom(c *fiber.Ctx) *Auth { return NewAuth(From(c)) }

// ActiveRole is the stored role when it is one of the known roles, else "".
func (a *Auth) ActiveRole() string {
	role := a.store.Get(constants.KeyRole)
	if !constants.IsValidRole(role) {
		return ""
	}
	return role
}

// SelectRole picks the navigation variant; it follows the active role unless set separately.
func (a *Auth) SelectRole() string {
	if r := a.store.Get(constants.KeySelectRole); constants.IsValidRole(r) {
		return r
	}
	return a.ActiveRole()
}

// Token is the active role's credential, falling back to the legacy single token.
func (a *Auth) Token() string {
	if role := a.ActiveRole(); role != "" {
		if tok := a.store.Get(constants.TokenKeyForRole(role)); tok != "" {
			return tok
		}
	}
	return a.store.Get(constants.KeyToken)
}

// TokenSource feeds apiclient with whatever credential is current at request time.
func (a *Auth) TokenSource() apiclient.TokenSource {
	return apiclient.TokenFunc(a.Token)
}

func (a *Auth) IsAuthenticated() bool { return a.Token() != "" }

// HasRole reports whether a credential for role is stored.
func (a *Auth) HasRole(role string) bool {
	return constants.IsValidRole(role) && a.store.Get(constants.TokenKeyForRole(role)) != ""
}

// Roles lists the roles the browser holds credentials for.
func (a *Auth) Roles() []string {
	var out []string
	for _, r := range constants.AllRoles {
		if a.HasRole(r) {
			out = append(out, r)
		}
	}
	return out
}

// Login stores token for role and makes role active.
func (a *Auth) Login(role, token string) error {
	if !constants.IsValidRole(role) {
		return ErrUnknownRole
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}
	a.store.Set(constants.TokenKeyForRole(role), token)
	a.store.Set(constants.KeyToken, token)
	a.store.Set(constants.KeyRole, role)
	a.store.Set(constants.KeySelectRole, role)
	return a.store.Save()
}

// SwitchRole changes the active role to one that already has a credential.
func (a *Auth) SwitchRole(role string) error {
	if !constants.IsValidRole(role) {
		return ErrUnknownRole
	}
	tok := a.store.Get(constants.TokenKeyForRole(role))
	if tok == "" {
		return ErrNoCredential
	}
	a.store.Set(constants.KeyRole, role)
	a.store.Set(constants.KeySelectRole, role)
	a.store.Set(constants.KeyToken, tok)
	return a.store.Save()
}

// Logout clears every credential key. The theme survives.
func (a *Auth) Logout() error {
	for _, k := range []string{
		constants.KeyToken,
		constants.KeyRole,
		constants.KeyOtmAdminToken,
		constants.KeyTeacherToken,
		constants.KeySelectRole,
	} {
		a.store.Delete(k)
	}
	return a.store.Save()
}

// Expired reports whether the current credential is a JWT whose exp lies before now.
// Signatures are not checked: the backend stays the authority, this only saves a round trip.
// Opaque tokens never expire here.
func (a *Auth) Expired(now time.Time) bool {
	return TokenExpired(a.Token(), now)
}

func TokenExpired(token string, now time.Time) bool {
	raw := strings.TrimSpace(token)
	for _, prefix := range []string{"Bearer ", "Token ", "JWT "} {
		if strings.HasPrefix(raw, prefix) {
			raw = strings.TrimSpace(raw[len(prefix):])
			break
		}
	}
	if strings.Count(raw, ".") != 2 {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return false
	}
	return !claims.VerifyExpiresAt(now.Unix(), false)
}
