package dto

import "strings"

// LoginRequest is the login form.
type LoginRequest struct {
	Username string `form:"username" validate:"required,max=150"`
	Password string `form:"password" validate:"required,max=128"`
	Role     string `form:"role" validate:"required,oneof=otm_admin teacher"`
	Next     string `form:"next"`
}

func (r *LoginRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Role = strings.TrimSpace(r.Role)
}

// LoginPayload is what the backend login endpoint expects.
type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r *LoginRequest) Payload() LoginPayload {
	return LoginPayload{Username: r.Username, Password: r.Password, Role: r.Role}
}

// tokenKeys are the response fields a credential may come back in, in order.
var tokenKeys = []string{"token", "access", "access_token", "key"}

// TokenFrom picks the credential out of a login response body.
func TokenFrom(body map[string]any) string {
	for _, k := range tokenKeys {
		if s, ok := body[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	if data, ok := body["data"].(map[string]any); ok {
		return TokenFrom(data)
	}
	return ""
}

// SafeNext only allows local redirects.
func SafeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/login") {
		return "/"
	}
	return next
}
