package constants

// Persisted per-browser keys. Names are shared with the previous SPA so the same values survive.
const (
	KeyToken         = "token"
	KeyRole          = "role"
	KeyOtmAdminToken = "otmAdminToken"
	KeyTeacherToken  = "teacherToken"
	KeyTheme         = "theme"
	KeySelectRole    = "selectRole"
	KeyLang          = "lang"
	KeyFlash         = "flash"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)
