package constants

import "fmt"

// Roles the dashboard can act as. Each role keeps its own credential in the session.
const (
	RoleOtmAdmin = "otm_admin"
	RoleTeacher  = "teacher"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess   = "❌ Only institution admins can open %s."
	ErrOnlyTeachersCanAccess = "❌ Only teachers or admins can open %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleOtmAdmin,
		RoleTeacher,
	}

	AdminOnly = []string{
		RoleOtmAdmin,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RoleOtmAdmin,
	}
)

// IsValidRole reports whether role is one of the fixed roles.
func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// TokenKeyForRole maps a role to the storage key holding its credential.
func TokenKeyForRole(role string) string {
	switch role {
	case RoleOtmAdmin:
		return KeyOtmAdminToken
	case RoleTeacher:
		return KeyTeacherToken
	default:
		return KeyToken
	}
}
