package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenKeyForRole(t *testing.T) {
	assert.Equal(t, KeyOtmAdminToken, TokenKeyForRole(RoleOtmAdmin))
	assert.Equal(t, KeyTeacherToken, TokenKeyForRole(RoleTeacher))
	assert.Equal(t, KeyToken, TokenKeyForRole("guest"))
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleOtmAdmin))
	assert.True(t, IsValidRole(RoleTeacher))
	assert.False(t, IsValidRole("owner"))
	assert.False(t, IsValidRole(""))
}
