package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserRole(t *testing.T) {
	tests := []struct {
		input string
		want  UserRole
	}{
		{"admin", RoleAdmin},
		{"production", RoleProduction},
		{"engineering", RoleEngineering},
		{"ADMIN", RoleAdmin},
		{"Production", RoleProduction},
		{"ENGINEERING", RoleEngineering},
	}
	for _, tt := range tests {
		role, err := ParseUserRole(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, role)
	}
}

func TestParseUserRole_Invalid(t *testing.T) {
	for _, input := range []string{"", "superuser", "admins", "role"} {
		role, err := ParseUserRole(input)
		require.Error(t, err, input)
		assert.Empty(t, role)
	}
}

func TestUserRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleProduction.IsValid())
	assert.True(t, RoleEngineering.IsValid())
	assert.False(t, UserRole("ADMIN").IsValid())
	assert.False(t, UserRole("").IsValid())
}
