package authorization

import (
	"fmt"
	"strings"
)

type UserRole string

const (
	RoleAdmin       UserRole = "admin"
	RoleProduction  UserRole = "production"
	RoleEngineering UserRole = "engineering"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleProduction || r == RoleEngineering
}

// ParseUserRole accepts the canonical lowercase spellings as well as the
// legacy uppercase enum values still present in old client payloads.
// Anything else is an error.
func ParseUserRole(s string) (UserRole, error) {
	role := UserRole(strings.ToLower(s))
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role: %q", s)
	}
	return role, nil
}
