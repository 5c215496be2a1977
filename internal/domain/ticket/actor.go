package ticket

import (
	"fmt"

	"fixdesk/internal/shared/authorization"
)

// ActorSnapshot captures the identity of a user at the moment they touched
// a ticket. It is a copy, never re-resolved: renaming or deleting the user
// later does not rewrite ticket history.
type ActorSnapshot struct {
	UserSID  string
	Username string
	Role     authorization.UserRole
}

func NewActorSnapshot(userSID, username string, role authorization.UserRole) (ActorSnapshot, error) {
	if userSID == "" {
		return ActorSnapshot{}, fmt.Errorf("user ID is required")
	}
	if username == "" {
		return ActorSnapshot{}, fmt.Errorf("username is required")
	}
	if !role.IsValid() {
		return ActorSnapshot{}, fmt.Errorf("invalid role: %s", role)
	}
	return ActorSnapshot{
		UserSID:  userSID,
		Username: username,
		Role:     role,
	}, nil
}

func (a ActorSnapshot) IsZero() bool {
	return a.UserSID == ""
}
