package user

import (
	"fmt"
	"regexp"
	"time"

	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/biztime"
	"fixdesk/internal/shared/id"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{2,64}$`)

// User is an account in the maintenance tracker. The role is fixed at
// creation; there is no role-update operation.
type User struct {
	id           uint
	sid          string
	username     string
	role         authorization.UserRole
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username string, role authorization.UserRole, passwordHash string) (*User, error) {
	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &User{
		sid:          id.MustGenerateWithPrefix(id.PrefixUser, id.DefaultLength),
		username:     username,
		role:         role,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	userID uint,
	sid string,
	username string,
	role authorization.UserRole,
	passwordHash string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("user public ID is required")
	}
	if username == "" {
		return nil, ErrInvalidUsername
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	return &User{
		id:           userID,
		sid:          sid,
		username:     username,
		role:         role,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) SID() string {
	return u.sid
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

// PasswordHash is only consumed by the authentication flow; it never
// crosses the API boundary.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(userID uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if userID == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = userID
	return nil
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}
