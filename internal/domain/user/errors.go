package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidUsername    = errors.New("username must be 2-64 characters of letters, digits, dot, underscore or hyphen")
	ErrInvalidRole        = errors.New("invalid user role")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSelfDeletion       = errors.New("administrators cannot delete their own account")
)
