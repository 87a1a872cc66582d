package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrElevatedRoleRequired   = errors.New("hr or admin role required")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
)
