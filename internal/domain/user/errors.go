package user

import "errors"

var (
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrManagerAccessRequired   = errors.New("admin, manager, or HR access required")
	ErrAdminAccessRequired     = errors.New("admin or HR access required")
)
