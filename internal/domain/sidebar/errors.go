package sidebar

import "errors"

var (
	ErrUserRoleNotFound = errors.New("user role not found")
)
