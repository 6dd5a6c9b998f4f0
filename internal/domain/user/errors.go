package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUsernameOrEmailExists  = errors.New("username or email already registered")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
