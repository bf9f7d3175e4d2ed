package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUsernameExists         = errors.New("username already registered")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
