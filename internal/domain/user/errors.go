package user

import "errors"

// User domain errors
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrWrongPassword          = errors.New("current password is incorrect")
	ErrCannotDeleteSelf       = errors.New("cannot delete the account you are logged in with")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
