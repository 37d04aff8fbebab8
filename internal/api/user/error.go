package user

import "RecyclePress/pkg/response"

var (
	ErrInvalidCredentials = response.NewError(401, "invalid username or password")
	ErrUserAlreadyExists  = response.NewError(409, "username or email already exists")
	ErrUserNotFound       = response.NewError(404, "user not found")
	ErrNotLoggedIn        = response.NewError(401, "not logged in")
	ErrCreateUser         = response.NewError(500, "failed to create user")
)
