package user

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidAvatar = errors.New("invalid avatar file")
)
