package auth

import "errors"

var (
	// ErrInvalidCredentials covers unknown email, wrong password and disabled
	// accounts alike. Collapsing them keeps login responses from leaking
	// which emails exist.
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailExists         = errors.New("email already exists")
	ErrInvalidRole         = errors.New("invalid role")
)
