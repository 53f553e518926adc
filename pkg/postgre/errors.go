package postgre

import "github.com/friendsofgo/errors"

var (
	// ErrInvalidUUID is returned when an identifier is not a valid UUID.
	ErrInvalidUUID = errors.New("invalid UUID format")
)
