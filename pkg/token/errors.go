package token

import "errors"

var (
	// ErrInvalidToken is returned for every verification failure.
	// Expired, malformed, wrong signature and wrong type all collapse to this
	// one error so callers cannot build an oracle out of the distinction.
	ErrInvalidToken = errors.New("invalid token")

	// ErrSecretRequired is returned when a Codec is constructed without both secrets.
	ErrSecretRequired = errors.New("access and refresh secrets are required")
	// ErrSameSecret is returned when access and refresh secrets are identical.
	ErrSameSecret = errors.New("access and refresh secrets must differ")
)
