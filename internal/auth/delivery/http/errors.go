package http

import (
	"net/http"

	"classhub-api/internal/auth"
	"classhub-api/pkg/errors"
)

func (h *Handler) mapError(err error) error {
	switch err {
	case auth.ErrInvalidCredentials:
		return errors.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	case auth.ErrInvalidRefreshToken:
		return errors.NewHTTPError(http.StatusUnauthorized, "Invalid or expired refresh token")
	case auth.ErrUserNotFound:
		return errors.NewHTTPError(http.StatusNotFound, "User not found")
	case auth.ErrEmailExists:
		return errors.NewHTTPError(http.StatusConflict, "Email already registered")
	case auth.ErrInvalidRole:
		return errors.NewHTTPError(http.StatusBadRequest, "Invalid role")
	default:
		panic(err)
	}
}
