package http

import (
	"net/http"

	"classhub-api/internal/user"
	"classhub-api/pkg/errors"
)

func (h *Handler) mapError(err error) error {
	switch err {
	case user.ErrUserNotFound:
		return errors.NewHTTPError(http.StatusNotFound, "User not found")
	case user.ErrInvalidAvatar:
		return errors.NewHTTPError(http.StatusBadRequest, "Invalid avatar file")
	default:
		panic(err)
	}
}
