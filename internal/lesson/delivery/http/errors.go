package http

import (
	"net/http"

	"classhub-api/internal/lesson"
	"classhub-api/pkg/errors"
	postgresPkg "classhub-api/pkg/postgre"

	friendsErrors "github.com/friendsofgo/errors"
)

func (h *Handler) mapError(err error) error {
	switch err {
	case lesson.ErrLessonNotFound:
		return errors.NewHTTPError(http.StatusNotFound, "Lesson not found")
	case lesson.ErrForbidden:
		return errors.NewHTTPError(http.StatusForbidden, "You cannot modify this lesson")
	}
	if friendsErrors.Is(err, postgresPkg.ErrInvalidUUID) {
		return errors.NewHTTPError(http.StatusBadRequest, "Invalid lesson id")
	}
	panic(err)
}
