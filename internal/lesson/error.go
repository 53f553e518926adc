package lesson

import "errors"

var (
	ErrLessonNotFound = errors.New("lesson not found")
	// ErrForbidden is returned when a caller's role allows reaching the
	// endpoint but not this particular mutation.
	ErrForbidden = errors.New("forbidden")
)
