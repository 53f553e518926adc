package http

import (
	"classhub-api/internal/lesson"
	"classhub-api/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc lesson.UseCase
}

func New(l log.Logger, uc lesson.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
