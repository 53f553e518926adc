package http

import (
	"classhub-api/internal/user"
	"classhub-api/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc user.UseCase
}

func New(l log.Logger, uc user.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
