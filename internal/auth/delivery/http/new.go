package http

import (
	"classhub-api/config"
	"classhub-api/internal/auth"
	"classhub-api/pkg/log"
)

type Handler struct {
	l         log.Logger
	uc        auth.UseCase
	cookieCfg config.CookieConfig
	// secure is false only in development so local HTTP testing works.
	secure bool
}

func New(l log.Logger, uc auth.UseCase, cookieCfg config.CookieConfig, isDevelopment bool) *Handler {
	return &Handler{
		l:         l,
		uc:        uc,
		cookieCfg: cookieCfg,
		secure:    !isDevelopment,
	}
}
