package middleware

import (
	"classhub-api/pkg/log"
	"classhub-api/pkg/token"
)

type Middleware struct {
	l     log.Logger
	codec *token.Codec
	rules RoleAllowlist
}

func New(l log.Logger, codec *token.Codec, rules RoleAllowlist) Middleware {
	return Middleware{
		l:     l,
		codec: codec,
		rules: rules,
	}
}
