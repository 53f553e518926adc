package usecase

import (
	"classhub-api/internal/auth"
	"classhub-api/internal/user/repository"
	pkgLog "classhub-api/pkg/log"
	"classhub-api/pkg/token"
)

type usecase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	codec *token.Codec
}

func New(l pkgLog.Logger, repo repository.Repository, codec *token.Codec) auth.UseCase {
	return &usecase{
		l:     l,
		repo:  repo,
		codec: codec,
	}
}
