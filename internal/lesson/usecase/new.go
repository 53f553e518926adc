package usecase

import (
	"classhub-api/internal/lesson"
	"classhub-api/internal/lesson/repository"
	pkgLog "classhub-api/pkg/log"
	pkgRedis "classhub-api/pkg/redis"
)

type usecase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	cache pkgRedis.IRedis
}

func New(l pkgLog.Logger, repo repository.Repository, cache pkgRedis.IRedis) lesson.UseCase {
	return &usecase{
		l:     l,
		repo:  repo,
		cache: cache,
	}
}
