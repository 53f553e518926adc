package usecase

import (
	"classhub-api/internal/user"
	"classhub-api/internal/user/repository"
	pkgLog "classhub-api/pkg/log"
	pkgMinio "classhub-api/pkg/minio"
)

type usecase struct {
	l            pkgLog.Logger
	repo         repository.Repository
	storage      pkgMinio.MinIO
	avatarBucket string
}

func New(l pkgLog.Logger, repo repository.Repository, storage pkgMinio.MinIO, avatarBucket string) user.UseCase {
	return &usecase{
		l:            l,
		repo:         repo,
		storage:      storage,
		avatarBucket: avatarBucket,
	}
}
