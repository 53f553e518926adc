package user

import (
	"io"

	"classhub-api/internal/model"
	"classhub-api/pkg/paginator"
)

type UpdateProfileInput struct {
	Name string
}

type UploadAvatarInput struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type UserOutput struct {
	User model.User
}

type Filter struct {
	Role   string
	Search string
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type GetUserOutput struct {
	Users     []model.User
	Paginator paginator.Paginator
}
