package user

import (
	"context"

	"classhub-api/internal/model"
)

type UseCase interface {
	DetailMe(ctx context.Context, sc model.Scope) (UserOutput, error)
	UpdateProfile(ctx context.Context, sc model.Scope, ip UpdateProfileInput) (UserOutput, error)
	UploadAvatar(ctx context.Context, sc model.Scope, ip UploadAvatarInput) (UserOutput, error)
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetUserOutput, error)
}
