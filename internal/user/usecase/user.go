package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"

	"classhub-api/internal/model"
	"classhub-api/internal/user"
	"classhub-api/internal/user/repository"
	postgresPkg "classhub-api/pkg/postgre"

	pkgMinio "classhub-api/pkg/minio"
)

// maxAvatarSize caps avatar uploads at 5 MiB.
const maxAvatarSize = 5 << 20

func (uc *usecase) DetailMe(ctx context.Context, sc model.Scope) (user.UserOutput, error) {
	usr, err := uc.repo.Detail(ctx, sc, sc.UserID)
	if err != nil {
		if err == repository.ErrNotFound {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.DetailMe: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: usr}, nil
}

func (uc *usecase) UpdateProfile(ctx context.Context, sc model.Scope, ip user.UpdateProfileInput) (user.UserOutput, error) {
	usr, err := uc.repo.Detail(ctx, sc, sc.UserID)
	if err != nil {
		if err == repository.ErrNotFound {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.UpdateProfile.Detail: %v", err)
		return user.UserOutput{}, err
	}

	usr.Name = ip.Name

	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{User: usr})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.UpdateProfile.Update: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: updated}, nil
}

func (uc *usecase) UploadAvatar(ctx context.Context, sc model.Scope, ip user.UploadAvatarInput) (user.UserOutput, error) {
	if !strings.HasPrefix(ip.ContentType, "image/") {
		return user.UserOutput{}, user.ErrInvalidAvatar
	}
	if ip.Size <= 0 || ip.Size > maxAvatarSize {
		return user.UserOutput{}, user.ErrInvalidAvatar
	}

	usr, err := uc.repo.Detail(ctx, sc, sc.UserID)
	if err != nil {
		if err == repository.ErrNotFound {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.UploadAvatar.Detail: %v", err)
		return user.UserOutput{}, err
	}

	// Object name is keyed by user so re-uploads replace the previous avatar.
	objectName := fmt.Sprintf("%s/%s%s", sc.UserID, postgresPkg.NewUUID(), path.Ext(ip.FileName))
	info, err := uc.storage.Upload(ctx, pkgMinio.UploadRequest{
		BucketName:  uc.avatarBucket,
		ObjectName:  objectName,
		Reader:      ip.Reader,
		Size:        ip.Size,
		ContentType: ip.ContentType,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.UploadAvatar.Upload: %v", err)
		return user.UserOutput{}, err
	}

	usr.AvatarURL = &info.URL
	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{User: usr})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.UploadAvatar.Update: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: updated}, nil
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip user.GetInput) (user.GetUserOutput, error) {
	usrs, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
		Filter: repository.Filter{
			Role:   ip.Filter.Role,
			Search: ip.Filter.Search,
		},
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Get: %v", err)
		return user.GetUserOutput{}, err
	}

	return user.GetUserOutput{
		Users:     usrs,
		Paginator: pag,
	}, nil
}
