package usecase

import (
	"context"

	"classhub-api/internal/auth"
	"classhub-api/internal/model"
	"classhub-api/internal/user/repository"
	"classhub-api/pkg/encrypter"
	"classhub-api/pkg/token"
)

func (uc *usecase) Register(ctx context.Context, ip auth.RegisterInput) (auth.TokenOutput, error) {
	role := ip.Role
	if role == "" {
		role = model.RoleStudent
	}
	if !model.ValidRole(role) {
		return auth.TokenOutput{}, auth.ErrInvalidRole
	}

	_, err := uc.repo.GetOne(ctx, model.Scope{}, repository.GetOneOptions{Email: ip.Email})
	if err == nil {
		return auth.TokenOutput{}, auth.ErrEmailExists
	}
	if err != repository.ErrNotFound {
		uc.l.Errorf(ctx, "internal.auth.usecase.Register.GetOne: %v", err)
		return auth.TokenOutput{}, err
	}

	hash, err := encrypter.HashPassword(ip.Password)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Register.HashPassword: %v", err)
		return auth.TokenOutput{}, err
	}

	active := true
	usr, err := uc.repo.Create(ctx, model.Scope{}, repository.CreateOptions{
		User: model.User{
			Name:         ip.Name,
			Email:        ip.Email,
			Role:         role,
			PasswordHash: &hash,
			IsActive:     &active,
		},
	})
	if err != nil {
		if err == repository.ErrEmailTaken {
			return auth.TokenOutput{}, auth.ErrEmailExists
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.Register.Create: %v", err)
		return auth.TokenOutput{}, err
	}

	return uc.issuePair(ctx, usr)
}

func (uc *usecase) Login(ctx context.Context, ip auth.LoginInput) (auth.TokenOutput, error) {
	usr, err := uc.repo.GetOne(ctx, model.Scope{}, repository.GetOneOptions{Email: ip.Email})
	if err != nil {
		if err == repository.ErrNotFound {
			return auth.TokenOutput{}, auth.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.GetOne: %v", err)
		return auth.TokenOutput{}, err
	}

	if usr.PasswordHash == nil || !encrypter.CheckPasswordHash(ip.Password, *usr.PasswordHash) {
		return auth.TokenOutput{}, auth.ErrInvalidCredentials
	}
	if usr.IsActive != nil && !*usr.IsActive {
		return auth.TokenOutput{}, auth.ErrInvalidCredentials
	}

	return uc.issuePair(ctx, usr)
}

// Refresh rotates the credential pair. The identity is re-fetched so a role
// change or account removal takes effect on the next rotation, not only at
// access-token expiry. The old refresh token is not tracked server-side and
// stays formally valid until it expires.
func (uc *usecase) Refresh(ctx context.Context, refreshToken string) (auth.TokenOutput, error) {
	claims, err := uc.codec.VerifyRefresh(refreshToken)
	if err != nil {
		return auth.TokenOutput{}, auth.ErrInvalidRefreshToken
	}

	usr, err := uc.repo.GetOne(ctx, model.Scope{}, repository.GetOneOptions{Email: claims.Email})
	if err != nil {
		if err == repository.ErrNotFound {
			return auth.TokenOutput{}, auth.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.Refresh.GetOne: %v", err)
		return auth.TokenOutput{}, err
	}

	if usr.IsActive != nil && !*usr.IsActive {
		return auth.TokenOutput{}, auth.ErrUserNotFound
	}

	return uc.issuePair(ctx, usr)
}

func (uc *usecase) issuePair(ctx context.Context, usr model.User) (auth.TokenOutput, error) {
	identity := token.Identity{
		ID:    usr.ID,
		Email: usr.Email,
		Role:  usr.Role,
	}

	access, err := uc.codec.IssueAccess(identity)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.issuePair.IssueAccess: %v", err)
		return auth.TokenOutput{}, err
	}

	refresh, err := uc.codec.IssueRefresh(identity)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.issuePair.IssueRefresh: %v", err)
		return auth.TokenOutput{}, err
	}

	return auth.TokenOutput{
		AccessToken:  access,
		RefreshToken: refresh,
		AccessTTL:    uc.codec.AccessTTL(),
		RefreshTTL:   uc.codec.RefreshTTL(),
		User:         usr,
	}, nil
}
