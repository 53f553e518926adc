package auth

import "context"

type UseCase interface {
	Register(ctx context.Context, ip RegisterInput) (TokenOutput, error)
	Login(ctx context.Context, ip LoginInput) (TokenOutput, error)
	Refresh(ctx context.Context, refreshToken string) (TokenOutput, error)
}
