package repository

import (
	"context"
	"errors"

	"classhub-api/internal/model"
	"classhub-api/pkg/paginator"
)

var (
	// ErrNotFound is returned when no user matches the query.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned when an insert hits the unique email constraint.
	ErrEmailTaken = errors.New("email taken")
)

type Repository interface {
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.User, paginator.Paginator, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.User, error)
	GetOne(ctx context.Context, sc model.Scope, opts GetOneOptions) (model.User, error)
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.User, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (model.User, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
