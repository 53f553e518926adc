package repository

import (
	"context"
	"errors"

	"classhub-api/internal/model"
	"classhub-api/pkg/paginator"
)

// ErrNotFound is returned when no lesson matches the query.
var ErrNotFound = errors.New("not found")

type Repository interface {
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Lesson, paginator.Paginator, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Lesson, error)
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Lesson, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (model.Lesson, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
