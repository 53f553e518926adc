package lesson

import (
	"context"

	"classhub-api/internal/model"
)

type UseCase interface {
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (LessonOutput, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (LessonOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	Detail(ctx context.Context, sc model.Scope, id string) (LessonOutput, error)
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetLessonOutput, error)
}
