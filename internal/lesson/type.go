package lesson

import (
	"classhub-api/internal/model"
	"classhub-api/pkg/paginator"
)

type CreateInput struct {
	Title     string
	Subject   string
	Content   string
	Published bool
}

type UpdateInput struct {
	ID        string
	Title     *string
	Subject   *string
	Content   *string
	Published *bool
}

type LessonOutput struct {
	Lesson model.Lesson
}

type Filter struct {
	Subject  string
	AuthorID string
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type GetLessonOutput struct {
	Lessons   []model.Lesson
	Paginator paginator.Paginator
}
