package repository

import (
	"classhub-api/internal/model"
	"classhub-api/pkg/paginator"
)

// Filter contains filtering options for lesson queries.
type Filter struct {
	Subject  string
	AuthorID string
}

// CreateOptions contains options for creating a lesson.
type CreateOptions struct {
	Lesson model.Lesson
}

// UpdateOptions contains options for updating a lesson.
type UpdateOptions struct {
	Lesson model.Lesson
}

// GetOptions contains options for paginated lesson listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}
