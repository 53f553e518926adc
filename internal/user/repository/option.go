package repository

import (
	"classhub-api/internal/model"
	"classhub-api/pkg/paginator"
)

// Filter contains filtering options for user queries.
type Filter struct {
	IDs    []string
	Role   string
	Search string // matches name or email
}

// CreateOptions contains options for creating a user.
type CreateOptions struct {
	User model.User
}

// UpdateOptions contains options for updating a user.
type UpdateOptions struct {
	User model.User
}

// GetOneOptions contains options for getting a single user.
// ID takes precedence over Email when both are set.
type GetOneOptions struct {
	Email string
	ID    string
}

// GetOptions contains options for paginated user listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}
