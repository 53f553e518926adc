package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"classhub-api/internal/model"
	"classhub-api/internal/user/repository"
	postgresPkg "classhub-api/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/strmangle"
)

const userColumns = `id, name, email, role, password_hash, avatar_url, is_active, created_at, updated_at, deleted_at`

// userRow mirrors the users table for sqlboiler binding.
type userRow struct {
	ID           string      `boil:"id"`
	Name         string      `boil:"name"`
	Email        string      `boil:"email"`
	Role         string      `boil:"role"`
	PasswordHash null.String `boil:"password_hash"`
	AvatarURL    null.String `boil:"avatar_url"`
	IsActive     null.Bool   `boil:"is_active"`
	CreatedAt    time.Time   `boil:"created_at"`
	UpdatedAt    time.Time   `boil:"updated_at"`
	DeletedAt    null.Time   `boil:"deleted_at"`
}

type countRow struct {
	Count int64 `boil:"count"`
}

func (r userRow) toModel() model.User {
	u := model.User{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Role:      r.Role,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.PasswordHash.Valid {
		u.PasswordHash = &r.PasswordHash.String
	}
	if r.AvatarURL.Valid {
		u.AvatarURL = &r.AvatarURL.String
	}
	if r.IsActive.Valid {
		u.IsActive = &r.IsActive.Bool
	}
	if r.DeletedAt.Valid {
		u.DeletedAt = &r.DeletedAt.Time
	}
	return u
}

func newUserRow(u model.User) userRow {
	return userRow{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		PasswordHash: null.StringFromPtr(u.PasswordHash),
		AvatarURL:    null.StringFromPtr(u.AvatarURL),
		IsActive:     null.BoolFromPtr(u.IsActive),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		DeletedAt:    null.TimeFromPtr(u.DeletedAt),
	}
}

// buildFilterWhere builds the WHERE fragment for user filters.
// Soft-deleted rows are always excluded.
func (r *implRepository) buildFilterWhere(ctx context.Context, f repository.Filter) (string, []interface{}, error) {
	where := []string{"deleted_at IS NULL"}
	var args []interface{}

	if len(f.IDs) > 0 {
		if err := postgresPkg.ValidateUUIDs(f.IDs); err != nil {
			r.l.Errorf(ctx, "internal.user.repository.postgres.buildFilterWhere.ValidateUUIDs: %v", err)
			return "", nil, err
		}
		placeholders := strmangle.Placeholders(true, len(f.IDs), len(args)+1, 1)
		where = append(where, fmt.Sprintf("id IN (%s)", placeholders))
		for _, id := range f.IDs {
			args = append(args, id)
		}
	}

	if f.Role != "" {
		args = append(args, f.Role)
		where = append(where, fmt.Sprintf("role = $%d", len(args)))
	}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d)", len(args), len(args)))
	}

	return strings.Join(where, " AND "), args, nil
}
