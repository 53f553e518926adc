package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"classhub-api/internal/model"
	"classhub-api/internal/user/repository"
	"classhub-api/pkg/paginator"
	postgresPkg "classhub-api/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/lib/pq"
)

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.User, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Detail.IsUUID: %v", err)
		return model.User{}, err
	}

	var row userRow
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 AND deleted_at IS NULL`, userColumns)
	if err := queries.Raw(query, id).Bind(ctx, r.db, &row); err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.Detail.Bind: %v", err)
		return model.User{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) GetOne(ctx context.Context, sc model.Scope, opts repository.GetOneOptions) (model.User, error) {
	var (
		query string
		arg   string
	)
	switch {
	case opts.ID != "":
		if err := postgresPkg.IsUUID(opts.ID); err != nil {
			r.l.Errorf(ctx, "internal.user.repository.postgres.GetOne.IsUUID: %v", err)
			return model.User{}, err
		}
		query = fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 AND deleted_at IS NULL`, userColumns)
		arg = opts.ID
	case opts.Email != "":
		query = fmt.Sprintf(`SELECT %s FROM users WHERE email = $1 AND deleted_at IS NULL`, userColumns)
		arg = opts.Email
	default:
		return model.User{}, repository.ErrNotFound
	}

	var row userRow
	if err := queries.Raw(query, arg).Bind(ctx, r.db, &row); err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.GetOne.Bind: %v", err)
		return model.User{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.User, paginator.Paginator, error) {
	where, args, err := r.buildFilterWhere(ctx, opts.Filter)
	if err != nil {
		return nil, paginator.Paginator{}, err
	}

	var cnt countRow
	countQuery := fmt.Sprintf(`SELECT COUNT(*) AS count FROM users WHERE %s`, where)
	if err := queries.Raw(countQuery, args...).Bind(ctx, r.db, &cnt); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	pq := opts.PaginateQuery
	pq.Adjust()

	var rows []userRow
	listQuery := fmt.Sprintf(
		`SELECT %s FROM users WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		userColumns, where, len(args)+1, len(args)+2,
	)
	listArgs := append(args, pq.Limit, pq.Offset())
	if err := queries.Raw(listQuery, listArgs...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Get.Bind: %v", err)
		return nil, paginator.Paginator{}, err
	}

	usrs := make([]model.User, len(rows))
	for i, row := range rows {
		usrs[i] = row.toModel()
	}

	return usrs, paginator.Paginator{
		Total:       cnt.Count,
		Count:       int64(len(usrs)),
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}, nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.User, error) {
	usr := opts.User
	if usr.ID == "" {
		usr.ID = postgresPkg.NewUUID()
	} else if err := postgresPkg.IsUUID(usr.ID); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Create.IsUUID: %v", err)
		return model.User{}, err
	}

	now := r.clock()
	usr.CreatedAt = now
	usr.UpdatedAt = now
	row := newUserRow(usr)

	query := fmt.Sprintf(`INSERT INTO users (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`, userColumns)
	_, err := queries.Raw(query,
		row.ID, row.Name, row.Email, row.Role, row.PasswordHash,
		row.AvatarURL, row.IsActive, row.CreatedAt, row.UpdatedAt, row.DeletedAt,
	).ExecContext(ctx, r.db)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return model.User{}, repository.ErrEmailTaken
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.Create.Exec: %v", err)
		return model.User{}, err
	}

	return r.Detail(ctx, sc, usr.ID)
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.User, error) {
	usr := opts.User
	if err := postgresPkg.IsUUID(usr.ID); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Update.IsUUID: %v", err)
		return model.User{}, err
	}

	row := newUserRow(usr)
	query := `UPDATE users
		SET name = $1, email = $2, role = $3, password_hash = $4, avatar_url = $5, is_active = $6, updated_at = $7
		WHERE id = $8 AND deleted_at IS NULL`
	res, err := queries.Raw(query,
		row.Name, row.Email, row.Role, row.PasswordHash,
		row.AvatarURL, row.IsActive, r.clock(), row.ID,
	).ExecContext(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Update.Exec: %v", err)
		return model.User{}, err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return model.User{}, repository.ErrNotFound
	}

	return r.Detail(ctx, sc, usr.ID)
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Delete.IsUUID: %v", err)
		return err
	}

	query := `UPDATE users SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`
	res, err := queries.Raw(query, r.clock(), id).ExecContext(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Delete.Exec: %v", err)
		return err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}
