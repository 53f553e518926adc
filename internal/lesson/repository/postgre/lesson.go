package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"classhub-api/internal/lesson/repository"
	"classhub-api/internal/model"
	"classhub-api/pkg/paginator"
	postgresPkg "classhub-api/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
)

const lessonColumns = `id, title, subject, content, author_id, published, created_at, updated_at, deleted_at`

// lessonRow mirrors the lessons table for sqlboiler binding.
type lessonRow struct {
	ID        string    `boil:"id"`
	Title     string    `boil:"title"`
	Subject   string    `boil:"subject"`
	Content   string    `boil:"content"`
	AuthorID  string    `boil:"author_id"`
	Published bool      `boil:"published"`
	CreatedAt time.Time `boil:"created_at"`
	UpdatedAt time.Time `boil:"updated_at"`
	DeletedAt null.Time `boil:"deleted_at"`
}

type countRow struct {
	Count int64 `boil:"count"`
}

func (r lessonRow) toModel() model.Lesson {
	l := model.Lesson{
		ID:        r.ID,
		Title:     r.Title,
		Subject:   r.Subject,
		Content:   r.Content,
		AuthorID:  r.AuthorID,
		Published: r.Published,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.DeletedAt.Valid {
		l.DeletedAt = &r.DeletedAt.Time
	}
	return l
}

func buildFilterWhere(f repository.Filter) (string, []interface{}) {
	where := []string{"deleted_at IS NULL"}
	var args []interface{}

	if f.Subject != "" {
		args = append(args, f.Subject)
		where = append(where, fmt.Sprintf("subject = $%d", len(args)))
	}
	if f.AuthorID != "" {
		args = append(args, f.AuthorID)
		where = append(where, fmt.Sprintf("author_id = $%d", len(args)))
	}

	return strings.Join(where, " AND "), args
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Lesson, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.lesson.repository.postgres.Detail.IsUUID: %v", err)
		return model.Lesson{}, err
	}

	var row lessonRow
	query := fmt.Sprintf(`SELECT %s FROM lessons WHERE id = $1 AND deleted_at IS NULL`, lessonColumns)
	if err := queries.Raw(query, id).Bind(ctx, r.db, &row); err != nil {
		if err == sql.ErrNoRows {
			return model.Lesson{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.lesson.repository.postgres.Detail.Bind: %v", err)
		return model.Lesson{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Lesson, paginator.Paginator, error) {
	where, args := buildFilterWhere(opts.Filter)

	var cnt countRow
	countQuery := fmt.Sprintf(`SELECT COUNT(*) AS count FROM lessons WHERE %s`, where)
	if err := queries.Raw(countQuery, args...).Bind(ctx, r.db, &cnt); err != nil {
		r.l.Errorf(ctx, "internal.lesson.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	pq := opts.PaginateQuery
	pq.Adjust()

	var rows []lessonRow
	listQuery := fmt.Sprintf(
		`SELECT %s FROM lessons WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		lessonColumns, where, len(args)+1, len(args)+2,
	)
	listArgs := append(args, pq.Limit, pq.Offset())
	if err := queries.Raw(listQuery, listArgs...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.lesson.repository.postgres.Get.Bind: %v", err)
		return nil, paginator.Paginator{}, err
	}

	lessons := make([]model.Lesson, len(rows))
	for i, row := range rows {
		lessons[i] = row.toModel()
	}

	return lessons, paginator.Paginator{
		Total:       cnt.Count,
		Count:       int64(len(lessons)),
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}, nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Lesson, error) {
	lsn := opts.Lesson
	if lsn.ID == "" {
		lsn.ID = postgresPkg.NewUUID()
	} else if err := postgresPkg.IsUUID(lsn.ID); err != nil {
		r.l.Errorf(ctx, "internal.lesson.repository.postgres.Create.IsUUID: %v", err)
		return model.Lesson{}, err
	}

	now := r.clock()
	query := fmt.Sprintf(`INSERT INTO lessons (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULL)`, lessonColumns)
	_, err := queries.Raw(query,
		lsn.ID, lsn.Title, lsn.Subject, lsn.Content, lsn.AuthorID, lsn.Published, now, now,
	).ExecContext(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.lesson.repository.postgres.Create.Exec: %v", err)
		return model.Lesson{}, err
	}

	return r.Detail(ctx, sc, lsn.ID)
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Lesson, error) {
	lsn := opts.Lesson
	if err := postgresPkg.IsUUID(lsn.ID); err != nil {
		r.l.Errorf(ctx, "internal.lesson.repository.postgres.Update.IsUUID: %v", err)
		return model.Lesson{}, err
	}

	query := `UPDATE lessons
		SET title = $1, subject = $2, content = $3, published = $4, updated_at = $5
		WHERE id = $6 AND deleted_at IS NULL`
	res, err := queries.Raw(query,
		lsn.Title, lsn.Subject, lsn.Content, lsn.Published, r.clock(), lsn.ID,
	).ExecContext(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.lesson.repository.postgres.Update.Exec: %v", err)
		return model.Lesson{}, err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return model.Lesson{}, repository.ErrNotFound
	}

	return r.Detail(ctx, sc, lsn.ID)
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.lesson.repository.postgres.Delete.IsUUID: %v", err)
		return err
	}

	query := `UPDATE lessons SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`
	res, err := queries.Raw(query, r.clock(), id).ExecContext(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.lesson.repository.postgres.Delete.Exec: %v", err)
		return err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}
