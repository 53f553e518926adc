package usecase

import (
	"context"
	"testing"
	"time"

	"classhub-api/internal/lesson"
	"classhub-api/internal/lesson/repository"
	"classhub-api/internal/model"
	"classhub-api/pkg/paginator"
	pkgRedis "classhub-api/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Info(ctx context.Context, arg ...any)                     {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Error(ctx context.Context, arg ...any)                    {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// memCache is an in-memory stand-in for the Redis wrapper.
type memCache struct {
	data map[string]string
}

func newMemCache() *memCache {
	return &memCache{data: map[string]string{}}
}

func (m *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	m.data[key] = value.(string)
	return nil
}

func (m *memCache) Get(_ context.Context, key string) (string, error) {
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return "", pkgRedis.ErrNotFound
}

func (m *memCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memCache) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

func (m *memCache) TTL(_ context.Context, _ string) (time.Duration, error) { return 0, nil }
func (m *memCache) Ping(_ context.Context) error                           { return nil }
func (m *memCache) Close() error                                           { return nil }
func (m *memCache) GetClient() *goredis.Client                             { return nil }

// memLessonRepo counts Get calls so cache behavior is observable.
type memLessonRepo struct {
	byID     map[string]model.Lesson
	getCalls int
	nextID   int
}

func newMemLessonRepo() *memLessonRepo {
	return &memLessonRepo{byID: map[string]model.Lesson{}}
}

func (m *memLessonRepo) Get(_ context.Context, _ model.Scope, opts repository.GetOptions) ([]model.Lesson, paginator.Paginator, error) {
	m.getCalls++
	var lessons []model.Lesson
	for _, l := range m.byID {
		if opts.Filter.Subject != "" && l.Subject != opts.Filter.Subject {
			continue
		}
		lessons = append(lessons, l)
	}
	return lessons, paginator.Paginator{
		Total:       int64(len(lessons)),
		Count:       int64(len(lessons)),
		PerPage:     15,
		CurrentPage: 1,
	}, nil
}

func (m *memLessonRepo) Detail(_ context.Context, _ model.Scope, id string) (model.Lesson, error) {
	if l, ok := m.byID[id]; ok {
		return l, nil
	}
	return model.Lesson{}, repository.ErrNotFound
}

func (m *memLessonRepo) Create(_ context.Context, _ model.Scope, opts repository.CreateOptions) (model.Lesson, error) {
	l := opts.Lesson
	if l.ID == "" {
		m.nextID++
		l.ID = testLessonID(m.nextID)
	}
	m.byID[l.ID] = l
	return l, nil
}

func (m *memLessonRepo) Update(_ context.Context, _ model.Scope, opts repository.UpdateOptions) (model.Lesson, error) {
	if _, ok := m.byID[opts.Lesson.ID]; !ok {
		return model.Lesson{}, repository.ErrNotFound
	}
	m.byID[opts.Lesson.ID] = opts.Lesson
	return opts.Lesson, nil
}

func (m *memLessonRepo) Delete(_ context.Context, _ model.Scope, id string) error {
	if _, ok := m.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func testLessonID(n int) string {
	ids := []string{
		"aaaaaaaa-0000-0000-0000-000000000001",
		"aaaaaaaa-0000-0000-0000-000000000002",
		"aaaaaaaa-0000-0000-0000-000000000003",
	}
	return ids[(n-1)%len(ids)]
}

var (
	teacherScope = model.Scope{UserID: "bbbbbbbb-0000-0000-0000-000000000001", Email: "t@classhub.edu", Role: model.RoleTeacher}
	studentScope = model.Scope{UserID: "bbbbbbbb-0000-0000-0000-000000000002", Email: "s@classhub.edu", Role: model.RoleStudent}
	adminScope   = model.Scope{UserID: "bbbbbbbb-0000-0000-0000-000000000003", Email: "a@classhub.edu", Role: model.RoleAdmin}
)

func TestStudentCannotCreate(t *testing.T) {
	uc := New(noopLogger{}, newMemLessonRepo(), newMemCache())

	_, err := uc.Create(context.Background(), studentScope, lesson.CreateInput{Title: "T", Subject: "math"})
	require.ErrorIs(t, err, lesson.ErrForbidden)
}

func TestTeacherOwnsOwnLessons(t *testing.T) {
	repo := newMemLessonRepo()
	uc := New(noopLogger{}, repo, newMemCache())

	out, err := uc.Create(context.Background(), teacherScope, lesson.CreateInput{Title: "Fractions", Subject: "math"})
	require.NoError(t, err)
	require.Equal(t, teacherScope.UserID, out.Lesson.AuthorID)

	// Another teacher cannot touch it.
	other := model.Scope{UserID: "bbbbbbbb-0000-0000-0000-000000000009", Role: model.RoleTeacher}
	newTitle := "Hijacked"
	_, err = uc.Update(context.Background(), other, lesson.UpdateInput{ID: out.Lesson.ID, Title: &newTitle})
	require.ErrorIs(t, err, lesson.ErrForbidden)

	err = uc.Delete(context.Background(), other, out.Lesson.ID)
	require.ErrorIs(t, err, lesson.ErrForbidden)

	// Admin can.
	_, err = uc.Update(context.Background(), adminScope, lesson.UpdateInput{ID: out.Lesson.ID, Title: &newTitle})
	require.NoError(t, err)
}

func TestDetailNotFound(t *testing.T) {
	uc := New(noopLogger{}, newMemLessonRepo(), newMemCache())

	_, err := uc.Detail(context.Background(), studentScope, "aaaaaaaa-0000-0000-0000-0000000000ff")
	require.ErrorIs(t, err, lesson.ErrLessonNotFound)
}

func TestListIsCached(t *testing.T) {
	repo := newMemLessonRepo()
	uc := New(noopLogger{}, repo, newMemCache())

	_, err := uc.Create(context.Background(), teacherScope, lesson.CreateInput{Title: "Fractions", Subject: "math"})
	require.NoError(t, err)

	ip := lesson.GetInput{}
	first, err := uc.Get(context.Background(), studentScope, ip)
	require.NoError(t, err)
	require.Len(t, first.Lessons, 1)
	require.Equal(t, 1, repo.getCalls)

	// Second identical read is a cache hit.
	second, err := uc.Get(context.Background(), studentScope, ip)
	require.NoError(t, err)
	require.Equal(t, first.Lessons[0].ID, second.Lessons[0].ID)
	require.Equal(t, 1, repo.getCalls)
}

func TestMutationInvalidatesListCache(t *testing.T) {
	repo := newMemLessonRepo()
	uc := New(noopLogger{}, repo, newMemCache())

	_, err := uc.Create(context.Background(), teacherScope, lesson.CreateInput{Title: "Fractions", Subject: "math"})
	require.NoError(t, err)

	ip := lesson.GetInput{}
	_, err = uc.Get(context.Background(), studentScope, ip)
	require.NoError(t, err)
	require.Equal(t, 1, repo.getCalls)

	// Create bumps the cache generation, so the next read misses.
	_, err = uc.Create(context.Background(), teacherScope, lesson.CreateInput{Title: "Decimals", Subject: "math"})
	require.NoError(t, err)

	out, err := uc.Get(context.Background(), studentScope, ip)
	require.NoError(t, err)
	require.Len(t, out.Lessons, 2)
	require.Equal(t, 2, repo.getCalls)
}

func TestDistinctQueriesDistinctCacheKeys(t *testing.T) {
	repo := newMemLessonRepo()
	uc := New(noopLogger{}, repo, newMemCache())

	_, err := uc.Create(context.Background(), teacherScope, lesson.CreateInput{Title: "Fractions", Subject: "math"})
	require.NoError(t, err)

	_, err = uc.Get(context.Background(), studentScope, lesson.GetInput{Filter: lesson.Filter{Subject: "math"}})
	require.NoError(t, err)
	_, err = uc.Get(context.Background(), studentScope, lesson.GetInput{Filter: lesson.Filter{Subject: "science"}})
	require.NoError(t, err)
	require.Equal(t, 2, repo.getCalls)
}
