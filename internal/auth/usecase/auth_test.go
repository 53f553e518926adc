package usecase

import (
	"context"
	"testing"
	"time"

	"classhub-api/internal/auth"
	"classhub-api/internal/model"
	"classhub-api/internal/user/repository"
	"classhub-api/pkg/encrypter"
	"classhub-api/pkg/paginator"
	"classhub-api/pkg/token"

	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                     {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Info(ctx context.Context, arg ...any)                      {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)    {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                      {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)    {}
func (noopLogger) Error(ctx context.Context, arg ...any)                     {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) DPanic(ctx context.Context, arg ...any)                    {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Panic(ctx context.Context, arg ...any)                     {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                     {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any)   {}

// memRepo is an in-memory user repository keyed by email.
type memRepo struct {
	byEmail map[string]model.User
	nextID  int
}

func newMemRepo() *memRepo {
	return &memRepo{byEmail: map[string]model.User{}}
}

func (m *memRepo) GetOne(_ context.Context, _ model.Scope, opts repository.GetOneOptions) (model.User, error) {
	if opts.ID != "" {
		for _, u := range m.byEmail {
			if u.ID == opts.ID {
				return u, nil
			}
		}
		return model.User{}, repository.ErrNotFound
	}
	if u, ok := m.byEmail[opts.Email]; ok {
		return u, nil
	}
	return model.User{}, repository.ErrNotFound
}

func (m *memRepo) Detail(ctx context.Context, sc model.Scope, id string) (model.User, error) {
	return m.GetOne(ctx, sc, repository.GetOneOptions{ID: id})
}

func (m *memRepo) Get(_ context.Context, _ model.Scope, _ repository.GetOptions) ([]model.User, paginator.Paginator, error) {
	return nil, paginator.Paginator{}, nil
}

func (m *memRepo) Create(_ context.Context, _ model.Scope, opts repository.CreateOptions) (model.User, error) {
	if _, ok := m.byEmail[opts.User.Email]; ok {
		return model.User{}, repository.ErrEmailTaken
	}
	u := opts.User
	if u.ID == "" {
		m.nextID++
		u.ID = testUUID(m.nextID)
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	m.byEmail[u.Email] = u
	return u, nil
}

func (m *memRepo) Update(_ context.Context, _ model.Scope, opts repository.UpdateOptions) (model.User, error) {
	m.byEmail[opts.User.Email] = opts.User
	return opts.User, nil
}

func (m *memRepo) Delete(_ context.Context, _ model.Scope, id string) error {
	for email, u := range m.byEmail {
		if u.ID == id {
			delete(m.byEmail, email)
			return nil
		}
	}
	return repository.ErrNotFound
}

func testUUID(n int) string {
	return "00000000-0000-0000-0000-" + string(rune('a'+n-1)) + "00000000000"
}

func newTestCodec(t *testing.T) *token.Codec {
	t.Helper()
	codec, err := token.New(token.Config{
		AccessSecret:  "access-secret-0123456789-0123456789",
		RefreshSecret: "refresh-secret-0123456789-0123456789",
		Issuer:        "classhub-api-test",
	})
	require.NoError(t, err)
	return codec
}

func seedUser(t *testing.T, repo *memRepo, email, password, role string) model.User {
	t.Helper()
	hash, err := encrypter.HashPassword(password)
	require.NoError(t, err)
	active := true
	u, err := repo.Create(context.Background(), model.Scope{}, repository.CreateOptions{
		User: model.User{
			Name:         "Seeded User",
			Email:        email,
			Role:         role,
			PasswordHash: &hash,
			IsActive:     &active,
		},
	})
	require.NoError(t, err)
	return u
}

func TestLoginSuccess(t *testing.T) {
	repo := newMemRepo()
	codec := newTestCodec(t)
	uc := New(noopLogger{}, repo, codec)

	seedUser(t, repo, "s@classhub.edu", "correct-horse", model.RoleStudent)

	out, err := uc.Login(context.Background(), auth.LoginInput{Email: "s@classhub.edu", Password: "correct-horse"})
	require.NoError(t, err)
	require.NotEmpty(t, out.AccessToken)
	require.NotEmpty(t, out.RefreshToken)
	require.Equal(t, "s@classhub.edu", out.User.Email)

	claims, err := codec.VerifyAccess(out.AccessToken)
	require.NoError(t, err)
	require.Equal(t, model.RoleStudent, claims.Role)
}

func TestLoginFailuresCollapse(t *testing.T) {
	repo := newMemRepo()
	uc := New(noopLogger{}, repo, newTestCodec(t))

	seedUser(t, repo, "s@classhub.edu", "correct-horse", model.RoleStudent)

	// Unknown email and wrong password must be indistinguishable.
	_, err := uc.Login(context.Background(), auth.LoginInput{Email: "nobody@classhub.edu", Password: "whatever"})
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = uc.Login(context.Background(), auth.LoginInput{Email: "s@classhub.edu", Password: "wrong"})
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	repo := newMemRepo()
	uc := New(noopLogger{}, repo, newTestCodec(t))

	u := seedUser(t, repo, "s@classhub.edu", "correct-horse", model.RoleStudent)
	inactive := false
	u.IsActive = &inactive
	repo.byEmail[u.Email] = u

	_, err := uc.Login(context.Background(), auth.LoginInput{Email: "s@classhub.edu", Password: "correct-horse"})
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newMemRepo()
	uc := New(noopLogger{}, repo, newTestCodec(t))

	seedUser(t, repo, "s@classhub.edu", "correct-horse", model.RoleStudent)

	_, err := uc.Register(context.Background(), auth.RegisterInput{
		Name:     "Dup",
		Email:    "s@classhub.edu",
		Password: "password123",
	})
	require.ErrorIs(t, err, auth.ErrEmailExists)
}

func TestRegisterDefaultsToStudent(t *testing.T) {
	repo := newMemRepo()
	uc := New(noopLogger{}, repo, newTestCodec(t))

	out, err := uc.Register(context.Background(), auth.RegisterInput{
		Name:     "New Student",
		Email:    "n@classhub.edu",
		Password: "password123",
	})
	require.NoError(t, err)
	require.Equal(t, model.RoleStudent, out.User.Role)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	repo := newMemRepo()
	uc := New(noopLogger{}, repo, newTestCodec(t))

	_, err := uc.Register(context.Background(), auth.RegisterInput{
		Name:     "X",
		Email:    "x@classhub.edu",
		Password: "password123",
		Role:     "superuser",
	})
	require.ErrorIs(t, err, auth.ErrInvalidRole)
}

func TestRefreshRotatesPair(t *testing.T) {
	repo := newMemRepo()
	codec := newTestCodec(t)
	uc := New(noopLogger{}, repo, codec)

	seedUser(t, repo, "s@classhub.edu", "correct-horse", model.RoleStudent)

	first, err := uc.Login(context.Background(), auth.LoginInput{Email: "s@classhub.edu", Password: "correct-horse"})
	require.NoError(t, err)

	out, err := uc.Refresh(context.Background(), first.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, out.AccessToken)
	require.NotEmpty(t, out.RefreshToken)

	// The new pair must verify; the rotation re-reads the identity.
	_, err = codec.VerifyAccess(out.AccessToken)
	require.NoError(t, err)
	_, err = codec.VerifyRefresh(out.RefreshToken)
	require.NoError(t, err)
}

func TestRefreshPicksUpRoleChange(t *testing.T) {
	repo := newMemRepo()
	codec := newTestCodec(t)
	uc := New(noopLogger{}, repo, codec)

	u := seedUser(t, repo, "s@classhub.edu", "correct-horse", model.RoleStudent)

	first, err := uc.Login(context.Background(), auth.LoginInput{Email: "s@classhub.edu", Password: "correct-horse"})
	require.NoError(t, err)

	u.Role = model.RoleTeacher
	repo.byEmail[u.Email] = u

	out, err := uc.Refresh(context.Background(), first.RefreshToken)
	require.NoError(t, err)

	claims, err := codec.VerifyAccess(out.AccessToken)
	require.NoError(t, err)
	require.Equal(t, model.RoleTeacher, claims.Role)
}

func TestRefreshInvalidToken(t *testing.T) {
	repo := newMemRepo()
	uc := New(noopLogger{}, repo, newTestCodec(t))

	_, err := uc.Refresh(context.Background(), "garbage")
	require.ErrorIs(t, err, auth.ErrInvalidRefreshToken)

	_, err = uc.Refresh(context.Background(), "")
	require.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	repo := newMemRepo()
	codec := newTestCodec(t)
	uc := New(noopLogger{}, repo, codec)

	u := seedUser(t, repo, "s@classhub.edu", "correct-horse", model.RoleStudent)
	access, err := codec.IssueAccess(token.Identity{ID: u.ID, Email: u.Email, Role: u.Role})
	require.NoError(t, err)

	_, err = uc.Refresh(context.Background(), access)
	require.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
}

func TestRefreshIdentityGone(t *testing.T) {
	repo := newMemRepo()
	codec := newTestCodec(t)
	uc := New(noopLogger{}, repo, codec)

	u := seedUser(t, repo, "s@classhub.edu", "correct-horse", model.RoleStudent)

	first, err := uc.Login(context.Background(), auth.LoginInput{Email: "s@classhub.edu", Password: "correct-horse"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(context.Background(), model.Scope{}, u.ID))

	_, err = uc.Refresh(context.Background(), first.RefreshToken)
	require.ErrorIs(t, err, auth.ErrUserNotFound)
}
