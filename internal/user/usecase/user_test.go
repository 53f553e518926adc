package usecase

import (
	"context"
	"strings"
	"testing"

	"classhub-api/internal/model"
	"classhub-api/internal/user"
	"classhub-api/internal/user/repository"
	"classhub-api/pkg/paginator"

	pkgMinio "classhub-api/pkg/minio"

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

type memRepo struct {
	byID map[string]model.User
}

func (m *memRepo) Detail(_ context.Context, _ model.Scope, id string) (model.User, error) {
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return model.User{}, repository.ErrNotFound
}

func (m *memRepo) GetOne(_ context.Context, _ model.Scope, opts repository.GetOneOptions) (model.User, error) {
	if u, ok := m.byID[opts.ID]; ok {
		return u, nil
	}
	return model.User{}, repository.ErrNotFound
}

func (m *memRepo) Get(_ context.Context, _ model.Scope, _ repository.GetOptions) ([]model.User, paginator.Paginator, error) {
	var users []model.User
	for _, u := range m.byID {
		users = append(users, u)
	}
	return users, paginator.Paginator{Total: int64(len(users)), Count: int64(len(users)), PerPage: 15, CurrentPage: 1}, nil
}

func (m *memRepo) Create(_ context.Context, _ model.Scope, opts repository.CreateOptions) (model.User, error) {
	m.byID[opts.User.ID] = opts.User
	return opts.User, nil
}

func (m *memRepo) Update(_ context.Context, _ model.Scope, opts repository.UpdateOptions) (model.User, error) {
	if _, ok := m.byID[opts.User.ID]; !ok {
		return model.User{}, repository.ErrNotFound
	}
	m.byID[opts.User.ID] = opts.User
	return opts.User, nil
}

func (m *memRepo) Delete(_ context.Context, _ model.Scope, id string) error {
	delete(m.byID, id)
	return nil
}

// mockStorage records uploads and returns a deterministic URL.
type mockStorage struct {
	uploads []pkgMinio.UploadRequest
}

func (m *mockStorage) HealthCheck(_ context.Context) error                { return nil }
func (m *mockStorage) EnsureBucket(_ context.Context, _ string) error     { return nil }
func (m *mockStorage) Remove(_ context.Context, _ string, _ string) error { return nil }
func (m *mockStorage) Close() error                                       { return nil }

func (m *mockStorage) Upload(_ context.Context, req pkgMinio.UploadRequest) (*pkgMinio.FileInfo, error) {
	m.uploads = append(m.uploads, req)
	return &pkgMinio.FileInfo{
		BucketName: req.BucketName,
		ObjectName: req.ObjectName,
		Size:       req.Size,
		URL:        "https://cdn.classhub.test/" + req.BucketName + "/" + req.ObjectName,
	}, nil
}

const testUserID = "11111111-1111-1111-1111-111111111111"

func newTestUsecase() (user.UseCase, *memRepo, *mockStorage) {
	repo := &memRepo{byID: map[string]model.User{
		testUserID: {
			ID:    testUserID,
			Name:  "Student One",
			Email: "s@classhub.edu",
			Role:  model.RoleStudent,
		},
	}}
	storage := &mockStorage{}
	return New(noopLogger{}, repo, storage, "avatars"), repo, storage
}

func testScope() model.Scope {
	return model.Scope{UserID: testUserID, Email: "s@classhub.edu", Role: model.RoleStudent}
}

func TestDetailMe(t *testing.T) {
	uc, _, _ := newTestUsecase()

	out, err := uc.DetailMe(context.Background(), testScope())
	require.NoError(t, err)
	require.Equal(t, "s@classhub.edu", out.User.Email)
}

func TestDetailMeGone(t *testing.T) {
	uc, repo, _ := newTestUsecase()
	delete(repo.byID, testUserID)

	_, err := uc.DetailMe(context.Background(), testScope())
	require.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	uc, repo, _ := newTestUsecase()

	out, err := uc.UpdateProfile(context.Background(), testScope(), user.UpdateProfileInput{Name: "Renamed"})
	require.NoError(t, err)
	require.Equal(t, "Renamed", out.User.Name)
	require.Equal(t, "Renamed", repo.byID[testUserID].Name)
}

func TestUploadAvatar(t *testing.T) {
	uc, repo, storage := newTestUsecase()

	out, err := uc.UploadAvatar(context.Background(), testScope(), user.UploadAvatarInput{
		FileName:    "me.png",
		ContentType: "image/png",
		Size:        1024,
		Reader:      strings.NewReader("not-really-a-png"),
	})
	require.NoError(t, err)
	require.Len(t, storage.uploads, 1)
	require.Equal(t, "avatars", storage.uploads[0].BucketName)
	require.NotNil(t, out.User.AvatarURL)
	require.Contains(t, *out.User.AvatarURL, "https://cdn.classhub.test/avatars/")
	require.NotNil(t, repo.byID[testUserID].AvatarURL)
}

func TestUploadAvatarRejectsNonImage(t *testing.T) {
	uc, _, storage := newTestUsecase()

	_, err := uc.UploadAvatar(context.Background(), testScope(), user.UploadAvatarInput{
		FileName:    "notes.pdf",
		ContentType: "application/pdf",
		Size:        1024,
		Reader:      strings.NewReader("pdf"),
	})
	require.ErrorIs(t, err, user.ErrInvalidAvatar)
	require.Empty(t, storage.uploads)
}

func TestUploadAvatarRejectsOversize(t *testing.T) {
	uc, _, _ := newTestUsecase()

	_, err := uc.UploadAvatar(context.Background(), testScope(), user.UploadAvatarInput{
		FileName:    "huge.png",
		ContentType: "image/png",
		Size:        6 << 20,
		Reader:      strings.NewReader("huge"),
	})
	require.ErrorIs(t, err, user.ErrInvalidAvatar)
}
