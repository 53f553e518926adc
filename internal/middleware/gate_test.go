package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"classhub-api/internal/model"
	"classhub-api/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Info(ctx context.Context, arg ...any)                    {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                    {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Error(ctx context.Context, arg ...any)                   {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) DPanic(ctx context.Context, arg ...any)                  {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any) {
}
func (noopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

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

type gateBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func newGateRouter(t *testing.T, codec *token.Codec) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := New(noopLogger{}, codec, DefaultAllowlist())

	r := gin.New()
	r.Use(m.Gate())

	echo := func(c *gin.Context) {
		sc, _ := model.GetScopeFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"id":    c.GetHeader(HeaderUserID),
			"email": c.GetHeader(HeaderUserEmail),
			"role":  c.GetHeader(HeaderUserRole),
			"scope": sc,
		})
	}
	r.GET("/api/v1/admin/users", echo)
	r.GET("/api/v1/users/me", echo)
	r.GET("/api/v1/users", echo)
	r.GET("/api/v1/lessons", echo)
	r.POST("/api/v1/auth/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"public": true})
	})
	return r
}

func doGateRequest(r *gin.Engine, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGatePassesThroughUnprotectedPaths(t *testing.T) {
	r := newGateRouter(t, newTestCodec(t))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestGateMissingTokenIs401(t *testing.T) {
	r := newGateRouter(t, newTestCodec(t))

	w := doGateRequest(r, "/api/v1/users/me", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body gateBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.False(t, body.Success)
	require.Equal(t, "Token missing", body.Message)
}

func TestGateMalformedAuthorizationIs401(t *testing.T) {
	r := newGateRouter(t, newTestCodec(t))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.Header.Set("Authorization", "Basic abcdef")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGateInvalidTokenIs403(t *testing.T) {
	r := newGateRouter(t, newTestCodec(t))

	w := doGateRequest(r, "/api/v1/users/me", "not-a-real-token")
	require.Equal(t, http.StatusForbidden, w.Code)

	var body gateBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Invalid or expired token", body.Message)
}

func TestGateRejectsRefreshTokenAtBoundary(t *testing.T) {
	codec := newTestCodec(t)
	r := newGateRouter(t, codec)

	refresh, err := codec.IssueRefresh(token.Identity{ID: "u1", Email: "a@classhub.edu", Role: model.RoleAdmin})
	require.NoError(t, err)

	w := doGateRequest(r, "/api/v1/users/me", refresh)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestGateInsufficientRoleIs403NamingRoles(t *testing.T) {
	codec := newTestCodec(t)
	r := newGateRouter(t, codec)

	access, err := codec.IssueAccess(token.Identity{ID: "u1", Email: "s@classhub.edu", Role: model.RoleStudent})
	require.NoError(t, err)

	w := doGateRequest(r, "/api/v1/admin/users", access)
	require.Equal(t, http.StatusForbidden, w.Code)

	var body gateBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Contains(t, body.Message, "admin")
}

func TestGateFirstMatchOrder(t *testing.T) {
	codec := newTestCodec(t)
	r := newGateRouter(t, codec)

	// /api/v1/users/me must match its own rule, not the stricter /api/v1/users one.
	access, err := codec.IssueAccess(token.Identity{ID: "u1", Email: "s@classhub.edu", Role: model.RoleStudent})
	require.NoError(t, err)

	w := doGateRequest(r, "/api/v1/users/me", access)
	require.Equal(t, http.StatusOK, w.Code)

	w = doGateRequest(r, "/api/v1/users", access)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestGateInjectsIdentity(t *testing.T) {
	codec := newTestCodec(t)
	r := newGateRouter(t, codec)

	access, err := codec.IssueAccess(token.Identity{ID: "u42", Email: "t@classhub.edu", Role: model.RoleTeacher})
	require.NoError(t, err)

	w := doGateRequest(r, "/api/v1/lessons", access)
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		ID    string      `json:"id"`
		Email string      `json:"email"`
		Role  string      `json:"role"`
		Scope model.Scope `json:"scope"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "u42", got.ID)
	require.Equal(t, "t@classhub.edu", got.Email)
	require.Equal(t, model.RoleTeacher, got.Role)
	require.Equal(t, "u42", got.Scope.UserID)
}
