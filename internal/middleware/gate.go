package middleware

import (
	"net/http"
	"strings"

	"classhub-api/internal/model"
	"classhub-api/pkg/errors"
	"classhub-api/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	// Identity headers injected for downstream handlers after a successful check.
	HeaderUserID    = "x-user-id"
	HeaderUserEmail = "x-user-email"
	HeaderUserRole  = "x-user-role"

	msgTokenMissing = "Token missing"
	msgTokenInvalid = "Invalid or expired token"
)

// Gate returns a middleware that enforces the role allowlist on matching
// paths. Paths outside the allowlist pass through untouched. A missing
// credential is a 401; an invalid or expired one is a 403 — the two cases
// are kept distinct on purpose.
func (m Middleware) Gate() gin.HandlerFunc {
	return func(c *gin.Context) {
		rule, matched := m.rules.Match(c.Request.URL.Path)
		if !matched {
			c.Next()
			return
		}

		tokenString := extractBearer(c.GetHeader("Authorization"))
		if tokenString == "" {
			m.l.Warnf(c.Request.Context(), "internal.middleware.Gate: missing credential | Path: %s", c.Request.URL.Path)
			response.HttpError(c, errors.NewHTTPError(http.StatusUnauthorized, msgTokenMissing))
			c.Abort()
			return
		}

		claims, err := m.codec.VerifyAccess(tokenString)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "internal.middleware.Gate: verify failed | Path: %s", c.Request.URL.Path)
			response.HttpError(c, errors.NewHTTPError(http.StatusForbidden, msgTokenInvalid))
			c.Abort()
			return
		}

		if !rule.Allows(claims.Role) {
			m.l.Warnf(c.Request.Context(), "internal.middleware.Gate: role %q not allowed | Path: %s", claims.Role, c.Request.URL.Path)
			response.HttpError(c, errors.NewHTTPError(http.StatusForbidden, requiredRolesMessage(rule.Roles)))
			c.Abort()
			return
		}

		c.Request.Header.Set(HeaderUserID, claims.Subject)
		c.Request.Header.Set(HeaderUserEmail, claims.Email)
		c.Request.Header.Set(HeaderUserRole, claims.Role)

		ctx := model.SetScopeToContext(c.Request.Context(), model.Scope{
			UserID: claims.Subject,
			Email:  claims.Email,
			Role:   claims.Role,
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func extractBearer(authHeader string) string {
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(authHeader[len(bearerPrefix):])
}

func requiredRolesMessage(roles []string) string {
	return "Access denied. Required role: " + strings.Join(roles, " or ")
}
