package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the auth routes. None of them sit behind the
// authorization gate: refresh and logout authenticate via the refresh cookie,
// not the access token.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/logout", h.Logout)
	}
}
