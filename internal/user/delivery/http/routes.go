package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the user routes. Role enforcement happens in the
// boundary gate, keyed on these path prefixes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.GET("/me", h.DetailMe)
		users.PUT("/me", h.UpdateProfile)
		users.POST("/me/avatar", h.UploadAvatar)
	}

	admin := r.Group("/admin")
	{
		admin.GET("/users", h.Get)
	}
}
