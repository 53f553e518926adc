package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the lesson routes. The gate requires any
// authenticated role under this prefix; authorship checks on mutations
// happen in the usecase.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	lessons := r.Group("/lessons")
	{
		lessons.GET("", h.Get)
		lessons.GET("/:id", h.Detail)
		lessons.POST("", h.Create)
		lessons.PUT("/:id", h.Update)
		lessons.DELETE("/:id", h.Delete)
	}
}
