package http

import (
	"net/http"
	"strings"

	"classhub-api/internal/lesson"
	"classhub-api/pkg/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processCreateRequest(c *gin.Context) (lesson.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.lesson.delivery.http.processCreateRequest.ShouldBindJSON: %v", err)
		return lesson.CreateInput{}, errors.NewValidationError(http.StatusBadRequest, "body", "invalid request body")
	}

	collector := errors.NewValidationErrorCollector()
	if strings.TrimSpace(req.Title) == "" {
		collector.Add(errors.NewValidationError(http.StatusBadRequest, "title", "title is required"))
	}
	if strings.TrimSpace(req.Subject) == "" {
		collector.Add(errors.NewValidationError(http.StatusBadRequest, "subject", "subject is required"))
	}
	if collector.HasError() {
		return lesson.CreateInput{}, collector
	}

	return req.toInput(), nil
}

func (h *Handler) processUpdateRequest(c *gin.Context) (lesson.UpdateInput, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.lesson.delivery.http.processUpdateRequest.ShouldBindJSON: %v", err)
		return lesson.UpdateInput{}, errors.NewValidationError(http.StatusBadRequest, "body", "invalid request body")
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return lesson.UpdateInput{}, errors.NewValidationError(http.StatusBadRequest, "title", "title cannot be empty")
	}

	return req.toInput(c.Param("id")), nil
}

func (h *Handler) processGetRequest(c *gin.Context) (lesson.GetInput, error) {
	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.lesson.delivery.http.processGetRequest.ShouldBindQuery: %v", err)
		return lesson.GetInput{}, errors.NewValidationError(http.StatusBadRequest, "query", "invalid query parameters")
	}
	return req.toInput(), nil
}
