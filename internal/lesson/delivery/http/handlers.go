package http

import (
	"classhub-api/internal/model"
	"classhub-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// Get lists lessons with pagination. Served from the Redis cache when warm.
// @Summary List lessons
// @Tags Lesson
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param subject query string false "Filter by subject"
// @Param author_id query string false "Filter by author"
// @Success 200 {object} response.Resp{data=listResp}
// @Router /api/v1/lessons [GET]
func (h *Handler) Get(c *gin.Context) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		response.Unauthorized(c)
		return
	}

	ip, err := h.processGetRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Get(c.Request.Context(), sc, ip)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newListResp(out))
}

// Detail returns a single lesson.
// @Summary Get a lesson
// @Tags Lesson
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Success 200 {object} response.Resp{data=lessonResp}
// @Failure 404 {object} response.Resp
// @Router /api/v1/lessons/{id} [GET]
func (h *Handler) Detail(c *gin.Context) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		response.Unauthorized(c)
		return
	}

	out, err := h.uc.Detail(c.Request.Context(), sc, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newLessonResp(out.Lesson))
}

// Create adds a lesson authored by the caller.
// @Summary Create a lesson
// @Tags Lesson
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body createReq true "Lesson payload"
// @Success 200 {object} response.Resp{data=lessonResp}
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /api/v1/lessons [POST]
func (h *Handler) Create(c *gin.Context) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		response.Unauthorized(c)
		return
	}

	ip, err := h.processCreateRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Create(c.Request.Context(), sc, ip)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newLessonResp(out.Lesson))
}

// Update modifies a lesson the caller owns.
// @Summary Update a lesson
// @Tags Lesson
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Param body body updateReq true "Fields to update"
// @Success 200 {object} response.Resp{data=lessonResp}
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/lessons/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		response.Unauthorized(c)
		return
	}

	ip, err := h.processUpdateRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Update(c.Request.Context(), sc, ip)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newLessonResp(out.Lesson))
}

// Delete soft-deletes a lesson the caller owns.
// @Summary Delete a lesson
// @Tags Lesson
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Success 200 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/lessons/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Delete(c.Request.Context(), sc, c.Param("id")); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
