package http

import (
	"classhub-api/internal/model"
	"classhub-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// DetailMe returns the caller's profile.
// @Summary Get my profile
// @Description Return the authenticated user's profile.
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Resp{data=profileResp}
// @Failure 401 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/users/me [GET]
func (h *Handler) DetailMe(c *gin.Context) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		response.Unauthorized(c)
		return
	}

	out, err := h.uc.DetailMe(c.Request.Context(), sc)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newProfileResp(out.User))
}

// UpdateProfile updates the caller's display name.
// @Summary Update my profile
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body updateProfileReq true "Profile payload"
// @Success 200 {object} response.Resp{data=profileResp}
// @Failure 400 {object} response.Resp
// @Router /api/v1/users/me [PUT]
func (h *Handler) UpdateProfile(c *gin.Context) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		response.Unauthorized(c)
		return
	}

	ip, err := h.processUpdateProfileRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.UpdateProfile(c.Request.Context(), sc, ip)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newProfileResp(out.User))
}

// UploadAvatar stores a new avatar image and updates the profile URL.
// @Summary Upload my avatar
// @Tags User
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} response.Resp{data=profileResp}
// @Failure 400 {object} response.Resp
// @Router /api/v1/users/me/avatar [POST]
func (h *Handler) UploadAvatar(c *gin.Context) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		response.Unauthorized(c)
		return
	}

	ip, err := h.processUploadAvatarRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.UploadAvatar(c.Request.Context(), sc, ip)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newProfileResp(out.User))
}

// Get lists users with pagination. Admin only, enforced by the gate.
// @Summary List users
// @Tags User
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param role query string false "Filter by role"
// @Param search query string false "Search name or email"
// @Success 200 {object} response.Resp{data=listResp}
// @Failure 403 {object} response.Resp
// @Router /api/v1/admin/users [GET]
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
