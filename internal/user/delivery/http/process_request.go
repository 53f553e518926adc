package http

import (
	"net/http"
	"strings"

	"classhub-api/internal/user"
	"classhub-api/pkg/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processUpdateProfileRequest(c *gin.Context) (user.UpdateProfileInput, error) {
	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.user.delivery.http.processUpdateProfileRequest.ShouldBindJSON: %v", err)
		return user.UpdateProfileInput{}, errors.NewValidationError(http.StatusBadRequest, "body", "invalid request body")
	}
	if strings.TrimSpace(req.Name) == "" {
		return user.UpdateProfileInput{}, errors.NewValidationError(http.StatusBadRequest, "name", "name is required")
	}
	return req.toInput(), nil
}

func (h *Handler) processUploadAvatarRequest(c *gin.Context) (user.UploadAvatarInput, error) {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		h.l.Warnf(c.Request.Context(), "internal.user.delivery.http.processUploadAvatarRequest.FormFile: %v", err)
		return user.UploadAvatarInput{}, errors.NewValidationError(http.StatusBadRequest, "avatar", "avatar file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.l.Errorf(c.Request.Context(), "internal.user.delivery.http.processUploadAvatarRequest.Open: %v", err)
		return user.UploadAvatarInput{}, errors.NewValidationError(http.StatusBadRequest, "avatar", "avatar file is unreadable")
	}

	return user.UploadAvatarInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
	}, nil
}

func (h *Handler) processGetRequest(c *gin.Context) (user.GetInput, error) {
	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.user.delivery.http.processGetRequest.ShouldBindQuery: %v", err)
		return user.GetInput{}, errors.NewValidationError(http.StatusBadRequest, "query", "invalid query parameters")
	}
	return req.toInput(), nil
}
