package http

import (
	"net/http"

	"classhub-api/internal/auth"
	"classhub-api/pkg/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processRegisterRequest(c *gin.Context) (auth.RegisterInput, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.auth.delivery.http.processRegisterRequest.ShouldBindJSON: %v", err)
		return auth.RegisterInput{}, errors.NewValidationError(http.StatusBadRequest, "body", "invalid request body")
	}
	if err := req.validate(); err != nil {
		return auth.RegisterInput{}, err
	}
	return req.toInput(), nil
}

func (h *Handler) processLoginRequest(c *gin.Context) (auth.LoginInput, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.auth.delivery.http.processLoginRequest.ShouldBindJSON: %v", err)
		return auth.LoginInput{}, errors.NewValidationError(http.StatusBadRequest, "body", "invalid request body")
	}
	if err := req.validate(); err != nil {
		return auth.LoginInput{}, err
	}
	return req.toInput(), nil
}
