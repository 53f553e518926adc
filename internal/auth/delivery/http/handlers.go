package http

import (
	"net/http"
	"time"

	"classhub-api/internal/auth"
	"classhub-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// Register creates a new account and signs the caller in.
// @Summary Register a new user
// @Description Create an account and receive a signed-in session.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body registerReq true "Registration payload"
// @Success 200 {object} response.Resp{data=loginResp}
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/auth/register [POST]
func (h *Handler) Register(c *gin.Context) {
	ip, err := h.processRegisterRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Register(c.Request.Context(), ip)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.setCredentialCookies(c, out)
	response.OK(c, newLoginResp(out))
}

// Login authenticates a user by email and password.
// @Summary Log in
// @Description Authenticate with email and password. Sets the session cookies.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body loginReq true "Login payload"
// @Success 200 {object} response.Resp{data=loginResp}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	ip, err := h.processLoginRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Login(c.Request.Context(), ip)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.setCredentialCookies(c, out)
	response.OK(c, newLoginResp(out))
}

// Refresh rotates the credential pair using the refresh cookie.
// @Summary Refresh the session
// @Description Rotate access and refresh credentials. Reads the refreshToken cookie, not the request body.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Resp{data=refreshResp}
// @Failure 401 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/auth/refresh [POST]
func (h *Handler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(CookieRefreshToken)
	if err != nil || refreshToken == "" {
		response.Error(c, h.mapError(auth.ErrInvalidRefreshToken), nil)
		return
	}

	out, err := h.uc.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.setCredentialCookies(c, out)
	response.OK(c, newRefreshResp(out))
}

// Logout clears the session cookies. It holds no server-side session state,
// so it succeeds whether or not the caller was signed in.
// @Summary Log out
// @Description Clear the session cookies. Idempotent.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/auth/logout [POST]
func (h *Handler) Logout(c *gin.Context) {
	h.clearCredentialCookies(c)
	response.OK(c, nil)
}

func (h *Handler) setCredentialCookies(c *gin.Context, out auth.TokenOutput) {
	h.writeCookie(c, CookieToken, out.AccessToken, out.AccessTTL)
	h.writeCookie(c, CookieRefreshToken, out.RefreshToken, out.RefreshTTL)
}

func (h *Handler) clearCredentialCookies(c *gin.Context) {
	h.writeCookie(c, CookieToken, "", -time.Second)
	h.writeCookie(c, CookieRefreshToken, "", -time.Second)
}

// writeCookie goes through http.SetCookie directly because gin's SetCookie
// does not expose SameSite per call.
func (h *Handler) writeCookie(c *gin.Context, name, value string, ttl time.Duration) {
	maxAge := int(ttl.Seconds())
	if ttl < 0 {
		maxAge = -1
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     h.cookieCfg.Path,
		Domain:   h.cookieCfg.Domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	})
}
