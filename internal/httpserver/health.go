package httpserver

import (
	"net/http"

	"classhub-api/pkg/errors"
	"classhub-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// healthCheck reports overall service health.
// @Summary Health Check
// @Description Check service, database and cache health.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /health [GET]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(http.StatusServiceUnavailable, "Database connection failed"))
		return
	}
	if err := srv.redis.Ping(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(http.StatusServiceUnavailable, "Redis connection failed"))
		return
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"service":  "classhub-api",
		"database": "connected",
		"redis":    "connected",
	})
}

// readyCheck reports whether the service can take traffic.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /ready [GET]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(http.StatusServiceUnavailable, "not ready"))
		return
	}

	response.OK(c, gin.H{"status": "ready"})
}

// liveCheck only proves the process is up.
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /live [GET]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{"status": "alive"})
}
