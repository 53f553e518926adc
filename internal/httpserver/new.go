package httpserver

import (
	"database/sql"
	"errors"

	"classhub-api/config"
	"classhub-api/pkg/discord"
	"classhub-api/pkg/log"
	pkgMinio "classhub-api/pkg/minio"
	pkgRedis "classhub-api/pkg/redis"
	"classhub-api/pkg/token"

	"github.com/gin-gonic/gin"
)

// HTTPServer wires all dependencies. New() only validates the wiring;
// Run() (in httpserver.go) starts serving.
type HTTPServer struct {
	gin         *gin.Engine
	logger      log.Logger
	port        int
	environment string

	db      *sql.DB
	redis   pkgRedis.IRedis
	storage pkgMinio.MinIO
	discord discord.IDiscord

	codec        *token.Codec
	cookieCfg    config.CookieConfig
	avatarBucket string

	allowedOrigins []string
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Port        int
	Mode        string
	Environment string

	DB      *sql.DB
	Redis   pkgRedis.IRedis
	Storage pkgMinio.MinIO
	Discord discord.IDiscord

	Codec        *token.Codec
	Cookie       config.CookieConfig
	AvatarBucket string

	AllowedOrigins []string
}

// New creates an HTTPServer. No goroutines are started here.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:            gin.New(),
		logger:         logger,
		port:           cfg.Port,
		environment:    cfg.Environment,
		db:             cfg.DB,
		redis:          cfg.Redis,
		storage:        cfg.Storage,
		discord:        cfg.Discord,
		codec:          cfg.Codec,
		cookieCfg:      cfg.Cookie,
		avatarBucket:   cfg.AvatarBucket,
		allowedOrigins: cfg.AllowedOrigins,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.redis == nil {
		return errors.New("redis client is required")
	}
	if srv.codec == nil {
		return errors.New("token codec is required")
	}

	return nil
}
