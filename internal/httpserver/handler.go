package httpserver

import (
	"classhub-api/internal/middleware"
	"classhub-api/pkg/response"

	authHTTP "classhub-api/internal/auth/delivery/http"
	authUC "classhub-api/internal/auth/usecase"
	lessonHTTP "classhub-api/internal/lesson/delivery/http"
	lessonPostgres "classhub-api/internal/lesson/repository/postgre"
	lessonUC "classhub-api/internal/lesson/usecase"
	userHTTP "classhub-api/internal/user/delivery/http"
	userPostgres "classhub-api/internal/user/repository/postgre"
	userUC "classhub-api/internal/user/usecase"

	// Registers the generated Swagger spec.
	_ "classhub-api/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const Api = "/api/v1"

func (srv *HTTPServer) mapHandlers() error {
	isDev := srv.environment == "development"
	// Raw internal error messages surface only in development; production
	// 500 bodies stay redacted.
	response.SetVerboseErrors(isDev)

	srv.gin.Use(middleware.Recovery(srv.logger, srv.discord))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig(srv.allowedOrigins)))

	// Health endpoints sit outside the gated API surface.
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	mw := middleware.New(srv.logger, srv.codec, middleware.DefaultAllowlist())
	srv.gin.Use(mw.Gate())

	userRepo := userPostgres.New(srv.logger, srv.db)
	lessonRepo := lessonPostgres.New(srv.logger, srv.db)

	authUsecase := authUC.New(srv.logger, userRepo, srv.codec)
	userUsecase := userUC.New(srv.logger, userRepo, srv.storage, srv.avatarBucket)
	lessonUsecase := lessonUC.New(srv.logger, lessonRepo, srv.redis)

	api := srv.gin.Group(Api)
	authHTTP.New(srv.logger, authUsecase, srv.cookieCfg, isDev).RegisterRoutes(api)
	userHTTP.New(srv.logger, userUsecase).RegisterRoutes(api)
	lessonHTTP.New(srv.logger, lessonUsecase).RegisterRoutes(api)

	return nil
}
