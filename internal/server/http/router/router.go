package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/gopherauth/internal/config"
	"github.com/polkiloo/gopherauth/internal/server/http/handlers"
	"github.com/polkiloo/gopherauth/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.AccountFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/health", healthHandler.Check)

	auth := engine.Group("/api/v1/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	authed := auth.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/verify", authHandler.Verify)
	authed.GET("/me", authHandler.Me)

	engine.NoRoute(handlers.NotFound)

	return engine
}
