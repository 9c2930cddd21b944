package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jokehub/jokes-service/internal/api/handler"
	"github.com/jokehub/jokes-service/internal/api/middleware"
	"github.com/jokehub/jokes-service/internal/core/service"
	"github.com/jokehub/jokes-service/internal/infrastructure/config"
	mongodb "github.com/jokehub/jokes-service/internal/infrastructure/db/mongo"
	redisdb "github.com/jokehub/jokes-service/internal/infrastructure/db/redis"
	"github.com/jokehub/jokes-service/internal/session"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, audit handler.AuditSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("jokes"))

	// --- Dependencies ---
	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL, cfg.Production())
	redirects := session.NewRedirectPolicy("/jokes", "/jokes", "/", "https://remix.run")

	userRepo := mongodb.NewUserRepository(db)
	jokeRepo := mongodb.NewJokeRepository(db)
	limiter := redisdb.NewAttemptLimiter(rdb)

	authService := service.NewAuthService(userRepo, limiter, log)
	jokeService := service.NewJokeService(jokeRepo, log)

	authHandler := handler.NewAuthHandler(authService, sessions, redirects, audit)
	jokeHandler := handler.NewJokeHandler(jokeService)

	// Identity resolution runs on every request so any downstream check can
	// ask who the requester is; it never rejects on its own.
	e.Use(middleware.CurrentUser(sessions))

	// --- Auth routes ---
	e.POST("/login", authHandler.Submit)
	e.POST("/logout", authHandler.Logout)

	// --- Joke routes ---
	e.GET("/jokes", jokeHandler.List)
	e.GET("/jokes/random", jokeHandler.Random)
	e.GET("/jokes/:id", jokeHandler.Get)
	e.DELETE("/jokes/:id", jokeHandler.Delete, middleware.RequireUser())

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
