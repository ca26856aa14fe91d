package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/vizerhq/jobboard/internal/api/handler"
	"github.com/vizerhq/jobboard/internal/api/middleware"
	"github.com/vizerhq/jobboard/internal/core/service"
	"github.com/vizerhq/jobboard/internal/infrastructure/config"
	"github.com/vizerhq/jobboard/internal/infrastructure/db/postgres"
	redisinfra "github.com/vizerhq/jobboard/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *pgxpool.Pool, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("jobboard"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	revocations := redisinfra.NewRevocationList(rdb)

	authService := service.NewAuthService(userRepo, revocations, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, log)
	companyService := service.NewCompanyService(companyRepo, log)
	jobService := service.NewJobService(jobRepo, log)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(userService)
	companyHandler := handler.NewCompanyHandler(companyService)
	jobHandler := handler.NewJobHandler(jobService)
	applicationHandler := handler.NewApplicationHandler(applicationService)

	session := middleware.Session(authService)

	// --- Auth routes ---
	e.POST("/auth/check-identifier", authHandler.CheckIdentifier)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, session)

	// --- Job board routes ---
	v1 := e.Group("/v1")
	v1.GET("/jobs", jobHandler.List)
	v1.GET("/jobs/:id", jobHandler.Get)
	v1.POST("/jobs", jobHandler.Create, session)
	v1.GET("/companies", companyHandler.List)
	v1.POST("/companies", companyHandler.Create, session)
	v1.POST("/jobs/:id/applications", applicationHandler.Apply)
	v1.GET("/applications", applicationHandler.List, session)
	v1.GET("/me/profile", profileHandler.Get, session)
	v1.PUT("/me/profile", profileHandler.Update, session)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
