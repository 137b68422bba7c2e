package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/projecthub/portal/internal/api/handler"
	"github.com/projecthub/portal/internal/api/middleware"
	"github.com/projecthub/portal/internal/core/ports"
	"github.com/projecthub/portal/internal/core/service"
	mongodb "github.com/projecthub/portal/internal/infrastructure/db/mongo"
	redisdb "github.com/projecthub/portal/internal/infrastructure/db/redis"
)

// Dependencies carries everything the router needs that is constructed in main.
type Dependencies struct {
	Mongo    *mongo.Database
	Redis    *redis.Client
	Tokens   ports.TokenService
	Activity ports.ActivityRecorder
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// It also returns the AuthService so main can seed the bootstrap admin.
func NewRouter(deps Dependencies) (*echo.Echo, *service.AuthService) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(deps.Mongo)
	moderationRepo := mongodb.NewModerationRepository(deps.Mongo)
	projectRepo := mongodb.NewProjectRepository(deps.Mongo)
	blockRepo := mongodb.NewBlockRepository(deps.Mongo)
	likeCounter := redisdb.NewLikeCounter(deps.Redis)

	// --- Services ---
	authService := service.NewAuthService(userRepo, moderationRepo, deps.Tokens, deps.Activity, deps.Logger)
	moderationService := service.NewModerationService(userRepo, moderationRepo, deps.Activity, deps.Logger)
	projectService := service.NewProjectService(projectRepo, userRepo, deps.Activity, deps.Logger)
	blockService := service.NewBlockService(blockRepo, userRepo, likeCounter, deps.Activity, deps.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	blockHandler := handler.NewBlockHandler(blockService)
	adminHandler := handler.NewAdminHandler(moderationService)

	authRequired := middleware.Auth(deps.Tokens)
	adminOnly := middleware.AdminOnly()

	// --- Public routes ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)
	e.GET("/api/portal-projects", projectHandler.ListPortal)
	e.GET("/api/portal-blocks", blockHandler.List)

	// --- Authenticated routes ---
	e.GET("/api/profile", authHandler.Profile, authRequired)
	e.POST("/api/projects", projectHandler.Create, authRequired)
	e.GET("/api/my-projects", projectHandler.ListMine, authRequired)
	e.POST("/api/portal-blocks", blockHandler.Create, authRequired)
	e.POST("/api/portal-blocks/:id/like", blockHandler.Like, authRequired)

	// --- Admin routes ---
	admin := e.Group("/api/admin", authRequired, adminOnly)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/moderation-requests", adminHandler.ListModerationRequests)
	admin.POST("/moderate-user", adminHandler.ModerateUser)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, authService
}
