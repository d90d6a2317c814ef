package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/accountkit/account-service/docs"
	"github.com/accountkit/account-service/internal/api/handler"
	"github.com/accountkit/account-service/internal/api/middleware"
	"github.com/accountkit/account-service/internal/core/service"
	"github.com/accountkit/account-service/internal/infrastructure/db/postgres"
	"github.com/accountkit/account-service/internal/pkg/config"
	"github.com/accountkit/account-service/internal/pkg/password"
	"github.com/accountkit/account-service/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool postgres.Pool, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	hasher := password.NewBcryptHasher(0)
	tokens := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	userService := service.NewUserService(userRepo, hasher)
	authService := service.NewAuthService(userRepo, hasher, tokens)

	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)

	authMiddleware := middleware.Auth(tokens)
	_ = authMiddleware // no protected routes yet

	// --- User routes ---
	e.POST("/users", userHandler.Create)
	e.GET("/users", userHandler.List)
	e.GET("/users/:id", userHandler.Get)
	e.PUT("/users/:id", userHandler.Update)
	e.DELETE("/users/:id", userHandler.Delete)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
