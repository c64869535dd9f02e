package rest

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"admin-gate/app/port"
	"admin-gate/app/rest/handlers"
	custommw "admin-gate/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger       *slog.Logger
	AuthUsecase  port.AuthUsecase
	AdminUsecase port.AdminUsecase
	Database     handlers.HealthChecker
	NonceTTL     time.Duration
	EnableDebug  bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Create handlers
	sessionStore := handlers.NewSessionStore(config.NonceTTL)
	authHandler := handlers.NewAuthHandler(config.AuthUsecase, sessionStore, config.Logger)
	adminHandler := handlers.NewAdminHandler(config.AdminUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Database, config.Logger)

	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(rateLimiter.RateLimit())

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Authentication endpoints
	auth := v1.Group("/auth")
	auth.POST("/nonce", authHandler.IssueNonce)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	// Tenant domain endpoints
	domains := v1.Group("/domains/:domain")
	domains.GET("/sessions", authHandler.ListSessions)
	domains.GET("/admins", adminHandler.List)
	domains.GET("/admins/:login", adminHandler.Get)
	domains.PUT("/admins/:login", adminHandler.Put)
	domains.DELETE("/admins/:login", adminHandler.Delete)
	domains.POST("/admins/:login/otp-seed", adminHandler.RotateOtpSeed)

	return e
}
