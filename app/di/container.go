package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"admin-gate/app/config"
	"admin-gate/app/driver/postgres"
	"admin-gate/app/driver/redis"
	"admin-gate/app/driver/totp"
	"admin-gate/app/gateway"
	"admin-gate/app/port"
	"admin-gate/app/rest"
	"admin-gate/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB        *postgres.DB
	Publisher *redis.Publisher

	// Usecases
	AuthUsecase  port.AuthUsecase
	AdminUsecase port.AdminUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	// Initialize drivers
	var err error

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.Publisher, err = redis.NewPublisherWithURL(cfg.RedisURL)
	if err != nil {
		container.DB.Close()
		return nil, fmt.Errorf("failed to initialize redis publisher: %w", err)
	}

	// Initialize repositories
	adminRepository := postgres.NewAdminRepository(container.DB.Pool(), logger)
	identityRepository := postgres.NewIdentityRepository(container.DB.Pool(), logger)
	tenantRepository := postgres.NewTenantRepository(container.DB.Pool(), logger)

	// Initialize gateways
	notifications := gateway.NewNotificationGateway(container.Publisher, logger)

	// Initialize usecases
	otpProvider := totp.NewProvider()
	verifier := usecase.NewCredentialVerifier(otpProvider, logger)
	accessGate := usecase.NewAccessGate(logger)
	admission := usecase.NewAdmissionController(notifications, logger,
		usecase.WithEvictionWait(cfg.EvictionWait))

	container.AuthUsecase = usecase.NewAuthUseCase(
		adminRepository,
		identityRepository,
		tenantRepository,
		verifier,
		accessGate,
		admission,
		logger,
	)
	container.AdminUsecase = usecase.NewAdminUseCase(adminRepository, logger)

	logger.Info("container initialized")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:       c.Logger,
		AuthUsecase:  c.AuthUsecase,
		AdminUsecase: c.AdminUsecase,
		Database:     c.DB,
		NonceTTL:     c.Config.NonceTTL,
		EnableDebug:  c.Config.EnableDebug,
	}

	return rest.NewRouter(routerConfig)
}

// Close closes all resources
func (c *Container) Close() error {
	if c.Publisher != nil {
		if err := c.Publisher.Close(); err != nil {
			c.Logger.Warn("failed to close redis publisher", "error", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("container closed")
	return nil
}
