package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"admin-gate/app/config"
	"admin-gate/app/di"
	"admin-gate/app/utils/logger"
)

const shutdownGrace = 30 * time.Second

// version is overridable at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("skipping .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	appLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		slog.Error("logger setup failed", "error", err)
		os.Exit(1)
	}

	container, err := di.NewContainer(cfg, appLogger)
	if err != nil {
		appLogger.Error("wiring failed", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      container.CreateRouter(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	appLogger.Info("admin-gate listening",
		"version", version,
		"addr", server.Addr,
		"eviction_wait", cfg.EvictionWait.String(),
		"nonce_ttl", cfg.NonceTTL.String())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		appLogger.Info("shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			appLogger.Error("shutdown incomplete", "error", err)
			os.Exit(1)
		}
	}

	appLogger.Info("stopped")
}
