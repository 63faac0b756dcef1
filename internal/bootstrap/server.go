package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-fieldtrack/internal/shared/config"

	"go.uber.org/zap"
)

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// NewServerConfig applies the API's timeouts. Write is generous enough for
// the daily summary export.
func NewServerConfig(cfg *config.Config) ServerConfig {
	return ServerConfig{
		Port:            cfg.Port,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// StartHTTPServer runs handler until SIGINT or SIGTERM, drains in-flight requests,
// then runs onShutdown hooks in order.
func StartHTTPServer(
	handler http.Handler,
	cfg ServerConfig,
	auditLogger AuditLogger,
	onShutdown ...func(),
) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	serve(handler, cfg, auditLogger, quit, onShutdown...)
}

func serve(
	handler http.Handler,
	cfg ServerConfig,
	auditLogger AuditLogger,
	quit <-chan os.Signal,
	onShutdown ...func(),
) {
	logger := zap.L().Named("bootstrap.server")

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	auditLogger.Log(context.Background(), AuditLog{
		Action:  ActionServerStart,
		Message: "Server started",
		Meta:    map[string]any{"port": cfg.Port},
	})

	reason := "signal"
	select {
	case sig := <-quit:
		reason = sig.String()
		logger.Info("shutdown signal received", zap.String("signal", reason))
	case err := <-serveErr:
		reason = "listen error"
		logger.Error("ListenAndServe error", zap.Error(err))
	}

	auditLogger.Log(context.Background(), AuditLog{
		Action:  ActionServerShutdown,
		Message: "Server is shutting down",
		Meta:    map[string]any{"reason": reason},
	})

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	} else {
		logger.Info("server exited gracefully")
	}

	for _, hook := range onShutdown {
		hook()
	}
}
