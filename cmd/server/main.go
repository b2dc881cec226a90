package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/inventory-service/internal/config"
	"github.com/light-bringer/inventory-service/internal/platform/logger"
	"github.com/light-bringer/inventory-service/internal/platform/tracing"
	"github.com/light-bringer/inventory-service/internal/services"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (.env, then environment)
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer log.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting inventory service",
		"env", cfg.AppEnv,
		"version", version,
		"spanner_db", cfg.SpannerDB,
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// 2. Tracing (no-op unless an exporter is configured)
	shutdownTracing := tracing.Init(ctx, log, tracing.Config{
		ServiceName: "inventory-service",
		Environment: cfg.AppEnv,
		Version:     version,
	})

	// 3. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, cfg, log, tracing.Enabled())
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	// 4. gRPC server (health + reflection)
	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return fmt.Errorf("failed to listen on gRPC port: %w", err)
	}
	errCh := make(chan error, 2)
	go func() {
		log.Info("grpc server listening", "port", cfg.GRPCPort)
		if err := serviceOpts.GRPC.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc server: %w", err)
		}
	}()
	go serviceOpts.GRPC.WatchHealth(ctx)

	// 5. HTTP server (REST + GraphQL)
	httpServer := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: serviceOpts.HTTPHandler(),
	}
	go func() {
		log.Info("http server listening", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	// 6. Graceful shutdown handling
	var runErr error
	select {
	case <-ctx.Done():
		log.Info("shutting down gracefully")
	case runErr = <-errCh:
		log.Error("server stopped unexpectedly", "error", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown error", "error", err)
	}

	stopped := make(chan struct{})
	go func() {
		serviceOpts.GRPC.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		log.Warn("grpc graceful stop timed out")
		serviceOpts.GRPC.Stop()
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("tracing shutdown error", "error", err)
	}

	return runErr
}
