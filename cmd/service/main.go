// Package main is the entry point of the posts gateway.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/posts-gateway/internal/adapters/clients"
	"github.com/jsamuelsen/posts-gateway/internal/adapters/clients/acl"
	"github.com/jsamuelsen/posts-gateway/internal/adapters/http"
	"github.com/jsamuelsen/posts-gateway/internal/adapters/http/handlers"
	"github.com/jsamuelsen/posts-gateway/internal/app"
	"github.com/jsamuelsen/posts-gateway/internal/platform/config"
	"github.com/jsamuelsen/posts-gateway/internal/platform/logging"
	"github.com/jsamuelsen/posts-gateway/internal/platform/telemetry"
	"github.com/jsamuelsen/posts-gateway/internal/ports"
)

// Build-time variables, injected via ldflags:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("upstream", cfg.Services.Upstream.BaseURL),
	)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
		Insecure:     cfg.Telemetry.Insecure,
		UpstreamName: cfg.Services.Upstream.Name,
		UpstreamURL:  cfg.Services.Upstream.BaseURL,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	upstream, err := clients.New(&clients.Config{
		BaseURL:     cfg.Services.Upstream.BaseURL,
		ServiceName: cfg.Services.Upstream.Name,
		Timeout:     cfg.Client.Timeout,
		Transport:   cfg.Client.Transport,
		LogBodies:   cfg.Client.LogBodies,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("creating upstream client: %w", err)
	}

	postClient := acl.NewPostClient(acl.PostClientConfig{
		Client: upstream,
		Logger: logger,
	})

	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(postClient); err != nil {
		return fmt.Errorf("registering upstream health check: %w", err)
	}

	postService := app.NewPostService(app.PostServiceConfig{
		PostClient:    postClient,
		Logger:        logger,
		CommentsRoute: app.CommentsRoute(cfg.Services.Upstream.CommentsRoute),
	})

	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:      logger,
		ServiceName: cfg.Telemetry.ServiceName,
		HealthHandler: handlers.NewHealthHandler(
			healthRegistry,
			handlers.NewBuildInfo(Version, Commit, BuildTime),
			prometheus.DefaultGatherer,
		),
		PostHandler: handlers.NewPostHandler(postService),
		Problems:    telemetry.NewProblemRecorder(prometheus.DefaultRegisterer),
		Timeout:     cfg.Server.RequestTimeout,
	})

	serverErr := server.Start()

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a signal arrives or the server fails,
// then drains in-flight requests within shutdownTimeout.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
