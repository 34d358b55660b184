// Package main runs the local library web server.
//
// Configuration comes from the environment, see config.FromEnv. The schema is migrated on start,
// expired sessions are purged periodically, and SIGINT/SIGTERM shut the server down gracefully.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"

	"github.com/AntonStoeckl/locallibrary-go/catalog/oteladapters"
	"github.com/AntonStoeckl/locallibrary-go/catalog/sqlengine"
	"github.com/AntonStoeckl/locallibrary-go/shell/config"
	"github.com/AntonStoeckl/locallibrary-go/shell/observable"
	"github.com/AntonStoeckl/locallibrary-go/web"
)

const (
	serviceName    = "locallibrary"
	serviceVersion = "1.0.0"

	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
	sessionSweepEvery = time.Hour
)

func main() {
	if err := run(); err != nil {
		slog.Error("locallibrary failed", "error", err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	contextualLogger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)
	collectors := observable.Collectors{}
	var storeOptions []sqlengine.Option

	if cfg.ObservabilityEnabled {
		providers, providersErr := config.NewObservabilityProviders(ctx, cfg.OTELEndpoint, serviceName, serviceVersion)
		if providersErr != nil {
			return fmt.Errorf("starting observability providers: %w", providersErr)
		}

		defer func() {
			if shutdownErr := providers.Shutdown(context.Background()); shutdownErr != nil {
				logger.Warn("observability shutdown failed", "error", shutdownErr.Error())
			}
		}()

		contextualLogger = oteladapters.NewSlogBridgeLoggerTee(serviceName, handler)
		logger = contextualLogger.Slog()
		slog.SetDefault(logger)

		metrics := oteladapters.NewMetricsCollector(otel.Meter(serviceName))
		tracing := oteladapters.NewTracingCollector(otel.Tracer(serviceName))

		collectors.Metrics = metrics
		collectors.Tracing = tracing
		storeOptions = append(storeOptions, sqlengine.WithMetrics(metrics), sqlengine.WithTracing(tracing))

		logger.Info("observability enabled", "endpoint", cfg.OTELEndpoint)
	}

	collectors.ContextualLogger = contextualLogger
	storeOptions = append(storeOptions, sqlengine.WithContextualLogger(contextualLogger))

	store, closeStore, err := config.OpenStore(ctx, cfg, storeOptions...)
	if err != nil {
		return fmt.Errorf("opening %s store: %w", cfg.DBDriver, err)
	}
	defer closeStore()

	if err = store.Migrate(ctx); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)

	serverOptions := []web.Option{
		web.WithLogger(logger),
		web.WithCollectors(collectors),
		web.WithPageSize(cfg.PageSize),
	}

	if cfg.SecureCookies {
		serverOptions = append(serverOptions, web.WithSecureCookies())
	}

	server, err := web.NewServer(store, serverOptions...)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go sweepSessions(ctx, store, logger)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.HTTPAddr, "driver", cfg.DBDriver)
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return httpServer.Shutdown(shutdownCtx)
}

// sweepSessions deletes expired sessions until ctx is done.
func sweepSessions(ctx context.Context, store *sqlengine.Store, logger *slog.Logger) {
	ticker := time.NewTicker(sessionSweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			deleted, err := store.DeleteExpiredSessions(ctx, now)
			if err != nil {
				logger.WarnContext(ctx, "purging expired sessions failed", "error", err.Error())
				continue
			}

			if deleted > 0 {
				logger.InfoContext(ctx, "purged expired sessions", "count", deleted)
			}
		}
	}
}
