// Package main runs the inventory service: it seeds the in-memory inventory from the
// configured catalog and serves it over HTTP and gRPC.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "net/http/pprof"

	"github.com/AndySun25/bookstore/internal/app"
	"github.com/AndySun25/bookstore/internal/config"
	"github.com/AndySun25/bookstore/internal/store"
	"github.com/AndySun25/bookstore/pkg/bootstrap"
	"github.com/AndySun25/bookstore/pkg/config/configloader"
	"github.com/AndySun25/bookstore/pkg/telemetry"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("Inventory service failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Inventory service stopped")
}

// run serves HTTP, gRPC and optionally pprof until ctx is done. gRPC only starts
// accepting calls once the catalog is loaded.
func run(ctx context.Context) error {
	cfg, err := configloader.Load[*config.Config](app.ServiceName)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := bootstrap.NewLogger(cfg.Log)
	slog.SetDefault(logger)
	logger.Debug("Configuration loaded", "config", cfg.String())

	metrics, stopTelemetry, err := startTelemetry(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer stopTelemetry()

	publisher, closePublisher, err := bootstrap.NewPublisher(cfg.NATS, logger)
	if err != nil {
		return fmt.Errorf("failed to create event publisher: %w", err)
	}
	defer closePublisher()

	deps := app.SetupDependencies(store.NewInMemoryStore(), publisher, logger)
	deps.Metrics = metrics
	deps.MetricsPath = cfg.Telemetry.Metrics.Path

	grpcServer := app.SetupGrpcServer(deps, cfg.GRPC.ReflectionEnabled)
	g, gCtx := errgroup.WithContext(ctx)

	serveHTTP(gCtx, g, logger, "HTTP", app.SetupHttpServer(deps, cfg), cfg.Shutdown.Timeout)
	if cfg.PProf.Enabled {
		serveHTTP(gCtx, g, logger, "pprof", &http.Server{Addr: cfg.PProf.Addr}, cfg.Shutdown.Timeout)
	}

	g.Go(func() error {
		summary, err := app.LoadCatalog(gCtx, deps, cfg.Catalog)
		if err != nil {
			if gCtx.Err() != nil {
				return nil
			}
			return err
		}
		logger.Info("Inventory ready", "books", deps.Store.Len(), "skipped_lines", summary.Skipped)

		lis, err := net.Listen("tcp", ":"+cfg.GRPC.Port)
		if err != nil {
			return fmt.Errorf("failed to listen on gRPC port %s: %w", cfg.GRPC.Port, err)
		}
		logger.Info("gRPC server listening", "addr", lis.Addr().String())
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Stopping gRPC server")
		deps.Health.Shutdown()
		grpcServer.GracefulStop()
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// serveHTTP runs srv in g and shuts it down within timeout once ctx is done.
func serveHTTP(ctx context.Context, g *errgroup.Group, logger *slog.Logger, name string, srv *http.Server, timeout time.Duration) {
	g.Go(func() error {
		logger.Info(name+" server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s server failed: %w", name, err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Stopping " + name + " server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}

// startTelemetry installs the configured providers. The returned func flushes them.
func startTelemetry(ctx context.Context, cfg *config.Config, logger *slog.Logger) (http.Handler, func(), error) {
	var shutdowns []func(context.Context) error
	stop := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown.Timeout)
		defer cancel()
		for _, shutdown := range shutdowns {
			if err := shutdown(shutdownCtx); err != nil {
				logger.Error("Failed to flush telemetry", "error", err)
			}
		}
	}

	if cfg.Telemetry.Traces.Enabled {
		tp, err := telemetry.NewTracerProvider(ctx, app.ServiceName, cfg.Telemetry)
		if err != nil {
			return nil, nil, err
		}
		shutdowns = append(shutdowns, tp.Shutdown)
	}

	var metrics http.Handler
	if cfg.Telemetry.Metrics.Enabled {
		mp, handler, err := telemetry.NewMeterProvider(app.ServiceName)
		if err != nil {
			stop()
			return nil, nil, err
		}
		metrics = handler
		shutdowns = append(shutdowns, mp.Shutdown)
	}
	return metrics, stop, nil
}
