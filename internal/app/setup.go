// Package app contains the application setup for the inventory service.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/AndySun25/bookstore/internal/catalog"
	"github.com/AndySun25/bookstore/internal/config"
	"github.com/AndySun25/bookstore/internal/service"
	"github.com/AndySun25/bookstore/internal/store"
	grpcImpl "github.com/AndySun25/bookstore/internal/transport/grpc"
	"github.com/AndySun25/bookstore/internal/transport/rest"
	pb "github.com/AndySun25/bookstore/pkg/api/inventory/v1"
	pkgconfig "github.com/AndySun25/bookstore/pkg/config"
	"github.com/AndySun25/bookstore/pkg/messaging"
	"github.com/AndySun25/bookstore/pkg/server"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName identifies the service in traces, metrics and config.
const ServiceName = "inventory"

type Dependencies struct {
	Store            store.BookStore
	InventoryService service.InventoryService
	Handler          *rest.Handler
	Health           *health.Server
	Logger           *slog.Logger

	// Metrics, when set, is served on MetricsPath.
	Metrics     http.Handler
	MetricsPath string
}

func SetupDependencies(inventory store.BookStore, publisher messaging.Publisher, logger *slog.Logger) *Dependencies {
	iService := service.NewService(inventory, publisher, logger)
	healthServer := health.NewServer()
	healthServer.SetServingStatus(pb.Inventory_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Dependencies{
		Store:            inventory,
		InventoryService: iService,
		Handler:          rest.NewHandler(iService, logger),
		Health:           healthServer,
		Logger:           logger,
	}
}

// LoadCatalog seeds the store from cfg.Source and marks the service ready on /readyz
// and in the gRPC health service.
// An empty source skips loading. An unavailable source is returned as an error.
func LoadCatalog(ctx context.Context, deps *Dependencies, cfg pkgconfig.CatalogConfig) (catalog.Summary, error) {
	var summary catalog.Summary
	if cfg.Source == "" {
		deps.Logger.InfoContext(ctx, "No catalog source configured, starting with an empty inventory")
	} else {
		format := catalog.Format{DecimalSeparator: cfg.DecimalSeparator, GroupSeparator: cfg.GroupSeparator}
		loader := catalog.NewLoader(deps.Store, format, cfg.Timeout, deps.Logger)
		var err error
		summary, err = loader.LoadSource(ctx, cfg.Source)
		if err != nil {
			return summary, fmt.Errorf("failed to load catalog: %w", err)
		}
	}
	deps.Handler.SetReady(true)
	deps.Health.SetServingStatus(pb.Inventory_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	return summary, nil
}

// SetupHttpHandler initializes the router and routes for the inventory.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(ServiceName, deps.Logger)
	deps.Handler.RegisterRoutes(mux)
	if deps.Metrics != nil {
		mux.Handle(deps.MetricsPath, deps.Metrics)
	}
	return mux
}

// SetupHttpServer creates and configures an HTTP server for the inventory.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	return server.NewHTTPServer(cfg.HTTPServer, SetupHttpHandler(deps), deps.Logger)
}

// SetupGrpcServer initializes the gRPC server for the inventory.
func SetupGrpcServer(deps *Dependencies, reflectionEnabled bool) *grpc.Server {
	inventoryRegisterFunc := func(s *grpc.Server) {
		pb.RegisterInventoryServer(s, grpcImpl.NewServer(deps.InventoryService, deps.Logger))
		healthpb.RegisterHealthServer(s, deps.Health)
	}
	return server.NewGRPCServer(deps.Logger, reflectionEnabled, inventoryRegisterFunc)
}
