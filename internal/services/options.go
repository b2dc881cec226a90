package services

import (
	"context"
	"fmt"
	"net/http"

	"cloud.google.com/go/spanner"
	"github.com/gin-gonic/gin"

	"github.com/light-bringer/inventory-service/internal/app/inventory"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/stock_report"
	"github.com/light-bringer/inventory-service/internal/app/inventory/repo"
	"github.com/light-bringer/inventory-service/internal/config"
	"github.com/light-bringer/inventory-service/internal/pkg/clock"
	"github.com/light-bringer/inventory-service/internal/pkg/committer"
	"github.com/light-bringer/inventory-service/internal/platform/logger"
	"github.com/light-bringer/inventory-service/internal/transport/graphql"
	"github.com/light-bringer/inventory-service/internal/transport/grpc"
	httptransport "github.com/light-bringer/inventory-service/internal/transport/http"
)

const serviceName = "inventory-service"

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	Service       *inventory.Service
	Router        *gin.Engine
	GRPC          *grpc.Server
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg config.Config, log *logger.Logger, tracing bool) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	opts, err := newServiceOptions(spannerClient, cfg, log, tracing)
	if err != nil {
		spannerClient.Close()
		return nil, err
	}
	return opts, nil
}

func newServiceOptions(spannerClient *spanner.Client, cfg config.Config, log *logger.Logger, tracing bool) (*ServiceOptions, error) {
	// 2. Create the application service over Spanner
	svc := NewInventory(spannerClient, clock.NewRealClock(), inventory.Settings{
		ProductListDefaultLimit: cfg.ProductListDefaultLimit,
		Thresholds: stock_report.Thresholds{
			Low:      cfg.LowStockThreshold,
			Critical: cfg.CriticalStockThreshold,
		},
	})
	probe := repo.NewHealthProbe(spannerClient)

	// 3. Create transports
	graphqlHandler, err := graphql.NewHandler(svc, log)
	if err != nil {
		return nil, fmt.Errorf("failed to build graphql schema: %w", err)
	}

	routerCfg := httptransport.RouterConfig{
		Service:      svc,
		Log:          log,
		AllowOrigins: cfg.CORSAllowOrigins,
		GraphQL:      graphqlHandler,
		DB:           probe,
	}
	if tracing {
		routerCfg.ServiceName = serviceName
	}
	router := httptransport.NewRouter(routerCfg)

	grpcServer := grpc.NewServer(grpc.Config{
		Log:         log,
		DB:          probe,
		ServiceName: serviceName,
		Tracing:     tracing,
	})

	return &ServiceOptions{
		SpannerClient: spannerClient,
		Service:       svc,
		Router:        router,
		GRPC:          grpcServer,
	}, nil
}

// NewInventory wires repositories, read models and the committer around
// client into the application service.
func NewInventory(client *spanner.Client, clk clock.Clock, settings inventory.Settings) *inventory.Service {
	return inventory.NewService(inventory.Dependencies{
		Products:      repo.NewProductRepo(clk),
		Manufacturers: repo.NewManufacturerRepo(),
		Contacts:      repo.NewContactRepo(),
		Outbox:        repo.NewOutboxRepo(),
		Committer:     committer.NewCommitter(client, committer.WithErrorMapper(repo.MapConstraintError)),
		ReadModel:     repo.NewReadModel(client),
		Reports:       repo.NewReportModel(client),
		Events:        repo.NewEventsReadModel(client),
		Clock:         clk,
	}, settings)
}

// HTTPHandler is the root handler for the HTTP server.
func (s *ServiceOptions) HTTPHandler() http.Handler { return s.Router }

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
