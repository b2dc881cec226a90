// Package http is the REST adapter. Handlers decode requests, call the
// inventory service and map results and errors to JSON.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/light-bringer/inventory-service/internal/platform/logger"
)

type RouterConfig struct {
	Service      InventoryService
	Log          *logger.Logger
	AllowOrigins []string
	ServiceName  string

	// GraphQL is mounted at POST /graphql when set.
	GraphQL http.Handler
	// DB backs the health check; nil reports healthy without a probe.
	DB Pinger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(AttachRequestContext())
	r.Use(RequestLogger(cfg.Log))
	r.Use(CORS(cfg.AllowOrigins))

	health := NewHealthHandler(cfg.DB)
	r.GET("/healthz", health.HealthCheck)

	if cfg.GraphQL != nil {
		r.POST("/graphql", gin.WrapH(cfg.GraphQL))
	}

	products := NewProductsHandler(cfg.Service, cfg.Log)
	reports := NewReportsHandler(cfg.Service, cfg.Log)
	manufacturers := NewManufacturersHandler(cfg.Service, cfg.Log)
	events := NewEventsHandler(cfg.Service, cfg.Log)

	api := r.Group("/api")
	{
		// Reports (static paths win over :id)
		api.GET("/products/total-stock-value", reports.TotalStockValue)
		api.GET("/products/total-stock-value-by-manufacturer", reports.TotalStockValueByManufacturer)
		api.GET("/products/low-stock", reports.LowStock)
		api.GET("/products/critical-stock", reports.CriticalStock)

		// Products
		api.GET("/products", products.List)
		api.POST("/products", products.Create)
		api.GET("/products/:id", products.Get)
		api.PUT("/products/:id", products.Update)
		api.DELETE("/products/:id", products.Delete)

		// Manufacturers
		api.GET("/manufacturers", manufacturers.List)

		// Outbox
		api.GET("/events", events.List)
	}

	return r
}
