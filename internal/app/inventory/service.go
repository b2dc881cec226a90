// Package inventory is the application core shared by the REST and GraphQL
// transports. Service bundles the write workflows and read queries so both
// adapters terminate in exactly the same code paths.
package inventory

import (
	"context"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/get_product"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/list_events"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/list_manufacturers"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/list_products"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/stock_report"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/create_product"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/delete_product"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/update_product"
	"github.com/light-bringer/inventory-service/internal/app/inventory/validation"
	"github.com/light-bringer/inventory-service/internal/pkg/clock"
)

// Dependencies are the adapters the service runs against.
type Dependencies struct {
	Products      contracts.ProductRepository
	Manufacturers contracts.ManufacturerRepository
	Contacts      contracts.ContactRepository
	Outbox        contracts.OutboxRepository
	Committer     contracts.Committer
	ReadModel     contracts.ReadModel
	Reports       contracts.ReportModel
	Events        contracts.EventsReadModel
	Clock         clock.Clock
}

// Settings are the tunable defaults of the read side.
type Settings struct {
	ProductListDefaultLimit int64
	Thresholds              stock_report.Thresholds
}

// Service is the inventory application facade.
type Service struct {
	createProduct *create_product.Interactor
	updateProduct *update_product.Interactor
	deleteProduct *delete_product.Interactor

	getProduct        *get_product.Query
	listProducts      *list_products.Query
	listManufacturers *list_manufacturers.Query
	stockReport       *stock_report.Query
	listEvents        *list_events.Query
}

// NewService wires every use case and query against deps.
func NewService(deps Dependencies, settings Settings) *Service {
	return &Service{
		createProduct: create_product.NewInteractor(
			deps.Products, deps.Manufacturers, deps.Contacts, deps.Outbox, deps.Committer, deps.ReadModel, deps.Clock,
		),
		updateProduct: update_product.NewInteractor(
			deps.Products, deps.Manufacturers, deps.Contacts, deps.Outbox, deps.Committer, deps.ReadModel, deps.Clock,
		),
		deleteProduct: delete_product.NewInteractor(deps.Products, deps.Outbox, deps.Committer, deps.ReadModel),

		getProduct:        get_product.NewQuery(deps.ReadModel),
		listProducts:      list_products.NewQuery(deps.ReadModel, settings.ProductListDefaultLimit),
		listManufacturers: list_manufacturers.NewQuery(deps.ReadModel),
		stockReport:       stock_report.NewQuery(deps.Reports, settings.Thresholds),
		listEvents:        list_events.NewQuery(deps.Events),
	}
}

// Write side

func (s *Service) CreateProduct(ctx context.Context, in *validation.ProductInput) (*contracts.ProductView, error) {
	return s.createProduct.Execute(ctx, &create_product.Request{Input: in})
}

func (s *Service) UpdateProduct(ctx context.Context, id string, in *validation.ProductInput) (*contracts.ProductView, error) {
	return s.updateProduct.Execute(ctx, &update_product.Request{ProductID: id, Input: in})
}

// DeleteProduct returns the product as it was before deletion.
func (s *Service) DeleteProduct(ctx context.Context, id string) (*contracts.ProductView, error) {
	return s.deleteProduct.Execute(ctx, &delete_product.Request{ProductID: id})
}

// Read side

func (s *Service) GetProduct(ctx context.Context, id string) (*contracts.ProductView, error) {
	return s.getProduct.Execute(ctx, &get_product.Request{ProductID: id})
}

func (s *Service) ListProducts(ctx context.Context, req *list_products.Request) ([]*contracts.ProductView, error) {
	return s.listProducts.Execute(ctx, req)
}

func (s *Service) ListManufacturers(ctx context.Context) ([]*contracts.ManufacturerView, error) {
	return s.listManufacturers.Execute(ctx)
}

func (s *Service) TotalStockValue(ctx context.Context) (float64, error) {
	return s.stockReport.TotalStockValue(ctx)
}

func (s *Service) TotalStockValueByManufacturer(ctx context.Context) ([]*contracts.ManufacturerStockValue, error) {
	return s.stockReport.TotalStockValueByManufacturer(ctx)
}

// LowStockProducts uses the configured low threshold when threshold is nil.
func (s *Service) LowStockProducts(ctx context.Context, threshold *int64) ([]*contracts.ProductView, error) {
	return s.stockReport.LowStock(ctx, threshold)
}

// CriticalStockProducts uses the configured critical threshold when threshold is nil.
func (s *Service) CriticalStockProducts(ctx context.Context, threshold *int64) ([]*contracts.CriticalStockItem, error) {
	return s.stockReport.CriticalStock(ctx, threshold)
}

func (s *Service) ListEvents(ctx context.Context, req *list_events.Request) ([]*contracts.EventView, error) {
	return s.listEvents.Execute(ctx, req)
}
