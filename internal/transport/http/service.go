package http

import (
	"context"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/list_events"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/list_products"
	"github.com/light-bringer/inventory-service/internal/app/inventory/validation"
)

// InventoryService is the application surface the REST handlers call.
// *inventory.Service implements it.
type InventoryService interface {
	CreateProduct(ctx context.Context, in *validation.ProductInput) (*contracts.ProductView, error)
	UpdateProduct(ctx context.Context, id string, in *validation.ProductInput) (*contracts.ProductView, error)
	DeleteProduct(ctx context.Context, id string) (*contracts.ProductView, error)
	GetProduct(ctx context.Context, id string) (*contracts.ProductView, error)
	ListProducts(ctx context.Context, req *list_products.Request) ([]*contracts.ProductView, error)
	ListManufacturers(ctx context.Context) ([]*contracts.ManufacturerView, error)
	TotalStockValue(ctx context.Context) (float64, error)
	TotalStockValueByManufacturer(ctx context.Context) ([]*contracts.ManufacturerStockValue, error)
	LowStockProducts(ctx context.Context, threshold *int64) ([]*contracts.ProductView, error)
	CriticalStockProducts(ctx context.Context, threshold *int64) ([]*contracts.CriticalStockItem, error)
	ListEvents(ctx context.Context, req *list_events.Request) ([]*contracts.EventView, error)
}
