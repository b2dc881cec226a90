package contracts

import (
	"context"
	"time"
)

// ContactView is a contact as embedded in manufacturer reads.
type ContactView struct {
	ID    string
	Name  string
	Email string
	Phone string
}

// ManufacturerView is a manufacturer with its contact resolved.
// Contact is nil when the manufacturer has none.
type ManufacturerView struct {
	ID          string
	Name        string
	Country     string
	Website     string
	Description *string
	Address     *string
	Contact     *ContactView
}

// ProductView is the denormalized product returned by every read:
// manufacturer and contact are inlined.
type ProductView struct {
	ID            string
	Name          string
	SKU           string
	Description   string
	Price         float64
	Category      string
	AmountInStock int64
	Manufacturer  ManufacturerView
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SortOrder selects the ordering of product listings.
type SortOrder string

const (
	SortNameAsc   SortOrder = ""
	SortPriceAsc  SortOrder = "priceAsc"
	SortPriceDesc SortOrder = "priceDesc"
)

// ProductFilter narrows a product listing. Set fields are combined with AND;
// Search matches name, description or sku case-insensitively.
type ProductFilter struct {
	Category       *string
	PriceMin       *float64
	PriceMax       *float64
	Search         *string
	ManufacturerID *string
	Sort           SortOrder
	Limit          int64
}

// ReadModel serves denormalized product and manufacturer reads.
type ReadModel interface {
	// GetProduct returns ErrProductNotFound when the product does not exist
	GetProduct(ctx context.Context, productID string) (*ProductView, error)

	ListProducts(ctx context.Context, filter ProductFilter) ([]*ProductView, error)

	ListManufacturers(ctx context.Context) ([]*ManufacturerView, error)
}

// ManufacturerStockValue is one row of the per-manufacturer valuation.
type ManufacturerStockValue struct {
	Manufacturer    ManufacturerView
	TotalStockValue float64
}

// CriticalStockItem is the compact projection used for reorder alerts.
// Contact fields are nil when the manufacturer has no contact.
type CriticalStockItem struct {
	ProductName      string
	ManufacturerName string
	ContactName      *string
	ContactPhone     *string
	ContactEmail     *string
}

// ReportModel computes stock aggregates in the store.
type ReportModel interface {
	// TotalStockValue is the sum of price * amountInStock; 0 when there are no products
	TotalStockValue(ctx context.Context) (float64, error)

	// TotalStockValueByManufacturer omits manufacturers without products
	TotalStockValueByManufacturer(ctx context.Context) ([]*ManufacturerStockValue, error)

	// ProductsBelowStock returns products with amountInStock < threshold
	ProductsBelowStock(ctx context.Context, threshold int64) ([]*ProductView, error)

	// CriticalStock is ProductsBelowStock projected to CriticalStockItem
	CriticalStock(ctx context.Context, threshold int64) ([]*CriticalStockItem, error)
}

// EventView is an outbox row as exposed to operators.
type EventView struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     string
	Status      string
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// EventFilter narrows an outbox listing.
type EventFilter struct {
	EventType   *string
	AggregateID *string
	Status      *string
	Limit       int64
}

// EventsReadModel reads the outbox.
type EventsReadModel interface {
	ListEvents(ctx context.Context, filter EventFilter) ([]*EventView, error)
}
