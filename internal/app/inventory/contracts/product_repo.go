package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/pkg/committer"
)

// ProductRepository defines the interface for product persistence.
// Repositories return mutations, they don't apply them.
type ProductRepository interface {
	// InsertMut creates a mutation for inserting a new product
	InsertMut(product *domain.Product) *spanner.Mutation

	// UpdateMut creates a mutation for the dirty fields of a product, or nil
	UpdateMut(product *domain.Product) *spanner.Mutation

	// DeleteMut creates a mutation removing a product
	DeleteMut(productID string) *spanner.Mutation

	// GetByID loads the aggregate; ErrProductNotFound when absent
	GetByID(ctx context.Context, r committer.Reader, productID string) (*domain.Product, error)

	// FindIDBySKU returns the id of the product holding sku, if any
	FindIDBySKU(ctx context.Context, r committer.Reader, sku string) (string, bool, error)
}

// ManufacturerRepository defines the interface for manufacturer persistence.
type ManufacturerRepository interface {
	InsertMut(manufacturer *domain.Manufacturer) *spanner.Mutation
	Exists(ctx context.Context, r committer.Reader, manufacturerID string) (bool, error)
	NameTaken(ctx context.Context, r committer.Reader, name string) (bool, error)
}

// ContactRepository defines the interface for contact persistence.
type ContactRepository interface {
	InsertMut(contact *domain.Contact) *spanner.Mutation
}
