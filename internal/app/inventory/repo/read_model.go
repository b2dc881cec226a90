package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/pkg/query"
)

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{client: client}
}

// GetProduct retrieves a product with its manufacturer and contact inlined.
func (rm *ReadModelImpl) GetProduct(ctx context.Context, productID string) (*contracts.ProductView, error) {
	stmt := productViews().
		Where(query.Eq("p.product_id", productID)).
		Limit(1).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	return scanProductView(row)
}

// ListProducts retrieves products matching the filter.
func (rm *ReadModelImpl) ListProducts(ctx context.Context, filter contracts.ProductFilter) ([]*contracts.ProductView, error) {
	b := productViews()

	if filter.Category != nil {
		b = b.Where(query.Eq("p.category", *filter.Category))
	}
	if filter.PriceMin != nil {
		b = b.Where(query.Gte("p.price", *filter.PriceMin))
	}
	if filter.PriceMax != nil {
		b = b.Where(query.Lte("p.price", *filter.PriceMax))
	}
	if filter.ManufacturerID != nil {
		b = b.Where(query.Eq("p.manufacturer_id", *filter.ManufacturerID))
	}
	if filter.Search != nil && *filter.Search != "" {
		b = b.Where(query.ContainsFold(*filter.Search, "p.name", "p.description", "p.sku"))
	}

	switch filter.Sort {
	case contracts.SortPriceAsc:
		b = b.OrderBy("p.price", query.Asc)
	case contracts.SortPriceDesc:
		b = b.OrderBy("p.price", query.Desc)
	}
	// name then id keeps pages stable for equal prices and names
	b = b.OrderBy("p.name", query.Asc).OrderBy("p.product_id", query.Asc)

	if filter.Limit > 0 {
		b = b.Limit(filter.Limit)
	}

	return rm.queryProducts(ctx, b.Build())
}

// ListManufacturers returns all manufacturers ordered by name.
func (rm *ReadModelImpl) ListManufacturers(ctx context.Context) ([]*contracts.ManufacturerView, error) {
	stmt := manufacturerViews().
		OrderBy("m.name", query.Asc).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	manufacturers := make([]*contracts.ManufacturerView, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate manufacturers: %w", err)
		}

		v, err := scanManufacturerView(row)
		if err != nil {
			return nil, err
		}
		manufacturers = append(manufacturers, v)
	}

	return manufacturers, nil
}

func (rm *ReadModelImpl) queryProducts(ctx context.Context, stmt spanner.Statement) ([]*contracts.ProductView, error) {
	return collectProducts(rm.client.Single().Query(ctx, stmt))
}

func collectProducts(iter *spanner.RowIterator) ([]*contracts.ProductView, error) {
	defer iter.Stop()

	products := make([]*contracts.ProductView, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		v, err := scanProductView(row)
		if err != nil {
			return nil, err
		}
		products = append(products, v)
	}

	return products, nil
}
