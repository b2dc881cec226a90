package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/models/m_product"
	"github.com/light-bringer/inventory-service/internal/pkg/clock"
	"github.com/light-bringer/inventory-service/internal/pkg/committer"
	"github.com/light-bringer/inventory-service/internal/pkg/query"
)

// ProductRepo implements ProductRepository for Spanner.
type ProductRepo struct {
	model *m_product.Model
	clock clock.Clock
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(clk clock.Clock) contracts.ProductRepository {
	return &ProductRepo{
		model: m_product.NewModel(),
		clock: clk,
	}
}

// InsertMut creates a mutation for inserting a new product.
func (r *ProductRepo) InsertMut(product *domain.Product) *spanner.Mutation {
	return r.model.InsertMut(&m_product.Data{
		ProductID:      product.ID(),
		Name:           product.Name(),
		SKU:            product.SKU(),
		Description:    product.Description(),
		Price:          product.Price(),
		Category:       product.Category(),
		AmountInStock:  product.AmountInStock(),
		ManufacturerID: product.ManufacturerID(),
	})
}

// UpdateMut creates a mutation for updating a product (only dirty fields).
func (r *ProductRepo) UpdateMut(product *domain.Product) *spanner.Mutation {
	changes := product.Changes()
	if !changes.HasChanges() {
		return nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldName) {
		updates[m_product.Name] = product.Name()
	}
	if changes.Dirty(domain.FieldSKU) {
		updates[m_product.SKU] = product.SKU()
	}
	if changes.Dirty(domain.FieldDescription) {
		updates[m_product.Description] = product.Description()
	}
	if changes.Dirty(domain.FieldPrice) {
		updates[m_product.Price] = product.Price()
	}
	if changes.Dirty(domain.FieldCategory) {
		updates[m_product.Category] = product.Category()
	}
	if changes.Dirty(domain.FieldAmountInStock) {
		updates[m_product.AmountInStock] = product.AmountInStock()
	}
	if changes.Dirty(domain.FieldManufacturerID) {
		updates[m_product.ManufacturerID] = product.ManufacturerID()
	}

	return r.model.UpdateMut(product.ID(), updates)
}

// DeleteMut creates a mutation removing a product.
func (r *ProductRepo) DeleteMut(productID string) *spanner.Mutation {
	return r.model.DeleteMut(productID)
}

// GetByID retrieves a product by ID, reconstructing the domain aggregate.
func (r *ProductRepo) GetByID(ctx context.Context, rd committer.Reader, productID string) (*domain.Product, error) {
	row, err := rd.ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	return domain.ReconstructProduct(
		data.ProductID,
		domain.ProductParams{
			Name:          data.Name,
			SKU:           data.SKU,
			Description:   data.Description,
			Price:         data.Price,
			Category:      data.Category,
			AmountInStock: data.AmountInStock,
		},
		data.ManufacturerID,
		data.CreatedAt,
		data.UpdatedAt,
		r.clock,
	), nil
}

// FindIDBySKU looks a product up by its natural key.
func (r *ProductRepo) FindIDBySKU(ctx context.Context, rd committer.Reader, sku string) (string, bool, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.ProductID).
		Where(query.Eq(m_product.SKU, sku)).
		Limit(1).
		Build()

	iter := rd.Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to look up sku: %w", err)
	}

	var id string
	if err := row.Columns(&id); err != nil {
		return "", false, fmt.Errorf("failed to parse product id: %w", err)
	}
	return id, true, nil
}
