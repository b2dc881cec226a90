package get_product

import (
	"context"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
)

// Request contains the product ID to retrieve.
type Request struct {
	ProductID string
}

// Query handles the get product query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get product query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a product by ID. A malformed id fails before the store is read.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ProductView, error) {
	if err := domain.ValidateID(req.ProductID); err != nil {
		return nil, err
	}
	return q.readModel.GetProduct(ctx, req.ProductID)
}
