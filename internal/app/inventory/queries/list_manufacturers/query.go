package list_manufacturers

import (
	"context"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
)

// Query lists every manufacturer with its contact, by name.
type Query struct {
	readModel contracts.ReadModel
}

func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

func (q *Query) Execute(ctx context.Context) ([]*contracts.ManufacturerView, error) {
	return q.readModel.ListManufacturers(ctx)
}
