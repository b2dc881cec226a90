package m_product

import (
	"sort"

	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation inserting a product. Timestamps are set to the commit time.
// A plain insert is used so a primary key collision fails instead of overwriting.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName, Columns, []interface{}{
		data.ProductID,
		data.Name,
		data.SKU,
		data.Description,
		data.Price,
		data.Category,
		data.AmountInStock,
		data.ManufacturerID,
		spanner.CommitTimestamp,
		spanner.CommitTimestamp,
	})
}

// UpdateMut creates a mutation updating the given columns of a product.
// updated_at is always bumped. Returns nil when there is nothing to update.
func (m *Model) UpdateMut(productID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	cols := make([]string, 0, len(updates))
	for col := range updates {
		if col != ProductID && col != UpdatedAt {
			cols = append(cols, col)
		}
	}
	sort.Strings(cols)

	columns := append([]string{ProductID}, cols...)
	values := []interface{}{productID}
	for _, col := range cols {
		values = append(values, updates[col])
	}
	columns = append(columns, UpdatedAt)
	values = append(values, spanner.CommitTimestamp)

	return spanner.Update(TableName, columns, values)
}

// DeleteMut creates a mutation deleting a product (hard delete).
func (m *Model) DeleteMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}
