package m_manufacturer

import "cloud.google.com/go/spanner"

// Model provides a facade for type-safe operations on the manufacturers table.
type Model struct{}

func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation inserting a manufacturer.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName, Columns, []interface{}{
		data.ManufacturerID,
		data.Name,
		data.Country,
		data.Website,
		data.Description,
		data.Address,
		data.ContactID,
		spanner.CommitTimestamp,
		spanner.CommitTimestamp,
	})
}
