package m_contact

import "cloud.google.com/go/spanner"

// Model provides a facade for type-safe operations on the contacts table.
type Model struct{}

func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation inserting a contact.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName, Columns, []interface{}{
		data.ContactID,
		data.Name,
		data.Email,
		data.Phone,
		spanner.CommitTimestamp,
	})
}
