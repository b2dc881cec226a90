package m_outbox

import "cloud.google.com/go/spanner"

// Model provides a facade for type-safe operations on the outbox_events table.
type Model struct{}

func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation inserting an outbox event stamped with the commit time.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName, Columns, []interface{}{
		data.EventID,
		data.EventType,
		data.AggregateID,
		data.Payload,
		data.Status,
		spanner.CommitTimestamp,
		data.ProcessedAt,
		data.RetryCount,
		data.ErrorMessage,
	})
}
