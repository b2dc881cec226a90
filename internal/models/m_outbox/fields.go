package m_outbox

// Field name constants for the outbox_events table.
const (
	TableName = "outbox_events"

	EventID      = "event_id"
	EventType    = "event_type"
	AggregateID  = "aggregate_id"
	Payload      = "payload"
	Status       = "status"
	CreatedAt    = "created_at"
	ProcessedAt  = "processed_at"
	RetryCount   = "retry_count"
	ErrorMessage = "error_message"
)

var Columns = []string{
	EventID,
	EventType,
	AggregateID,
	Payload,
	Status,
	CreatedAt,
	ProcessedAt,
	RetryCount,
	ErrorMessage,
}

// Event status values. Rows are written pending; a relay marks them processed or failed.
const (
	StatusPending   = "pending"
	StatusProcessed = "processed"
	StatusFailed    = "failed"
)

// ValidStatus reports whether s is a known status value.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessed, StatusFailed:
		return true
	}
	return false
}
