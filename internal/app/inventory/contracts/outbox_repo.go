package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
)

// OutboxEvent is one row of outbox_events: a product or manufacturer change
// written in the same transaction as the change itself.
type OutboxEvent struct {
	EventID     string
	EventType   string // domain.EventProductCreated, ...
	AggregateID string // product or manufacturer id
	Payload     string // JSON object, may be empty
	Status      string
}

// OutboxRepository turns inventory domain events into outbox writes.
type OutboxRepository interface {
	InsertMut(event *OutboxEvent) *spanner.Mutation

	// Pending wraps a domain event as a new pending outbox row with a fresh id.
	Pending(event domain.DomainEvent, payload string) *OutboxEvent
}
