package repo

import (
	"encoding/json"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/models/m_outbox"
)

// OutboxRepo implements OutboxRepository for Spanner.
type OutboxRepo struct {
	model *m_outbox.Model
}

// NewOutboxRepo creates a new OutboxRepo.
func NewOutboxRepo() contracts.OutboxRepository {
	return &OutboxRepo{model: m_outbox.NewModel()}
}

// InsertMut creates a mutation for inserting an outbox event.
func (r *OutboxRepo) InsertMut(event *contracts.OutboxEvent) *spanner.Mutation {
	payload := spanner.NullJSON{}
	if event.Payload != "" {
		// RawMessage keeps the payload a JSON object instead of a quoted string
		payload = spanner.NullJSON{Value: json.RawMessage(event.Payload), Valid: true}
	}

	return r.model.InsertMut(&m_outbox.Data{
		EventID:     event.EventID,
		EventType:   event.EventType,
		AggregateID: event.AggregateID,
		Payload:     payload,
		Status:      event.Status,
	})
}

// Pending builds a pending outbox row for event.
func (r *OutboxRepo) Pending(event domain.DomainEvent, payload string) *contracts.OutboxEvent {
	return &contracts.OutboxEvent{
		EventID:     uuid.New().String(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		Status:      m_outbox.StatusPending,
	}
}
