package shared

import (
	"encoding/json"
	"fmt"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/pkg/committer"
)

// MarshalDomainEventPayload converts a domain event into the JSON stored in the outbox.
func MarshalDomainEventPayload(ev domain.DomainEvent) (string, error) {
	if ev == nil {
		return "{}", nil
	}
	b, err := json.Marshal(ev)
	if err != nil {
		return "", fmt.Errorf("marshal outbox payload for %T: %w", ev, err)
	}
	return string(b), nil
}

// AddOutboxEvents appends one outbox insert per event to plan.
func AddOutboxEvents(plan *committer.Plan, outbox contracts.OutboxRepository, events []domain.DomainEvent) error {
	for _, ev := range events {
		payload, err := MarshalDomainEventPayload(ev)
		if err != nil {
			return err
		}
		plan.Add(outbox.InsertMut(outbox.Pending(ev, payload)))
	}
	return nil
}
