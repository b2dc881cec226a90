package list_events

import (
	"context"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/models/m_outbox"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// Request contains filtering parameters for listing events.
type Request struct {
	EventType   *string // e.g. "product.created"
	AggregateID *string
	Status      *string // "pending", "processed" or "failed"
	Limit       int64
}

// Query handles the list events query use case.
type Query struct {
	readModel contracts.EventsReadModel
}

// NewQuery creates a new list events query.
func NewQuery(readModel contracts.EventsReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves outbox events, newest first.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.EventView, error) {
	if req.Status != nil && !m_outbox.ValidStatus(*req.Status) {
		verr := domain.NewValidationError()
		verr.Add("status", "status must be one of pending, processed, failed")
		return nil, verr
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return q.readModel.ListEvents(ctx, contracts.EventFilter{
		EventType:   req.EventType,
		AggregateID: req.AggregateID,
		Status:      req.Status,
		Limit:       limit,
	})
}
