package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/models/m_outbox"
	"github.com/light-bringer/inventory-service/internal/pkg/query"
)

// EventsReadModel implements the EventsReadModel interface for Spanner.
type EventsReadModel struct {
	client *spanner.Client
}

// NewEventsReadModel creates a new EventsReadModel.
func NewEventsReadModel(client *spanner.Client) contracts.EventsReadModel {
	return &EventsReadModel{client: client}
}

// ListEvents retrieves outbox events, newest first.
func (r *EventsReadModel) ListEvents(ctx context.Context, filter contracts.EventFilter) ([]*contracts.EventView, error) {
	b := query.From(m_outbox.TableName).Select(m_outbox.Columns...)

	if filter.EventType != nil {
		b = b.Where(query.Eq(m_outbox.EventType, *filter.EventType))
	}
	if filter.AggregateID != nil {
		b = b.Where(query.Eq(m_outbox.AggregateID, *filter.AggregateID))
	}
	if filter.Status != nil {
		b = b.Where(query.Eq(m_outbox.Status, *filter.Status))
	}

	stmt := b.OrderBy(m_outbox.CreatedAt, query.Desc).
		OrderBy(m_outbox.EventID, query.Asc).
		Limit(filter.Limit).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	events := make([]*contracts.EventView, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate events: %w", err)
		}

		var data m_outbox.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		events = append(events, toEventView(&data))
	}

	return events, nil
}

func toEventView(data *m_outbox.Data) *contracts.EventView {
	v := &contracts.EventView{
		EventID:     data.EventID,
		EventType:   data.EventType,
		AggregateID: data.AggregateID,
		Status:      data.Status,
		CreatedAt:   data.CreatedAt,
	}
	if data.Payload.Valid {
		v.Payload = data.Payload.String()
	}
	if data.ProcessedAt.Valid {
		t := data.ProcessedAt.Time
		v.ProcessedAt = &t
	}
	return v
}
