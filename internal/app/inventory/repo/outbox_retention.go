package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/inventory-service/internal/models/m_outbox"
)

// RetentionCutoffs bounds which finished events are old enough to purge.
type RetentionCutoffs struct {
	Processed time.Time
	Failed    time.Time
}

// CutoffsFrom derives cutoffs from retention windows counted back from now.
func CutoffsFrom(now time.Time, processed, failed time.Duration) RetentionCutoffs {
	return RetentionCutoffs{Processed: now.Add(-processed), Failed: now.Add(-failed)}
}

const expiredPredicate = `(status = @processed AND processed_at < @processedCutoff)
   OR (status = @failed AND processed_at < @failedCutoff)`

// OutboxRetention deletes old processed and failed outbox events.
// Pending events are never selected.
type OutboxRetention struct {
	client *spanner.Client
}

func NewOutboxRetention(client *spanner.Client) *OutboxRetention {
	return &OutboxRetention{client: client}
}

func (c RetentionCutoffs) params() map[string]interface{} {
	return map[string]interface{}{
		"processed":       m_outbox.StatusProcessed,
		"failed":          m_outbox.StatusFailed,
		"processedCutoff": c.Processed,
		"failedCutoff":    c.Failed,
	}
}

// CountExpired returns the number of purgeable events per status.
func (r *OutboxRetention) CountExpired(ctx context.Context, cutoffs RetentionCutoffs) (map[string]int64, error) {
	stmt := spanner.Statement{
		SQL:    "SELECT status, COUNT(*) FROM " + m_outbox.TableName + " WHERE " + expiredPredicate + " GROUP BY status",
		Params: cutoffs.params(),
	}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	counts := make(map[string]int64)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to count expired events: %w", err)
		}

		var status string
		var n int64
		if err := row.Columns(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan expired count: %w", err)
		}
		counts[status] = n
	}
	return counts, nil
}

// Purge deletes expired events and returns how many rows went.
func (r *OutboxRetention) Purge(ctx context.Context, cutoffs RetentionCutoffs) (int64, error) {
	stmt := spanner.Statement{
		SQL:    "DELETE FROM " + m_outbox.TableName + " WHERE " + expiredPredicate,
		Params: cutoffs.params(),
	}

	var deleted int64
	_, err := r.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		n, err := txn.Update(ctx, stmt)
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to purge outbox: %w", err)
	}
	return deleted, nil
}
