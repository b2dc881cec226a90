package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// HealthProbe checks that the database answers queries.
type HealthProbe struct {
	client *spanner.Client
}

func NewHealthProbe(client *spanner.Client) *HealthProbe {
	return &HealthProbe{client: client}
}

// Ping runs a trivial query.
func (p *HealthProbe) Ping(ctx context.Context) error {
	iter := p.client.Single().Query(ctx, spanner.Statement{SQL: "SELECT 1"})
	defer iter.Stop()

	if _, err := iter.Next(); err != nil {
		return fmt.Errorf("spanner ping failed: %w", err)
	}
	return nil
}
