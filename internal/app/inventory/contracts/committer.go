package contracts

import (
	"context"

	"github.com/light-bringer/inventory-service/internal/pkg/committer"
)

// Committer applies mutation plans atomically. Use cases depend on this
// interface so they can be exercised without a database.
type Committer interface {
	// ApplyInTransaction builds the plan from reads made in the same
	// read-write transaction that applies it.
	ApplyInTransaction(ctx context.Context, build committer.BuildFunc) error
}
