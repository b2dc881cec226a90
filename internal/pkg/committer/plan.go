// Package committer implements the mutation-plan pattern for Spanner.
//
// Repositories never write. They return *spanner.Mutation values which a use
// case collects into a Plan; the Committer then applies the whole plan in a
// single transaction, together with the outbox rows describing it.
//
// When the plan depends on reads (existence checks, uniqueness pre-flights)
// the use case builds it inside ApplyInTransaction so the reads and the
// buffered writes share one read-write transaction:
//
//	err := c.ApplyInTransaction(ctx, func(ctx context.Context, r committer.Reader) (*committer.Plan, error) {
//	    ok, err := manufacturers.Exists(ctx, r, id)
//	    ...
//	    plan := committer.NewPlan()
//	    plan.Add(products.InsertMut(product))
//	    return plan, nil
//	})
//
// Spanner may run the build function more than once when a transaction is
// aborted, so it must not have side effects outside the plan it returns.
package committer

import (
	"cloud.google.com/go/spanner"
)

// Plan is an ordered collection of mutations applied atomically.
type Plan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty Plan.
func NewPlan() *Plan {
	return &Plan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add adds a mutation to the plan.
// Nil mutations are silently ignored for convenience.
func (p *Plan) Add(mut *spanner.Mutation) {
	if mut != nil {
		p.mutations = append(p.mutations, mut)
	}
}

// AddMultiple adds multiple mutations to the plan.
func (p *Plan) AddMultiple(muts []*spanner.Mutation) {
	for _, mut := range muts {
		p.Add(mut)
	}
}

// Mutations returns all collected mutations.
func (p *Plan) Mutations() []*spanner.Mutation {
	return p.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (p *Plan) IsEmpty() bool {
	return p == nil || len(p.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (p *Plan) Count() int {
	if p == nil {
		return 0
	}
	return len(p.mutations)
}
