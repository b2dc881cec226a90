package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// Reader is the read surface shared by *spanner.ReadOnlyTransaction and
// *spanner.ReadWriteTransaction. Repositories read through it so the same
// lookup works inside and outside a transaction.
type Reader interface {
	ReadRow(ctx context.Context, table string, key spanner.Key, columns []string) (*spanner.Row, error)
	Query(ctx context.Context, statement spanner.Statement) *spanner.RowIterator
}

// BuildFunc reads what it needs through r and returns the plan to apply.
type BuildFunc func(ctx context.Context, r Reader) (*Plan, error)

// ErrorMapper translates store errors (e.g. unique index violations) into
// domain errors. It must return err unchanged when it does not recognise it.
type ErrorMapper func(err error) error

// Option configures a Committer.
type Option func(*Committer)

// WithErrorMapper installs a translator applied to every commit failure.
func WithErrorMapper(m ErrorMapper) Option {
	return func(c *Committer) {
		c.mapErr = m
	}
}

// Committer applies plans against a Spanner database.
type Committer struct {
	client *spanner.Client
	mapErr ErrorMapper
}

// NewCommitter creates a new Committer.
func NewCommitter(client *spanner.Client, opts ...Option) *Committer {
	c := &Committer{client: client}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ApplyInTransaction runs build inside a read-write transaction and buffers
// the resulting plan in that same transaction. Errors returned by build abort
// the transaction and are returned unchanged, so domain errors survive.
func (c *Committer) ApplyInTransaction(ctx context.Context, build BuildFunc) error {
	var buildErr error

	_, err := c.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		buildErr = nil
		plan, err := build(ctx, txn)
		if err != nil {
			buildErr = err
			return err
		}
		if plan.IsEmpty() {
			return nil
		}
		return txn.BufferWrite(plan.Mutations())
	})
	if err != nil {
		if buildErr != nil {
			return buildErr
		}
		return c.translate(fmt.Errorf("transaction failed: %w", err))
	}

	return nil
}

func (c *Committer) translate(err error) error {
	if c.mapErr == nil {
		return err
	}
	return c.mapErr(err)
}
