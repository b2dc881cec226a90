// Package testutil provides Spanner emulator helpers for integration tests.
// Every helper skips the test when SPANNER_EMULATOR_HOST is unset.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/inventory-service/internal/platform/logger"
	"github.com/light-bringer/inventory-service/internal/platform/spannerdb"
)

// Tables in delete order (children first).
var tables = []string{"outbox_events", "products", "manufacturers", "contacts"}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// MigrationsDir is the repository's migrations/ directory.
func MigrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "migrations")
}

// SetupSpannerTest creates a fresh database on the emulator with the schema
// applied and returns a client for it. The database is dropped when the
// test finishes.
func SetupSpannerTest(t *testing.T) *spanner.Client {
	t.Helper()

	if os.Getenv("SPANNER_EMULATOR_HOST") == "" {
		t.Skip("SPANNER_EMULATOR_HOST not set; skipping Spanner integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db := spannerdb.Database{
		Project:  env("SPANNER_PROJECT_ID", "test-project"),
		Instance: env("SPANNER_INSTANCE_ID", "test-instance"),
		// unique per test: tests in different packages run in parallel
		Name: fmt.Sprintf("it_%s", strings.ReplaceAll(uuid.New().String(), "-", "")[:26]),
	}

	migrations, err := spannerdb.ReadMigrations(MigrationsDir())
	require.NoError(t, err, "failed to read migrations")

	m, err := spannerdb.NewMigrator(ctx, logger.Nop())
	require.NoError(t, err, "failed to create migrator")

	require.NoError(t, m.EnsureInstance(ctx, db), "failed to ensure instance")
	require.NoError(t, m.EnsureDatabase(ctx, db), "failed to create database")
	require.NoError(t, m.Apply(ctx, db, migrations), "failed to apply migrations")

	client, err := spanner.NewClient(ctx, db.Path())
	require.NoError(t, err, "failed to create Spanner client")

	t.Cleanup(func() {
		client.Close()
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer dropCancel()
		_ = m.DropDatabase(dropCtx, db)
		m.Close()
	})

	return client
}

// CleanDatabase deletes all rows for test isolation.
func CleanDatabase(t *testing.T, client *spanner.Client) {
	t.Helper()

	mutations := make([]*spanner.Mutation, 0, len(tables))
	for _, table := range tables {
		mutations = append(mutations, spanner.Delete(table, spanner.AllKeys()))
	}
	_, err := client.Apply(context.Background(), mutations)
	require.NoError(t, err, "failed to clean database")
}

// AssertRowCount asserts the number of rows in a table.
func AssertRowCount(t *testing.T, client *spanner.Client, table string, expectedCount int) {
	t.Helper()

	iter := client.Single().Query(context.Background(), spanner.Statement{
		SQL: fmt.Sprintf("SELECT COUNT(*) FROM %s", table),
	})
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "failed to query row count")

	var count int64
	require.NoError(t, row.Columns(&count), "failed to parse count")
	require.Equal(t, int64(expectedCount), count, "unexpected row count in table %s", table)
}
