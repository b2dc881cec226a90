package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/light-bringer/inventory-service/internal/config"
	"github.com/light-bringer/inventory-service/internal/platform/logger"
	"github.com/light-bringer/inventory-service/internal/platform/spannerdb"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	defaults, err := spannerdb.ParseDatabase(cfg.SpannerDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	var db spannerdb.Database
	flag.StringVar(&db.Project, "project", defaults.Project, "GCP project ID")
	flag.StringVar(&db.Instance, "instance", defaults.Instance, "Spanner instance ID")
	flag.StringVar(&db.Name, "database", defaults.Name, "Spanner database ID")
	migrateDir := flag.String("migrations", "migrations", "Directory containing migration SQL files")
	timeout := flag.Duration("timeout", 5*time.Minute, "Overall timeout")
	flag.Parse()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if host := os.Getenv("SPANNER_EMULATOR_HOST"); host != "" {
		log.Info("using spanner emulator", "host", host)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, log, db, *migrateDir); err != nil {
		log.Fatal("migration failed", "database", db.Path(), "error", err)
	}
	log.Info("migrations completed", "database", db.Path())
}

func run(ctx context.Context, log *logger.Logger, db spannerdb.Database, dir string) error {
	migrations, err := spannerdb.ReadMigrations(dir)
	if err != nil {
		return err
	}
	if len(migrations) == 0 {
		log.Warn("no migration files found", "dir", dir)
		return nil
	}

	m, err := spannerdb.NewMigrator(ctx, log)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.EnsureInstance(ctx, db); err != nil {
		return fmt.Errorf("failed to ensure instance: %w", err)
	}
	if err := m.EnsureDatabase(ctx, db); err != nil {
		return fmt.Errorf("failed to ensure database: %w", err)
	}
	if err := m.Apply(ctx, db, migrations); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
