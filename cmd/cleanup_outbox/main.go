package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/inventory-service/internal/app/inventory/repo"
	"github.com/light-bringer/inventory-service/internal/config"
	"github.com/light-bringer/inventory-service/internal/platform/logger"
)

const day = 24 * time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	database := flag.String("database", cfg.SpannerDB, "Spanner database path (projects/P/instances/I/databases/D)")
	processedDays := flag.Int("processed-retention", 30, "Retention days for processed events")
	failedDays := flag.Int("failed-retention", 90, "Retention days for failed events")
	dryRun := flag.Bool("dry-run", false, "Report what would be deleted without deleting")
	timeout := flag.Duration("timeout", 5*time.Minute, "Overall timeout")
	flag.Parse()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *processedDays < 0 || *failedDays < 0 {
		log.Fatal("retention days must not be negative", "processed", *processedDays, "failed", *failedDays)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	cutoffs := repo.CutoffsFrom(time.Now().UTC(), time.Duration(*processedDays)*day, time.Duration(*failedDays)*day)
	if err := run(ctx, log, *database, cutoffs, *dryRun); err != nil {
		log.Fatal("outbox cleanup failed", "database", *database, "error", err)
	}
}

func run(ctx context.Context, log *logger.Logger, database string, cutoffs repo.RetentionCutoffs, dryRun bool) error {
	client, err := spanner.NewClient(ctx, database)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	retention := repo.NewOutboxRetention(client)
	log.Info("starting outbox cleanup",
		"processed_cutoff", cutoffs.Processed.Format(time.RFC3339),
		"failed_cutoff", cutoffs.Failed.Format(time.RFC3339),
		"dry_run", dryRun,
	)

	if dryRun {
		counts, err := retention.CountExpired(ctx, cutoffs)
		if err != nil {
			return err
		}
		var total int64
		for status, n := range counts {
			log.Info("would delete events", "status", status, "count", n)
			total += n
		}
		log.Info("dry run finished", "total", total)
		return nil
	}

	deleted, err := retention.Purge(ctx, cutoffs)
	if err != nil {
		return err
	}
	log.Info("outbox cleanup completed", "deleted", deleted)
	return nil
}
