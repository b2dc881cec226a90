// Package spannerdb bootstraps Spanner instances and databases and applies
// the DDL under migrations/. It is shared by cmd/migrate and the emulator
// test helpers.
package spannerdb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/inventory-service/internal/platform/logger"
)

// Database identifies a Spanner database.
type Database struct {
	Project  string
	Instance string
	Name     string
}

var databasePath = regexp.MustCompile(`^projects/([^/]+)/instances/([^/]+)/databases/([^/]+)$`)

// ParseDatabase splits "projects/P/instances/I/databases/D".
func ParseDatabase(path string) (Database, error) {
	m := databasePath.FindStringSubmatch(strings.TrimSpace(path))
	if m == nil {
		return Database{}, fmt.Errorf("invalid spanner database path %q", path)
	}
	return Database{Project: m[1], Instance: m[2], Name: m[3]}, nil
}

func (d Database) ProjectPath() string  { return "projects/" + d.Project }
func (d Database) InstancePath() string { return d.ProjectPath() + "/instances/" + d.Instance }
func (d Database) Path() string         { return d.InstancePath() + "/databases/" + d.Name }

// Migration is one DDL file.
type Migration struct {
	Name       string
	Statements []string
}

// ReadMigrations loads every *.sql file in dir, ordered by file name.
func ReadMigrations(dir string) ([]Migration, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("failed to list migration files: %w", err)
	}
	sort.Strings(files)

	out := make([]Migration, 0, len(files))
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", file, err)
		}
		out = append(out, Migration{Name: filepath.Base(file), Statements: SplitStatements(string(content))})
	}
	return out, nil
}

// SplitStatements drops "--" comment lines and splits on semicolons.
func SplitStatements(content string) []string {
	var cleaned []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		cleaned = append(cleaned, line)
	}

	var result []string
	for _, stmt := range strings.Split(strings.Join(cleaned, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			result = append(result, stmt)
		}
	}
	return result
}

var createObject = regexp.MustCompile(`(?i)^CREATE\s+(?:UNIQUE\s+)?(?:NULL_FILTERED\s+)?(TABLE|INDEX)\s+` + "`?" + `(\w+)`)

func objectKey(stmt string) (string, bool) {
	m := createObject.FindStringSubmatch(strings.TrimSpace(stmt))
	if m == nil {
		return "", false
	}
	return strings.ToUpper(m[1]) + " " + strings.ToLower(m[2]), true
}

// PendingStatements returns the statements of stmts that do not create a
// table or index already present in existing. Statements that are not
// CREATE TABLE or CREATE INDEX are always returned.
func PendingStatements(existing, stmts []string) []string {
	have := make(map[string]bool, len(existing))
	for _, s := range existing {
		if key, ok := objectKey(s); ok {
			have[key] = true
		}
	}

	var pending []string
	for _, s := range stmts {
		if key, ok := objectKey(s); ok && have[key] {
			continue
		}
		pending = append(pending, s)
	}
	return pending
}

// Migrator creates instances and databases and applies DDL.
type Migrator struct {
	log       *logger.Logger
	instances *instance.InstanceAdminClient
	databases *database.DatabaseAdminClient
}

// NewMigrator opens the admin clients. SPANNER_EMULATOR_HOST is honoured by
// the client libraries.
func NewMigrator(ctx context.Context, log *logger.Logger) (*Migrator, error) {
	instances, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create instance admin client: %w", err)
	}
	databases, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		instances.Close()
		return nil, fmt.Errorf("failed to create database admin client: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Migrator{log: log, instances: instances, databases: databases}, nil
}

func (m *Migrator) Close() {
	m.databases.Close()
	m.instances.Close()
}

// EnsureInstance creates the instance on the emulator config when missing.
func (m *Migrator) EnsureInstance(ctx context.Context, db Database) error {
	_, err := m.instances.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: db.InstancePath()})
	if err == nil {
		m.log.Debug("instance already exists", "instance", db.Instance)
		return nil
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to get instance: %w", err)
	}

	m.log.Info("creating instance", "instance", db.Instance)
	op, err := m.instances.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     db.ProjectPath(),
		InstanceId: db.Instance,
		Instance: &instancepb.Instance{
			Config:      db.ProjectPath() + "/instanceConfigs/emulator-config",
			DisplayName: "Development Instance",
			NodeCount:   1,
		},
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("failed to create instance: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		return fmt.Errorf("failed to wait for instance creation: %w", err)
	}
	return nil
}

// EnsureDatabase creates the database when missing.
func (m *Migrator) EnsureDatabase(ctx context.Context, db Database) error {
	_, err := m.databases.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: db.Path()})
	if err == nil {
		m.log.Debug("database already exists", "database", db.Name)
		return nil
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to get database: %w", err)
	}

	m.log.Info("creating database", "database", db.Name)
	op, err := m.databases.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          db.InstancePath(),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", db.Name),
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("failed to create database: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for database creation: %w", err)
	}
	return nil
}

// Apply runs each migration's statements that have not been applied yet.
// Re-running against an up-to-date database is a no-op.
func (m *Migrator) Apply(ctx context.Context, db Database, migrations []Migration) error {
	ddl, err := m.databases.GetDatabaseDdl(ctx, &databasepb.GetDatabaseDdlRequest{Database: db.Path()})
	if err != nil {
		return fmt.Errorf("failed to read current schema: %w", err)
	}
	existing := ddl.GetStatements()

	for _, mig := range migrations {
		pending := PendingStatements(existing, mig.Statements)
		if len(pending) == 0 {
			m.log.Info("migration already applied", "migration", mig.Name)
			continue
		}

		m.log.Info("applying migration", "migration", mig.Name, "statements", len(pending))
		op, err := m.databases.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   db.Path(),
			Statements: pending,
		})
		if err != nil {
			return fmt.Errorf("failed to start DDL update for %s: %w", mig.Name, err)
		}
		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to apply DDL for %s: %w", mig.Name, err)
		}
		existing = append(existing, pending...)
	}
	return nil
}

// DropDatabase deletes the database. Used to clean up test databases.
func (m *Migrator) DropDatabase(ctx context.Context, db Database) error {
	return m.databases.DropDatabase(ctx, &databasepb.DropDatabaseRequest{Database: db.Path()})
}
