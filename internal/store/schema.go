package store

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// EnsureSchema creates any missing table and seeds the rules table when it is
// empty. Calling it on every start leaves existing data untouched.
func EnsureSchema(ctx context.Context, db *DB, logger *slog.Logger) error {
	provider, err := newProvider(db)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, res := range results {
		logger.Info("migration applied",
			"version", res.Source.Version,
			"path", res.Source.Path,
			"duration_ms", res.Duration.Milliseconds())
	}

	gaps, err := SchemaGaps(ctx, db)
	if err != nil {
		return err
	}
	for _, gap := range gaps {
		logger.Warn("existing table predates a constraint", "gap", gap)
	}

	seeded, err := seedRules(ctx, db)
	if err != nil {
		return err
	}
	if seeded > 0 {
		logger.Info("seeded default rules", "count", seeded)
	}

	return nil
}

// RollbackSchema reverts the latest migration. With a single migration this
// drops every table.
func RollbackSchema(ctx context.Context, db *DB, logger *slog.Logger) error {
	provider, err := newProvider(db)
	if err != nil {
		return err
	}

	res, err := provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("goose down: %w", err)
	}
	if res != nil {
		logger.Info("migration rolled back", "version", res.Source.Version, "path", res.Source.Path)
	}
	return nil
}

func newProvider(db *DB) (*goose.Provider, error) {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("opening embedded migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db.SQL.DB, fsys)
	if err != nil {
		return nil, fmt.Errorf("goose: creating provider: %w", err)
	}
	return provider, nil
}

const (
	employeeDepartmentFK = `SELECT COUNT(*) FROM pragma_foreign_key_list('employee') WHERE "table" = 'department'`
	leaveRecordDDL       = `SELECT sql FROM sqlite_master WHERE type = 'table' AND name = 'leave_record'`
)

// SchemaGaps lists constraints missing from tables that were created before
// this schema, typically a file written by the earlier form application.
// CREATE TABLE IF NOT EXISTS leaves such tables as they are.
func SchemaGaps(ctx context.Context, db *DB) ([]string, error) {
	var gaps []string

	var fks int
	if err := db.SQL.GetContext(ctx, &fks, employeeDepartmentFK); err != nil {
		return nil, fmt.Errorf("inspecting employee foreign keys: %w", err)
	}
	if fks == 0 {
		gaps = append(gaps, "employee.department_id has no foreign key: referenced departments can be deleted")
	}

	var ddl string
	if err := db.SQL.GetContext(ctx, &ddl, leaveRecordDDL); err != nil {
		return nil, fmt.Errorf("inspecting leave_record: %w", err)
	}
	if !strings.Contains(strings.ToUpper(ddl), "CHECK") {
		gaps = append(gaps, "leave_record.status has no check: any status is stored")
	}

	return gaps, nil
}
