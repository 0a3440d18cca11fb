// Package store owns the SQLite file: opening it, provisioning the schema and
// the generic record access used by every section.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/frahmantamala/hrm/internal"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	driverName = "sqlite3"
	memoryPath = ":memory:"
)

// DB exposes one connection pool through two APIs. Gorm drives the per-row
// record operations, sqlx runs the fixed statements.
type DB struct {
	SQL  *sqlx.DB
	Gorm *gorm.DB
}

// Open connects to the database file described by cfg, creating its parent
// directory when needed.
func Open(cfg internal.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	if cfg.Path != memoryPath {
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating database directory: %w", err)
			}
		}
	}

	dbConn, err := sqlx.Connect(driverName, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	if cfg.Path == memoryPath {
		// Every sqlite3 connection to :memory: opens its own empty database.
		// The pool must keep exactly one connection alive for good.
		dbConn.SetMaxOpenConns(1)
		dbConn.SetMaxIdleConns(1)
		dbConn.SetConnMaxLifetime(0)
		dbConn.SetConnMaxIdleTime(0)
	} else {
		dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
		dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
		if cfg.ConnMaxLifetime > 0 {
			dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		}
	}

	gormDB, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: driverName, Conn: dbConn.DB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 newGormLogger(logger),
	})
	if err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to wrap db connection: %w", err)
	}

	return &DB{SQL: dbConn, Gorm: gormDB}, nil
}

func (db *DB) Close() error {
	return db.SQL.Close()
}

func (db *DB) Ping(ctx context.Context) error {
	return db.SQL.PingContext(ctx)
}

func newGormLogger(logger *slog.Logger) gormlogger.Interface {
	if logger == nil {
		return gormlogger.Default.LogMode(gormlogger.Silent)
	}
	return gormlogger.New(
		slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}
