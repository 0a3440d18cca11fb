// Package storetest opens provisioned throwaway databases for tests.
package storetest

import (
	"context"
	"path/filepath"
	"time"

	"github.com/frahmantamala/hrm/internal"
	"github.com/frahmantamala/hrm/internal/store"
	"github.com/frahmantamala/hrm/pkg/logger"
)

// Open creates hrm.db inside dir and runs EnsureSchema on it.
func Open(dir string) (*store.DB, error) {
	cfg := internal.DatabaseConfig{
		Path:         filepath.Join(dir, "hrm.db"),
		MaxOpenConns: 2,
		MaxIdleConns: 1,
		BusyTimeout:  time.Second,
		QueryTimeout: 5 * time.Second,
	}

	db, err := store.Open(cfg, logger.Discard())
	if err != nil {
		return nil, err
	}
	if err := store.EnsureSchema(context.Background(), db, logger.Discard()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
