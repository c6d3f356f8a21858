package store

import (
	"context"
	"fmt"

	"github.com/Harry2k21/house-finder-v1/internal/config"
	"github.com/Harry2k21/house-finder-v1/internal/logger"
)

// Storages bundles every repository the service layer depends on, all backed
// by the same database connection.
type Storages struct {
	UserRepository       UserRepository
	HistoryRepository    HistoryRepository
	PreferenceRepository PreferenceRepository
}

// NewStorages connects to the configured database backend, applies pending
// migrations, and wires up all repositories.
//
// The backend is selected by cfg.DB.Driver: "pgx" for PostgreSQL, "sqlite3"
// for a local file. Config validation guarantees the driver is one of the two.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		HistoryRepository:    NewHistoryRepository(db, log),
		PreferenceRepository: NewPreferenceRepository(db, log),
	}, nil
}
