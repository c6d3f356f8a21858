package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/Harry2k21/house-finder-v1/internal/logger"
	"github.com/Harry2k21/house-finder-v1/migrations"
)

// DB wraps *sql.DB with the driver name so that repositories can pick the
// right SQL placeholder format and the right migration set.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// Migrate applies all pending schema migrations for the connected backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Driver returns the database driver name ("pgx" or "sqlite3").
func (db *DB) Driver() string {
	return db.driver
}

// builder returns a squirrel statement builder configured with the
// placeholder format of the connected backend: $1-style for PostgreSQL,
// ?-style for SQLite.
func (db *DB) builder() sq.StatementBuilderType {
	if db.driver == "sqlite3" {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}
