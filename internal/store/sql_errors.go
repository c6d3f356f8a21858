package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// uniqueViolationColumn inspects a driver-level error and, if it is a unique
// constraint violation on the "user" table, reports which identity column
// caused it ("username" or "email"). It returns an empty string for every
// other error.
//
// Relying on the driver error instead of a prior existence check keeps
// registration atomic: two concurrent registrations with the same username
// cannot both succeed.
func uniqueViolationColumn(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		if strings.Contains(pgErr.ConstraintName, "email") {
			return "email"
		}
		return "username"
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		if strings.Contains(sqliteErr.Error(), "user.email") {
			return "email"
		}
		return "username"
	}

	return ""
}
