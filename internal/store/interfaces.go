package store

import (
	"context"
	"encoding/json"

	"github.com/Harry2k21/house-finder-v1/models"
)

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with the
	// server-assigned UserID and CreatedAt populated. Duplicate identity
	// columns surface as [ErrUsernameAlreadyExists] or
	// [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername retrieves the account with the given username, or
	// [ErrNoUserWasFound] if it does not exist.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// UsernameExists reports whether an account with the given username
	// already exists.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// EmailExists reports whether an account with the given email already
	// exists.
	EmailExists(ctx context.Context, email string) (bool, error)
}

// HistoryRepository persists the per-user scrape ledger.
type HistoryRepository interface {
	// UpsertEntry records a scrape result for (userID, url, date). If a row
	// for the triple already exists its results column is overwritten; the
	// original created_at is preserved. The write is a single atomic
	// statement.
	UpsertEntry(ctx context.Context, entry models.HistoryEntry) error

	// ListByUser returns all ledger rows of the user ordered by date
	// descending, then creation time descending. A user with no history
	// yields an empty slice, not an error.
	ListByUser(ctx context.Context, userID int64) ([]models.HistoryEntry, error)
}

// PreferenceRepository persists the per-user requirements and shortlist
// documents.
type PreferenceRepository interface {
	// Get returns the stored document of the given kind, or
	// [ErrNoPreferencesFound] if the user has never saved one.
	Get(ctx context.Context, userID int64, kind models.PreferenceKind) (json.RawMessage, error)

	// Save replaces the document of the given kind wholesale, inserting the
	// row if it does not exist yet. The write is a single atomic statement.
	Save(ctx context.Context, userID int64, kind models.PreferenceKind, content json.RawMessage) error
}
