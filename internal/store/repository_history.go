package store

import (
	"context"
	"fmt"

	"github.com/Harry2k21/house-finder-v1/internal/logger"
	"github.com/Harry2k21/house-finder-v1/models"
)

// historyRepository is the SQL-backed implementation of [HistoryRepository].
type historyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewHistoryRepository constructs a [HistoryRepository] backed by the provided
// database connection and logger.
func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	logger.Debug().Msg("creating history repository")
	return &historyRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertEntry records one scrape result, overwriting the results column if a
// row for (user_id, url, date) already exists.
//
// The write is a single INSERT ... ON CONFLICT DO UPDATE statement, so the
// at-most-one-row-per-triple invariant holds even under concurrent scrapes of
// the same page. created_at is only set on first insert.
func (r *historyRepository) UpsertEntry(ctx context.Context, entry models.HistoryEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert(models.HistoryEntry{}.TableName()).
		Columns("user_id", "url", "date", "results").
		Values(entry.UserID, entry.URL, entry.Date, entry.Results).
		Suffix("ON CONFLICT (user_id, url, date) DO UPDATE SET results = excluded.results").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.UpsertEntry").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*historyRepository.UpsertEntry").
			Int64("user_id", entry.UserID).
			Str("url", entry.URL).
			Str("date", entry.Date).
			Msg("error: upserting history entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// ListByUser returns the user's full ledger ordered by date descending, then
// creation time descending, so the most recent scrape comes first.
//
// A user with no history yields an empty (non-nil) slice.
func (r *historyRepository) ListByUser(ctx context.Context, userID int64) ([]models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select("url", "date", "results").
		From(models.HistoryEntry{}.TableName()).
		Where("user_id = ?", userID).
		OrderBy("date DESC", "created_at DESC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.ListByUser").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.ListByUser").Int64("user_id", userID).Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.HistoryEntry, 0)
	for rows.Next() {
		entry := models.HistoryEntry{UserID: userID}
		if err = rows.Scan(&entry.URL, &entry.Date, &entry.Results); err != nil {
			log.Err(err).Str("func", "*historyRepository.ListByUser").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*historyRepository.ListByUser").Msg("error: iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
