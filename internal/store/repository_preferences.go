package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Harry2k21/house-finder-v1/internal/logger"
	"github.com/Harry2k21/house-finder-v1/models"
)

// preferenceRepository is the SQL-backed implementation of
// [PreferenceRepository]. One implementation serves both the requirements and
// the shortlist documents; the kind selects the target table and column.
type preferenceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPreferenceRepository constructs a [PreferenceRepository] backed by the
// provided database connection and logger.
func NewPreferenceRepository(db *DB, logger *logger.Logger) PreferenceRepository {
	logger.Debug().Msg("creating preference repository")
	return &preferenceRepository{
		db:     db,
		logger: logger,
	}
}

// Get returns the most recently updated document of the given kind for the
// user, or [ErrNoPreferencesFound] if none has ever been saved.
func (r *preferenceRepository) Get(ctx context.Context, userID int64, kind models.PreferenceKind) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(kind.Column()).
		From(kind.TableName()).
		Where("user_id = ?", userID).
		OrderBy("updated_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*preferenceRepository.Get").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var content string
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&content); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoPreferencesFound
		}

		log.Err(err).Str("func", "*preferenceRepository.Get").Str("kind", kind.String()).Msg("error: scanning error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return json.RawMessage(content), nil
}

// Save replaces the user's document of the given kind wholesale.
//
// The write is a single INSERT ... ON CONFLICT (user_id) DO UPDATE statement,
// which both enforces the one-current-record-per-user-per-kind invariant and
// refreshes updated_at on every save.
func (r *preferenceRepository) Save(ctx context.Context, userID int64, kind models.PreferenceKind, content json.RawMessage) error {
	log := logger.FromContext(ctx)

	column := kind.Column()
	query, args, err := r.db.builder().
		Insert(kind.TableName()).
		Columns("user_id", column).
		Values(userID, string(content)).
		Suffix(fmt.Sprintf(
			"ON CONFLICT (user_id) DO UPDATE SET %s = excluded.%s, updated_at = CURRENT_TIMESTAMP",
			column, column,
		)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*preferenceRepository.Save").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*preferenceRepository.Save").
			Int64("user_id", userID).
			Str("kind", kind.String()).
			Msg("error: upserting preference document")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
