package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Harry2k21/house-finder-v1/internal/logger"
	"github.com/Harry2k21/house-finder-v1/internal/store"
	"github.com/Harry2k21/house-finder-v1/models"
)

// emptyDocument is what a user who has never saved a preference document of a
// given kind reads back.
var emptyDocument = json.RawMessage(`[]`)

type preferenceService struct {
	preferenceRepository store.PreferenceRepository

	logger *logger.Logger
}

func NewPreferenceService(preferenceRepository store.PreferenceRepository, logger *logger.Logger) PreferenceService {
	return &preferenceService{
		preferenceRepository: preferenceRepository,
		logger:               logger,
	}
}

// GetPreferences returns the user's stored document of the given kind, or an
// empty JSON array if none was ever saved.
func (p *preferenceService) GetPreferences(ctx context.Context, userID int64, kind models.PreferenceKind) (json.RawMessage, error) {
	content, err := p.preferenceRepository.Get(ctx, userID, kind)
	if err != nil {
		if errors.Is(err, store.ErrNoPreferencesFound) {
			return emptyDocument, nil
		}
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Str("kind", kind.String()).Msg("preferences lookup failed")
		return nil, fmt.Errorf("preferences lookup failed: %w", err)
	}

	return content, nil
}

// SavePreferences validates the request envelope and replaces the user's
// stored document wholesale.
//
// payload must be a JSON object carrying the document under a top-level key
// named after kind, e.g. {"requirements": [...]} for the requirements kind.
// Returns ErrMissingPayloadKey when the key is absent.
func (p *preferenceService) SavePreferences(ctx context.Context, userID int64, kind models.PreferenceKind, payload json.RawMessage) error {
	log := logger.FromContext(ctx)

	if len(payload) == 0 {
		return ErrInvalidDataProvided
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	content, ok := envelope[kind.String()]
	if !ok {
		return fmt.Errorf("%w: %q", ErrMissingPayloadKey, kind.String())
	}

	if err := p.preferenceRepository.Save(ctx, userID, kind, content); err != nil {
		log.Err(err).Int64("user_id", userID).Str("kind", kind.String()).Msg("preferences save failed")
		return fmt.Errorf("preferences save failed: %w", err)
	}

	return nil
}
