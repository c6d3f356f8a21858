package service

import (
	"context"
	"fmt"

	"github.com/Harry2k21/house-finder-v1/internal/logger"
	"github.com/Harry2k21/house-finder-v1/internal/store"
	"github.com/Harry2k21/house-finder-v1/models"
)

type historyService struct {
	historyRepository store.HistoryRepository

	logger *logger.Logger
}

func NewHistoryService(historyRepository store.HistoryRepository, logger *logger.Logger) HistoryService {
	return &historyService{
		historyRepository: historyRepository,
		logger:            logger,
	}
}

// GetHistory returns the user's full scrape ledger, newest date first. A user
// who has never scraped gets an empty slice.
func (h *historyService) GetHistory(ctx context.Context, userID int64) ([]models.HistoryEntry, error) {
	history, err := h.historyRepository.ListByUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("history lookup failed")
		return nil, fmt.Errorf("history lookup failed: %w", err)
	}

	return history, nil
}
