package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/Harry2k21/house-finder-v1/internal/logger"
	"github.com/Harry2k21/house-finder-v1/internal/scraper"
	"github.com/Harry2k21/house-finder-v1/internal/store"
	"github.com/Harry2k21/house-finder-v1/models"
)

// resultsMissingSentinel is recorded in the ledger when the page loads but the
// results-count marker is not on it. Listing sites occasionally restructure
// their markup; recording a zero keeps the search's timeline unbroken instead
// of dropping the day.
const resultsMissingSentinel = "0"

// scrapeService orchestrates a scrape: fetch the marker text, record it in
// the ledger under today's date, and return the refreshed history.
type scrapeService struct {
	fetcher           ResultsFetcher
	historyRepository store.HistoryRepository

	logger *logger.Logger
}

func NewScrapeService(fetcher ResultsFetcher, historyRepository store.HistoryRepository, logger *logger.Logger) ScrapeService {
	return &scrapeService{
		fetcher:           fetcher,
		historyRepository: historyRepository,
		logger:            logger,
	}
}

// ScrapeAndRecord fetches the results count of pageURL and upserts it into
// the user's ledger keyed by (url, today). Re-scraping the same URL on the
// same day overwrites that day's figure rather than adding a second row.
//
// A marker-less page is recorded as "0"; a page that cannot be fetched at all
// is an error and nothing is recorded.
func (s *scrapeService) ScrapeAndRecord(ctx context.Context, userID int64, pageURL string) (models.ScrapeResponse, error) {
	log := logger.FromContext(ctx)

	if pageURL == "" {
		return models.ScrapeResponse{}, ErrNoURLProvided
	}
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return models.ScrapeResponse{}, fmt.Errorf("%w: not an absolute url", ErrInvalidDataProvided)
	}

	results, err := s.fetcher.FetchResultsCount(ctx, pageURL)
	if err != nil {
		if !errors.Is(err, scraper.ErrMarkerNotFound) {
			log.Err(err).Str("url", pageURL).Msg("listing page fetch failed")
			return models.ScrapeResponse{}, fmt.Errorf("listing page fetch failed: %w", err)
		}
		log.Warn().Str("url", pageURL).Msg("results marker not found on page, recording zero")
		results = resultsMissingSentinel
	}

	entry := models.HistoryEntry{
		UserID:  userID,
		URL:     pageURL,
		Date:    time.Now().Format(time.DateOnly),
		Results: results,
	}
	if err := s.historyRepository.UpsertEntry(ctx, entry); err != nil {
		log.Err(err).Str("url", pageURL).Msg("recording scrape result failed")
		return models.ScrapeResponse{}, fmt.Errorf("recording scrape result failed: %w", err)
	}

	history, err := s.historyRepository.ListByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("history lookup failed")
		return models.ScrapeResponse{}, fmt.Errorf("history lookup failed: %w", err)
	}

	return models.ScrapeResponse{Results: results, History: history}, nil
}
