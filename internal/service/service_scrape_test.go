package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harry2k21/house-finder-v1/internal/logger"
	"github.com/Harry2k21/house-finder-v1/internal/scraper"
	"github.com/Harry2k21/house-finder-v1/models"
)

// ─────────────────────────────────────────────
// Mocks: ResultsFetcher, store.HistoryRepository
// ─────────────────────────────────────────────

type mockFetcher struct {
	fetchFn func(ctx context.Context, pageURL string) (string, error)
}

func (m *mockFetcher) FetchResultsCount(ctx context.Context, pageURL string) (string, error) {
	if m.fetchFn != nil {
		return m.fetchFn(ctx, pageURL)
	}
	return "", nil
}

type mockHistoryRepository struct {
	upsertEntryFn func(ctx context.Context, entry models.HistoryEntry) error
	listByUserFn  func(ctx context.Context, userID int64) ([]models.HistoryEntry, error)
}

func (m *mockHistoryRepository) UpsertEntry(ctx context.Context, entry models.HistoryEntry) error {
	if m.upsertEntryFn != nil {
		return m.upsertEntryFn(ctx, entry)
	}
	return nil
}

func (m *mockHistoryRepository) ListByUser(ctx context.Context, userID int64) ([]models.HistoryEntry, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return []models.HistoryEntry{}, nil
}

// ─────────────────────────────────────────────
// ScrapeAndRecord
// ─────────────────────────────────────────────

func TestScrapeAndRecord_Success(t *testing.T) {
	var recorded models.HistoryEntry
	fetcher := &mockFetcher{
		fetchFn: func(ctx context.Context, pageURL string) (string, error) {
			return "42 results", nil
		},
	}
	repo := &mockHistoryRepository{
		upsertEntryFn: func(ctx context.Context, entry models.HistoryEntry) error {
			recorded = entry
			return nil
		},
		listByUserFn: func(ctx context.Context, userID int64) ([]models.HistoryEntry, error) {
			return []models.HistoryEntry{{URL: "https://listings.example/search", Date: time.Now().Format(time.DateOnly), Results: "42 results"}}, nil
		},
	}
	svc := NewScrapeService(fetcher, repo, logger.Nop())

	response, err := svc.ScrapeAndRecord(context.Background(), 7, "https://listings.example/search")
	require.NoError(t, err)
	assert.Equal(t, "42 results", response.Results)
	require.Len(t, response.History, 1)

	assert.Equal(t, int64(7), recorded.UserID)
	assert.Equal(t, "https://listings.example/search", recorded.URL)
	assert.Equal(t, "42 results", recorded.Results)
	assert.Equal(t, time.Now().Format(time.DateOnly), recorded.Date)
}

// A page without the marker still produces a ledger row, holding "0".
func TestScrapeAndRecord_MarkerMissingRecordsZero(t *testing.T) {
	var recorded models.HistoryEntry
	fetcher := &mockFetcher{
		fetchFn: func(ctx context.Context, pageURL string) (string, error) {
			return "", scraper.ErrMarkerNotFound
		},
	}
	repo := &mockHistoryRepository{
		upsertEntryFn: func(ctx context.Context, entry models.HistoryEntry) error {
			recorded = entry
			return nil
		},
	}
	svc := NewScrapeService(fetcher, repo, logger.Nop())

	response, err := svc.ScrapeAndRecord(context.Background(), 7, "https://listings.example/search")
	require.NoError(t, err)
	assert.Equal(t, "0", response.Results)
	assert.Equal(t, "0", recorded.Results)
}

// A page that cannot be fetched at all records nothing.
func TestScrapeAndRecord_FetchFailureRecordsNothing(t *testing.T) {
	fetcher := &mockFetcher{
		fetchFn: func(ctx context.Context, pageURL string) (string, error) {
			return "", scraper.ErrFetchFailed
		},
	}
	upserted := false
	repo := &mockHistoryRepository{
		upsertEntryFn: func(ctx context.Context, entry models.HistoryEntry) error {
			upserted = true
			return nil
		},
	}
	svc := NewScrapeService(fetcher, repo, logger.Nop())

	_, err := svc.ScrapeAndRecord(context.Background(), 7, "https://listings.example/search")
	assert.ErrorIs(t, err, scraper.ErrFetchFailed)
	assert.False(t, upserted)
}

func TestScrapeAndRecord_NoURL(t *testing.T) {
	svc := NewScrapeService(&mockFetcher{}, &mockHistoryRepository{}, logger.Nop())

	_, err := svc.ScrapeAndRecord(context.Background(), 7, "")
	assert.ErrorIs(t, err, ErrNoURLProvided)
}

func TestScrapeAndRecord_RelativeURL(t *testing.T) {
	svc := NewScrapeService(&mockFetcher{}, &mockHistoryRepository{}, logger.Nop())

	_, err := svc.ScrapeAndRecord(context.Background(), 7, "/search?area=london")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestScrapeAndRecord_UpsertError(t *testing.T) {
	fetcher := &mockFetcher{
		fetchFn: func(ctx context.Context, pageURL string) (string, error) {
			return "42 results", nil
		},
	}
	repo := &mockHistoryRepository{
		upsertEntryFn: func(ctx context.Context, entry models.HistoryEntry) error {
			return errors.New("disk full")
		},
	}
	svc := NewScrapeService(fetcher, repo, logger.Nop())

	_, err := svc.ScrapeAndRecord(context.Background(), 7, "https://listings.example/search")
	require.Error(t, err)
}

// ─────────────────────────────────────────────
// GetHistory
// ─────────────────────────────────────────────

func TestGetHistory_Success(t *testing.T) {
	repo := &mockHistoryRepository{
		listByUserFn: func(ctx context.Context, userID int64) ([]models.HistoryEntry, error) {
			assert.Equal(t, int64(7), userID)
			return []models.HistoryEntry{
				{URL: "https://listings.example/a", Date: "2026-09-01", Results: "42 results"},
				{URL: "https://listings.example/b", Date: "2026-08-31", Results: "40 results"},
			}, nil
		},
	}
	svc := NewHistoryService(repo, logger.Nop())

	history, err := svc.GetHistory(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "2026-09-01", history[0].Date)
}

func TestGetHistory_Empty(t *testing.T) {
	svc := NewHistoryService(&mockHistoryRepository{}, logger.Nop())

	history, err := svc.GetHistory(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}
