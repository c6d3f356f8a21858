// Package scraper fetches property listing pages and extracts the
// results-count marker element.
//
// The marker is located with a CSS selector (configurable, because listing
// sites rename their hashed CSS-module classes between deployments). The rest
// of the page is ignored.
package scraper

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/Harry2k21/house-finder-v1/internal/config"
	"github.com/Harry2k21/house-finder-v1/internal/logger"
)

// Scraper fetches listing pages over HTTP and pulls out the results count.
// It is safe for concurrent use; all state is read-only after construction.
type Scraper struct {
	client   *resty.Client
	selector string
	logger   *logger.Logger
}

// New constructs a [Scraper] from configuration. The User-Agent header is set
// on every request because some listing sites reject agent-less clients.
func New(cfg config.Scraper, log *logger.Logger) *Scraper {
	client := resty.New().
		SetHeader("User-Agent", cfg.UserAgent).
		SetTimeout(cfg.RequestTimeout)

	return &Scraper{
		client:   client,
		selector: cfg.ResultsSelector,
		logger:   log,
	}
}

// FetchResultsCount downloads pageURL and returns the trimmed text of the
// first element matching the configured selector (e.g. "42 results").
//
// Failure modes are distinguished so the caller can apply different policies:
//   - [ErrFetchFailed] — the page could not be retrieved or parsed at all
//     (network error, non-2xx status, unreadable body).
//   - [ErrMarkerNotFound] — the page was retrieved but the marker element is
//     absent.
func (s *Scraper) FetchResultsCount(ctx context.Context, pageURL string) (string, error) {
	log := logger.FromContext(ctx)

	res, err := s.client.R().
		SetContext(ctx).
		Get(pageURL)
	if err != nil {
		log.Err(err).Str("url", pageURL).Msg("listing page fetch failed")
		return "", fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	if res.IsError() {
		log.Error().Str("url", pageURL).Int("status", res.StatusCode()).Msg("listing page returned error status")
		return "", fmt.Errorf("%w: unexpected status %d", ErrFetchFailed, res.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		log.Err(err).Str("url", pageURL).Msg("listing page parse failed")
		return "", fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	marker := doc.Find(s.selector)
	if marker.Length() == 0 {
		return "", ErrMarkerNotFound
	}

	return strings.TrimSpace(marker.First().Text()), nil
}
