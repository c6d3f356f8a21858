package scraper

import "errors"

var (
	// ErrFetchFailed is returned when the listing page could not be retrieved
	// or parsed at all.
	ErrFetchFailed = errors.New("failed to fetch listing page")

	// ErrMarkerNotFound is returned when the page was retrieved but the
	// results-count marker element is not present in the document.
	ErrMarkerNotFound = errors.New("results count element not found")
)
