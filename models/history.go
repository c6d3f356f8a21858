package models

import "time"

// HistoryEntry is one row of the per-user search history ledger: the scraped
// result count for a listing URL on a given date.
//
// At most one entry exists per (UserID, URL, Date); a later scrape for the
// same triple overwrites Results in place.
type HistoryEntry struct {
	// ID is the surrogate primary key assigned by the database.
	ID int64 `json:"-"`

	// UserID identifies the owning user. Entries are never shared or joined
	// across users.
	UserID int64 `json:"-"`

	// URL is the listing page the count was scraped from.
	URL string `json:"url"`

	// Date is the calendar day of the scrape in "2006-01-02" form.
	Date string `json:"date"`

	// Results is the raw text of the results-count marker element,
	// e.g. "42 results". The sentinel "0" is recorded when the marker
	// is absent from the page.
	Results string `json:"results"`

	// CreatedAt is the timestamp of the first scrape for this triple.
	// Overwrites do not touch it.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the HistoryEntry model.
func (h HistoryEntry) TableName() string {
	return "user_history"
}

// ScrapeResponse is returned by GET /scrape: the count extracted from the
// requested page plus the caller's full ledger, most recent first.
type ScrapeResponse struct {
	Results string         `json:"results"`
	History []HistoryEntry `json:"history"`
}
