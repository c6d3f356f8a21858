package service

import (
	"context"
	"encoding/json"

	"github.com/Harry2k21/house-finder-v1/models"
)

// AuthService manages user accounts and session tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ScrapeService fetches a listing page's results count and records it in the
// user's history ledger.
type ScrapeService interface {
	ScrapeAndRecord(ctx context.Context, userID int64, pageURL string) (models.ScrapeResponse, error)
}

// HistoryService reads the user's scrape ledger.
type HistoryService interface {
	GetHistory(ctx context.Context, userID int64) ([]models.HistoryEntry, error)
}

// PreferenceService manages the per-user requirements and shortlist documents.
//
// SavePreferences takes the raw request body and requires it to be a JSON
// object whose top-level key matches kind; the value under that key is what
// gets stored.
type PreferenceService interface {
	GetPreferences(ctx context.Context, userID int64, kind models.PreferenceKind) (json.RawMessage, error)
	SavePreferences(ctx context.Context, userID int64, kind models.PreferenceKind, payload json.RawMessage) error
}

// GeocodeService resolves free-form addresses to coordinates.
type GeocodeService interface {
	Geocode(ctx context.Context, address string) (models.Location, error)
}

// ExpertService answers house-buying questions via the advice model.
type ExpertService interface {
	AskExpert(ctx context.Context, question string) (string, error)
}

// ResultsFetcher is the outbound dependency of ScrapeService: it retrieves the
// marker text from a live listing page.
type ResultsFetcher interface {
	FetchResultsCount(ctx context.Context, pageURL string) (string, error)
}

// Geocoder is the outbound dependency of GeocodeService.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (models.Location, error)
}

// ExpertClient is the outbound dependency of ExpertService.
type ExpertClient interface {
	Ask(ctx context.Context, question string) (string, error)
}
