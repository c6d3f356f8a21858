package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Harry2k21/house-finder-v1/internal/logger"
	"github.com/Harry2k21/house-finder-v1/internal/service"
	"github.com/Harry2k21/house-finder-v1/models"
)

// ─────────────────────────────────────────────
// Mock services
// Each method field can be overridden per test case.
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockScrapeService struct {
	scrapeAndRecordFn func(ctx context.Context, userID int64, pageURL string) (models.ScrapeResponse, error)
}

func (m *mockScrapeService) ScrapeAndRecord(ctx context.Context, userID int64, pageURL string) (models.ScrapeResponse, error) {
	return m.scrapeAndRecordFn(ctx, userID, pageURL)
}

type mockHistoryService struct {
	getHistoryFn func(ctx context.Context, userID int64) ([]models.HistoryEntry, error)
}

func (m *mockHistoryService) GetHistory(ctx context.Context, userID int64) ([]models.HistoryEntry, error) {
	return m.getHistoryFn(ctx, userID)
}

type mockPreferenceService struct {
	getPreferencesFn  func(ctx context.Context, userID int64, kind models.PreferenceKind) (json.RawMessage, error)
	savePreferencesFn func(ctx context.Context, userID int64, kind models.PreferenceKind, payload json.RawMessage) error
}

func (m *mockPreferenceService) GetPreferences(ctx context.Context, userID int64, kind models.PreferenceKind) (json.RawMessage, error) {
	return m.getPreferencesFn(ctx, userID, kind)
}

func (m *mockPreferenceService) SavePreferences(ctx context.Context, userID int64, kind models.PreferenceKind, payload json.RawMessage) error {
	return m.savePreferencesFn(ctx, userID, kind, payload)
}

type mockGeocodeService struct {
	geocodeFn func(ctx context.Context, address string) (models.Location, error)
}

func (m *mockGeocodeService) Geocode(ctx context.Context, address string) (models.Location, error) {
	return m.geocodeFn(ctx, address)
}

type mockExpertService struct {
	askExpertFn func(ctx context.Context, question string) (string, error)
}

func (m *mockExpertService) AskExpert(ctx context.Context, question string) (string, error) {
	return m.askExpertFn(ctx, question)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks. Nil fields are
// allowed as long as the test does not route into them.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeErrorEnvelope parses the standard `{"error": msg}` body.
func decodeErrorEnvelope(t *testing.T, body []byte) string {
	t.Helper()
	var envelope map[string]string
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope["error"]
}
