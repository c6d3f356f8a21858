package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harry2k21/house-finder-v1/internal/adapter"
	"github.com/Harry2k21/house-finder-v1/internal/logger"
	"github.com/Harry2k21/house-finder-v1/models"
)

// ─────────────────────────────────────────────
// Mocks: Geocoder, ExpertClient
// ─────────────────────────────────────────────

type mockGeocoder struct {
	geocodeFn func(ctx context.Context, address string) (models.Location, error)
}

func (m *mockGeocoder) Geocode(ctx context.Context, address string) (models.Location, error) {
	if m.geocodeFn != nil {
		return m.geocodeFn(ctx, address)
	}
	return models.Location{}, nil
}

type mockExpert struct {
	askFn func(ctx context.Context, question string) (string, error)
}

func (m *mockExpert) Ask(ctx context.Context, question string) (string, error) {
	if m.askFn != nil {
		return m.askFn(ctx, question)
	}
	return "", nil
}

// ─────────────────────────────────────────────
// Geocode
// ─────────────────────────────────────────────

func TestGeocode_Success(t *testing.T) {
	geo := &mockGeocoder{
		geocodeFn: func(ctx context.Context, address string) (models.Location, error) {
			assert.Equal(t, "10 Downing Street", address)
			return models.Location{Lat: 51.5, Lon: -0.12, DisplayName: "10, Downing Street"}, nil
		},
	}
	svc := NewGeocodeService(geo, logger.Nop())

	loc, err := svc.Geocode(context.Background(), "10 Downing Street")
	require.NoError(t, err)
	assert.Equal(t, "10, Downing Street", loc.DisplayName)
}

func TestGeocode_BlankAddress(t *testing.T) {
	svc := NewGeocodeService(&mockGeocoder{}, logger.Nop())

	_, err := svc.Geocode(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrNoAddressProvided)
}

func TestGeocode_NotFound(t *testing.T) {
	geo := &mockGeocoder{
		geocodeFn: func(ctx context.Context, address string) (models.Location, error) {
			return models.Location{}, adapter.ErrAddressNotFound
		},
	}
	svc := NewGeocodeService(geo, logger.Nop())

	_, err := svc.Geocode(context.Background(), "nowhere at all")
	assert.ErrorIs(t, err, adapter.ErrAddressNotFound)
}

// ─────────────────────────────────────────────
// AskExpert
// ─────────────────────────────────────────────

func TestAskExpert_Success(t *testing.T) {
	expert := &mockExpert{
		askFn: func(ctx context.Context, question string) (string, error) {
			assert.Equal(t, "Is gazumping legal?", question)
			return "In England, yes, until exchange of contracts.", nil
		},
	}
	svc := NewExpertService(expert, logger.Nop())

	answer, err := svc.AskExpert(context.Background(), "Is gazumping legal?")
	require.NoError(t, err)
	assert.Equal(t, "In England, yes, until exchange of contracts.", answer)
}

func TestAskExpert_BlankQuestion(t *testing.T) {
	svc := NewExpertService(&mockExpert{}, logger.Nop())

	_, err := svc.AskExpert(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoQuestionAsked)
}

func TestAskExpert_UpstreamError(t *testing.T) {
	expert := &mockExpert{
		askFn: func(ctx context.Context, question string) (string, error) {
			return "", errors.New("rate limited")
		},
	}
	svc := NewExpertService(expert, logger.Nop())

	_, err := svc.AskExpert(context.Background(), "anything")
	require.Error(t, err)
}
