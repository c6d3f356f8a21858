package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Harry2k21/house-finder-v1/internal/logger"
	"github.com/Harry2k21/house-finder-v1/models"
)

type geocodeService struct {
	geocoder Geocoder

	logger *logger.Logger
}

func NewGeocodeService(geocoder Geocoder, logger *logger.Logger) GeocodeService {
	return &geocodeService{
		geocoder: geocoder,
		logger:   logger,
	}
}

// Geocode resolves address to its best match. A blank address is rejected
// before any outbound call is made.
func (g *geocodeService) Geocode(ctx context.Context, address string) (models.Location, error) {
	if strings.TrimSpace(address) == "" {
		return models.Location{}, ErrNoAddressProvided
	}

	location, err := g.geocoder.Geocode(ctx, address)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("address", address).Msg("geocoding failed")
		return models.Location{}, fmt.Errorf("geocoding failed: %w", err)
	}

	return location, nil
}
