package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/Harry2k21/house-finder-v1/internal/config"
	"github.com/Harry2k21/house-finder-v1/internal/logger"
	"github.com/Harry2k21/house-finder-v1/models"
)

// Geocoder resolves free-form addresses to coordinates using a
// Nominatim-compatible search endpoint.
type Geocoder struct {
	client       *resty.Client
	countryCodes string
	logger       *logger.Logger
}

// nominatimPlace is a single element of the Nominatim search response.
// Nominatim encodes coordinates as strings.
type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewGeocoder returns a Geocoder configured from cfg.
func NewGeocoder(cfg config.Geocoder, log *logger.Logger) *Geocoder {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("User-Agent", cfg.UserAgent)

	return &Geocoder{
		client:       client,
		countryCodes: cfg.CountryCodes,
		logger:       log.GetChildLogger(),
	}
}

// Geocode looks up address and returns the best match.
// ErrAddressNotFound is returned when the service has no match at all.
func (g *Geocoder) Geocode(ctx context.Context, address string) (models.Location, error) {
	res, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":            address,
			"format":       "json",
			"limit":        "1",
			"countrycodes": g.countryCodes,
		}).
		Get("/search")
	if err != nil {
		g.logger.Error().Err(err).Str("address", address).Msg("geocoding request failed")
		return models.Location{}, fmt.Errorf("%w: %w", ErrGeocodeFailed, err)
	}
	if res.IsError() {
		g.logger.Error().Int("status", res.StatusCode()).Str("address", address).Msg("geocoder returned error status")
		return models.Location{}, fmt.Errorf("%w: status %d", ErrGeocodeFailed, res.StatusCode())
	}

	var places []nominatimPlace
	if err := json.Unmarshal(res.Body(), &places); err != nil {
		return models.Location{}, fmt.Errorf("%w: %w", ErrGeocodeFailed, err)
	}
	if len(places) == 0 {
		return models.Location{}, ErrAddressNotFound
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: parse lat: %w", ErrGeocodeFailed, err)
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: parse lon: %w", ErrGeocodeFailed, err)
	}

	return models.Location{
		Lat:         lat,
		Lon:         lon,
		DisplayName: places[0].DisplayName,
	}, nil
}
