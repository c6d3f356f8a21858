package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:  "secret",
			TokenDuration: 24 * time.Hour,
		},
		Storage: Storage{DB: DB{Driver: "pgx", DSN: "postgres://localhost/housefinder"}},
		Expert:  Expert{APIKey: "key"},
	}
}

// TestBuild_MergePriority verifies that an earlier source wins over a later
// one for fields both sources set.
func TestBuild_MergePriority(t *testing.T) {
	b := newConfigBuilder()

	first := validTestConfig()
	first.Server.HTTPAddress = "localhost:9999"

	second := validTestConfig()
	second.Server.HTTPAddress = "localhost:1111"
	second.Server.RequestTimeout = time.Minute

	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	// fields only the later source sets still come through
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
}

// TestBuild_DefaultsFillGaps verifies that withDefaults supplies values for
// everything the higher-priority sources left empty.
func TestBuild_DefaultsFillGaps(t *testing.T) {
	b := newConfigBuilder()
	partial := &StructuredConfig{
		Auth:    Auth{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "finder.db", Driver: "sqlite3"}},
		Expert:  Expert{APIKey: "key"},
	}
	b.configs = append(b.configs, partial)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "house-finder", cfg.Auth.TokenIssuer)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "div.ResultsCount_resultsCount__Kqeah", cfg.Scraper.ResultsSelector)
	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.Geocoder.BaseURL)
	assert.Equal(t, "gb", cfg.Geocoder.CountryCodes)
}

// TestBuild_MissingSignKey verifies that a config without a token sign key
// fails validation.
func TestBuild_MissingSignKey(t *testing.T) {
	b := newConfigBuilder()
	cfg := validTestConfig()
	cfg.Auth.TokenSignKey = ""
	b.configs = append(b.configs, cfg)

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

// TestBuild_MissingDSN verifies that a config without a database DSN fails
// validation.
func TestBuild_MissingDSN(t *testing.T) {
	b := newConfigBuilder()
	cfg := validTestConfig()
	cfg.Storage.DB.DSN = ""
	b.configs = append(b.configs, cfg)

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_UnsupportedDriver verifies that unknown driver names are rejected.
func TestBuild_UnsupportedDriver(t *testing.T) {
	b := newConfigBuilder()
	cfg := validTestConfig()
	cfg.Storage.DB.Driver = "oracle"
	b.configs = append(b.configs, cfg)

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_MissingExpertKey verifies that a config without the LLM API key
// fails validation.
func TestBuild_MissingExpertKey(t *testing.T) {
	b := newConfigBuilder()
	cfg := validTestConfig()
	cfg.Expert.APIKey = ""
	b.configs = append(b.configs, cfg)

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidExpertConfigs)
}
