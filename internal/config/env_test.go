package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv_PopulatesNestedStructs verifies that prefixed environment
// variables land in the right nested config fields.
func TestParseEnv_PopulatesNestedStructs(t *testing.T) {
	t.Setenv("AUTH_SECRET_KEY", "env-secret")
	t.Setenv("AUTH_TOKEN_DURATION", "12h")
	t.Setenv("STORAGE_DB_DRIVER", "sqlite3")
	t.Setenv("STORAGE_DB_DATABASE_URI", "finder.db")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8080")
	t.Setenv("EXPERT_API_KEY", "env-key")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "env-secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "finder.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "env-key", cfg.Expert.APIKey)
}

// TestParseEnv_BadDuration verifies that an unparseable duration value is
// reported as an error instead of being silently ignored.
func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("AUTH_TOKEN_DURATION", "not-a-duration")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}
