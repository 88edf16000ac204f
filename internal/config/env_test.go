package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesFields(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-sign-key")
	t.Setenv("APP_TOKEN_ISSUER", "richinfo")
	t.Setenv("APP_TOKEN_DURATION", "2h")
	t.Setenv("APP_RICH_INFO_MAX_SIZE", "1234")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/richinfo")
	t.Setenv("SERVER_ADDRESS", "localhost:9999")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, "richinfo", cfg.App.TokenIssuer)
	assert.Equal(t, "2h0m0s", cfg.App.TokenDuration.String())
	assert.Equal(t, 1234, cfg.App.RichInfoMaxSize)
	assert.Equal(t, "postgres://localhost/richinfo", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
}

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Zero(t, cfg.App.RichInfoMaxSize)
}

func TestParseClientEnv_Prefix(t *testing.T) {
	t.Setenv("RICHINFO_ADAPTER_SERVER_URL", "http://example.test:8080")
	t.Setenv("RICHINFO_ADAPTER_REQUEST_TIMEOUT", "20s")

	cfg := &ClientConfig{}
	require.NoError(t, parseClientEnv(cfg))

	assert.Equal(t, "http://example.test:8080", cfg.Adapter.ServerURL)
	assert.Equal(t, "20s", cfg.Adapter.RequestTimeout.String())
}
