package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/rates_test")
	t.Setenv("DELETE_PASSWORD", "s3cret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Import.BulkThreshold)
	assert.Equal(t, 2000, cfg.Query.MaxFetch)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("BULK_THRESHOLD", "25")
	t.Setenv("MAX_FETCH", "500")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 25, cfg.Import.BulkThreshold)
	assert.Equal(t, 500, cfg.Query.MaxFetch)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DELETE_PASSWORD", "s3cret")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://localhost/rates_test")
	t.Setenv("DELETE_PASSWORD", "")
	_, err = Load()
	require.Error(t, err)
}

func TestLoad_RejectsBadBounds(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MAX_FETCH", "0")

	_, err := Load()
	require.Error(t, err)
}
