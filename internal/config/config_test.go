package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_USERNAME", "api")
	t.Setenv("API_PASSWORD_HASH", "$2a$04$fakehashfortest")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsProduction)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "Log", cfg.SheetWorksheet)
	assert.Empty(t, cfg.SheetID)
}

func TestLoadRequiresCredentials(t *testing.T) {
	t.Setenv("API_USERNAME", "")
	t.Setenv("API_PASSWORD_HASH", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_USERNAME")

	t.Setenv("API_USERNAME", "api")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_PASSWORD_HASH")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_USERNAME", "api")
	t.Setenv("API_PASSWORD_HASH", "$2a$04$fakehashfortest")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PROD_ORIGINS", "https://rooms.example.com")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SHEET_ID", "sheet-123")
	t.Setenv("SHEET_WORKSHEET", "Audit")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "https://rooms.example.com", cfg.ProdOrigins)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "sheet-123", cfg.SheetID)
	assert.Equal(t, "Audit", cfg.SheetWorksheet)
}
