package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinfmt/internal/money"
)

// TestLoadFromEnv tests loading configuration from environment variables
func TestLoadFromEnv(t *testing.T) {
	t.Setenv("COINFMT_CURRENCY", "EUR")
	t.Setenv("COINFMT_LOCALE", "de-DE")
	t.Setenv("COINFMT_PRECISION", "BTC=6, DOGE=4")

	cfg := &Config{}
	err := cfg.LoadFromEnv()
	require.NoError(t, err)

	require.Equal(t, "EUR", cfg.Currency)
	require.Equal(t, "de-DE", cfg.Locale)
	require.Equal(t, map[string]int{"BTC": 6, "DOGE": 4}, cfg.Precision)
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("COINFMT_CURRENCY", "")
	t.Setenv("COINFMT_LOCALE", "")
	t.Setenv("COINFMT_PRECISION", "")

	cfg := &Config{}
	err := cfg.LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, money.DefaultCurrency, cfg.Currency)
	assert.Equal(t, money.DefaultLocale, cfg.Locale)
	assert.Empty(t, cfg.Precision)
}

func TestLoadFromEnv_InvalidCurrency(t *testing.T) {
	t.Setenv("COINFMT_CURRENCY", "usd")

	cfg := &Config{}
	err := cfg.LoadFromEnv()
	require.Error(t, err)
}

func TestLoadFromEnv_InvalidPrecision(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "missing separator", raw: "BTC"},
		{name: "non-numeric places", raw: "BTC=x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COINFMT_PRECISION", tt.raw)

			cfg := &Config{}
			err := cfg.LoadFromEnv()
			require.Error(t, err)
		})
	}
}

func TestApply(t *testing.T) {
	cfg := &Config{Precision: map[string]int{"DOGE": 4}}
	registry := money.NewRegistry()
	require.NoError(t, cfg.Apply(registry))

	places, ok := registry.Precision("DOGE")
	require.True(t, ok)
	assert.Equal(t, 4, places)
}

func TestApply_InvalidCode(t *testing.T) {
	cfg := &Config{Precision: map[string]int{"TOOLONGCODE": 2}}
	err := cfg.Apply(money.NewRegistry())
	require.Error(t, err)
}
