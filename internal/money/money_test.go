package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinfmt/internal/money"
)

func intPtr(n int) *int { return &n }

func TestFormatter_Format(t *testing.T) {
	formatter := money.NewFormatter(money.NewRegistry())

	tests := []struct {
		name   string
		amount float64
		opts   money.Options
		want   string
	}{
		{
			name:   "defaults to en-US with two decimals",
			amount: 1234.56,
			want:   "1,234.56",
		},
		{
			name:   "german locale with explicit decimal places",
			amount: 1234.56,
			opts:   money.Options{Currency: "EUR", Locale: "de-DE", DecimalPlaces: intPtr(1)},
			want:   "1.234,6",
		},
		{
			name:   "zero-decimal currency",
			amount: 1234.56,
			opts:   money.Options{Currency: "JPY"},
			want:   "1,235",
		},
		{
			name:   "crypto currency precision",
			amount: 0.12345678,
			opts:   money.Options{Currency: "BTC"},
			want:   "0.12345678",
		},
		{
			name:   "explicit decimal places win over currency precision",
			amount: 1234.56,
			opts:   money.Options{Currency: "JPY", DecimalPlaces: intPtr(2)},
			want:   "1,234.56",
		},
		{
			name:   "unknown currency falls back to default precision",
			amount: 1234.5,
			opts:   money.Options{Currency: "ZZZ"},
			want:   "1,234.50",
		},
		{
			name:   "base language tag resolves",
			amount: 1234.56,
			opts:   money.Options{Locale: "de"},
			want:   "1.234,56",
		},
		{
			name:   "unsupported locale degrades to plain string",
			amount: 1234.56,
			opts:   money.Options{Locale: "zz-unsupported"},
			want:   "1234.56",
		},
		{
			name:   "malformed locale degrades to plain string",
			amount: 1234.56,
			opts:   money.Options{Locale: "!!!"},
			want:   "1234.56",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatter.Format(tt.amount, tt.opts)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Formatting is pure: identical input always yields identical output.
func TestFormatter_FormatIsPure(t *testing.T) {
	opts := money.Options{Currency: "EUR", Locale: "de-DE"}
	first := money.Format(1234.56, opts)
	second := money.Format(1234.56, opts)
	require.Equal(t, first, second)
}

func TestNewFormatter_NilRegistry(t *testing.T) {
	formatter := money.NewFormatter(nil)
	assert.Equal(t, "1,234.56", formatter.Format(1234.56, money.Options{}))
}

func TestFormatter_RegistryOverride(t *testing.T) {
	registry := money.NewRegistry()
	require.NoError(t, registry.Register("EUR", 3))

	formatter := money.NewFormatter(registry)
	assert.Equal(t, "1,234.560", formatter.Format(1234.56, money.Options{Currency: "EUR"}))
}
