// Package config supplies the formatter defaults and precision-registry
// overrides from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"coinfmt/internal/money"
	"coinfmt/internal/validation"

	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	// Currency is the default currency code for money formatting
	Currency string `validate:"required,currencycode"`
	// Locale is the default BCP-47 locale tag for money formatting
	Locale string `validate:"required"`
	// Precision holds precision-registry overrides keyed by currency code
	Precision map[string]int
}

// Load reads an optional env file and then the environment. A missing file
// is tolerated for the default ".env" path only.
func Load(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && envFile != ".env" {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := &Config{}
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv retrieves configuration from environment variables
func (c *Config) LoadFromEnv() error {
	c.Currency = getEnvOrDefault("COINFMT_CURRENCY", money.DefaultCurrency)
	c.Locale = getEnvOrDefault("COINFMT_LOCALE", money.DefaultLocale)

	precision, err := parsePrecision(os.Getenv("COINFMT_PRECISION"))
	if err != nil {
		return err
	}
	c.Precision = precision

	if err := validation.Validate().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Apply merges the precision overrides into a currency registry
func (c *Config) Apply(registry *money.Registry) error {
	for code, places := range c.Precision {
		if err := registry.Register(code, places); err != nil {
			return fmt.Errorf("failed to apply precision override: %w", err)
		}
	}
	return nil
}

// parsePrecision parses override pairs of the form "BTC=8,USDT=2"
func parsePrecision(raw string) (map[string]int, error) {
	overrides := make(map[string]int)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		code, places, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid precision override %q: want CODE=places", pair)
		}
		n, err := strconv.Atoi(strings.TrimSpace(places))
		if err != nil {
			return nil, fmt.Errorf("invalid precision override %q: %w", pair, err)
		}
		overrides[strings.ToUpper(strings.TrimSpace(code))] = n
	}
	return overrides, nil
}

func getEnvOrDefault(key string, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
