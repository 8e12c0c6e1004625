// Package money provides locale-aware formatting of monetary values with
// per-currency decimal precision.
package money

import (
	"github.com/shopspring/decimal"
)

const (
	// DefaultCurrency is used when no currency code is supplied
	DefaultCurrency = "USD"
	// DefaultLocale is used when no locale tag is supplied
	DefaultLocale = "en-US"
)

// Options configures a single formatting call. All fields are optional.
type Options struct {
	// Currency selects the precision registered for a currency code
	Currency string
	// DecimalPlaces overrides the currency precision when set
	DecimalPlaces *int
	// Locale is a BCP-47 tag controlling grouping and decimal punctuation
	Locale string
}

// Formatter renders monetary amounts using a currency precision registry
type Formatter struct {
	registry *Registry
}

// NewFormatter returns a formatter backed by the given registry. A nil
// registry falls back to the default currency set.
func NewFormatter(registry *Registry) *Formatter {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Formatter{registry: registry}
}

// Format renders an amount with locale grouping and decimal punctuation, no
// currency symbol. It never fails: when the locale cannot be resolved the
// plain numeric value is returned as a string instead.
func (f *Formatter) Format(amount float64, opts Options) string {
	locale := opts.Locale
	if locale == "" {
		locale = DefaultLocale
	}

	translator, err := translatorFor(locale)
	if err != nil {
		return decimal.NewFromFloat(amount).String()
	}

	places := f.resolvePlaces(opts)
	rounded, _ := decimal.NewFromFloat(amount).Round(int32(places)).Float64()
	return translator.FmtNumber(rounded, uint64(places))
}

// resolvePlaces applies the decimal-place resolution order: an explicit
// override wins, then the registered precision for the currency, then the
// precision of the default currency.
func (f *Formatter) resolvePlaces(opts Options) int {
	if opts.DecimalPlaces != nil && *opts.DecimalPlaces >= 0 {
		return *opts.DecimalPlaces
	}

	code := opts.Currency
	if code == "" {
		code = DefaultCurrency
	}
	if places, ok := f.registry.Precision(code); ok {
		return places
	}
	places, _ := f.registry.Precision(DefaultCurrency)
	return places
}

var defaultFormatter = NewFormatter(nil)

// Format renders an amount using the default currency registry
func Format(amount float64, opts Options) string {
	return defaultFormatter.Format(amount, opts)
}
