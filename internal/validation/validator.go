// Package validation provides custom validators for the application
package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Currency codes are uppercase alphanumerics, 2-5 characters: covers ISO 4217
// fiat codes (USD, EUR) as well as crypto tickers (BTC, USDT, USDC).
var currencyCodePattern = regexp.MustCompile(`^[A-Z0-9]{2,5}$`)

func init() {
	if err := validate.RegisterValidation("currencycode", validateCurrencyCode); err != nil {
		panic(err)
	}
}

// Validate returns the shared validator instance with all custom validators
// registered.
func Validate() *validator.Validate {
	return validate
}

// validateCurrencyCode checks if a string looks like a currency code
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return currencyCodePattern.MatchString(fl.Field().String())
}
