package money

import (
	"fmt"
	"sync"

	"coinfmt/internal/validation"
)

// defaultPrecision holds the decimal places for the currencies supported out
// of the box. The surrounding application may register further codes or
// override these through the registry.
var defaultPrecision = map[string]int{
	"USD":  2,
	"EUR":  2,
	"GBP":  2,
	"AUD":  2,
	"JPY":  0,
	"BTC":  8,
	"ETH":  8,
	"LTC":  8,
	"USDT": 2,
	"USDC": 2,
}

// Registry maps currency codes to their canonical number of decimal places
type Registry struct {
	mu        sync.RWMutex
	precision map[string]int
}

// NewRegistry returns a registry seeded with the default currencies
func NewRegistry() *Registry {
	precision := make(map[string]int, len(defaultPrecision))
	for code, places := range defaultPrecision {
		precision[code] = places
	}
	return &Registry{precision: precision}
}

// Register adds or overrides the precision for a currency code
func (r *Registry) Register(code string, places int) error {
	if err := validation.Validate().Var(code, "required,currencycode"); err != nil {
		return fmt.Errorf("invalid currency code %q: %w", code, err)
	}
	if places < 0 || places > 18 {
		return fmt.Errorf("invalid decimal places %d for %s: must be between 0 and 18", places, code)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.precision[code] = places
	return nil
}

// Precision returns the registered decimal places for a currency code
func (r *Registry) Precision(code string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	places, ok := r.precision[code]
	return places, ok
}
