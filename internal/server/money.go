package server

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var errAmountPrecision = errors.New("amount must have at most two decimal places")

// parseAmount parses a monetary amount from its JSON string form and enforces
// two-decimal currency semantics before anything reaches the engine: the
// value must parse, be strictly positive, and carry no sub-cent precision.
func parseAmount(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("amount must be positive, got %q", s)
	}
	if !d.Equal(d.Round(2)) {
		return 0, errAmountPrecision
	}
	f, _ := d.Float64()
	return f, nil
}
