// Package points holds the pure conversion between earned points and
// spendable currency. Comparisons always run on the decimal values; the
// 2-decimal string rendering exists only for display.
package points

import (
	"time"

	"makan/internal/errors"

	"github.com/shopspring/decimal"
)

// DefaultRate is the conversion used when none is configured: 1 point = 1
// currency unit.
var DefaultRate = decimal.NewFromInt(1)

// Converter maps point quantities to currency amounts under a fixed,
// admin-configured rate. The rate is immutable per instance and carries the
// timestamp it came into force, so a redeployment with a new rate is a new
// converter rather than a mutated global.
type Converter struct {
	rate           decimal.Decimal
	currencyPrefix string
	effectiveAt    time.Time
}

// NewConverter builds a converter for a positive rate. A non-positive rate is
// a configuration error.
func NewConverter(rate decimal.Decimal, currencyPrefix string, effectiveAt time.Time) (*Converter, error) {
	if rate.LessThanOrEqual(decimal.Zero) {
		return nil, errors.Errorf("conversion rate must be positive, got %s", rate)
	}

	return &Converter{
		rate:           rate,
		currencyPrefix: currencyPrefix,
		effectiveAt:    effectiveAt,
	}, nil
}

// Rate returns the fixed conversion rate.
func (c *Converter) Rate() decimal.Decimal {
	return c.rate
}

// EffectiveAt returns when this rate came into force.
func (c *Converter) EffectiveAt() time.Time {
	return c.effectiveAt
}

// ToCurrency converts a point quantity to a currency amount. Negative input
// converts to zero; points are never negative in a consistent store, so a
// negative here means corrupted input and is treated defensively.
func (c *Converter) ToCurrency(pts int) decimal.Decimal {
	if pts <= 0 {
		return decimal.Zero
	}

	return decimal.NewFromInt(int64(pts)).Mul(c.rate)
}

// PointsToCover returns the smallest whole number of points whose converted
// value covers amount. Debits operate on whole points, so a fractional
// quotient rounds up.
func (c *Converter) PointsToCover(amount decimal.Decimal) int {
	if amount.LessThanOrEqual(decimal.Zero) {
		return 0
	}

	return int(amount.Div(c.rate).Ceil().IntPart())
}

// Format renders a currency amount as a fixed 2-decimal string with the
// configured prefix, e.g. "RM 13.00". Display only: never compare the
// rendered strings.
func (c *Converter) Format(amount decimal.Decimal) string {
	if c.currencyPrefix == "" {
		return amount.StringFixed(2)
	}

	return c.currencyPrefix + " " + amount.StringFixed(2)
}
