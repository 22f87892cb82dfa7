package money

import (
	"math"

	"rental-booking/internal/pkg/errs"
)

var ErrNegativeAmount = errs.Define("amount cannot be negative", errs.ErrValidation)

// Money is an amount in minor currency units (cents).
type Money struct {
	cents int64
}

func FromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// FromAmount converts a decimal amount such as 199.99 to cents, rounding half away from zero.
func FromAmount(amount float64) (Money, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: int64(math.Round(amount * 100))}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

// Percent returns p percent of m rounded to the nearest cent, halves rounded up.
func (m Money) Percent(p int64) Money {
	return Money{cents: (m.cents*p + 50) / 100}
}
