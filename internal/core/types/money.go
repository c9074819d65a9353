// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Amounts are always taken from the server, never derived locally.
type Money = decimal.Decimal

// Quantity is a stock or line quantity. The inventory API may send it
// as a JSON number or a string; decimal accepts both.
type Quantity = decimal.Decimal

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	return decimal.RequireFromString(s)
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// OrZero dereferences an optional wire amount, treating absence as zero.
func OrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// NewQuantity creates a Quantity from an integer count.
func NewQuantity(n int64) Quantity {
	return decimal.NewFromInt(n)
}
