// SPDX-License-Identifier: MIT
// Package: avgdist/core
//
// exact.go - exact helpers over decimal.Decimal shared by all algorithms.

package core

import (
	"github.com/shopspring/decimal"
)

// ten is the scaling factor of the decimal system.
var ten = decimal.NewFromInt(10)

// IntegerPart returns d truncated toward zero (4.3 → 4, -2.5 → -2).
func IntegerPart(d decimal.Decimal) decimal.Decimal {
	return d.Truncate(0)
}

// FractionalPart returns d minus its integer part; it carries the sign of d.
func FractionalPart(d decimal.Decimal) decimal.Decimal {
	return d.Sub(IntegerPart(d))
}

// FractionDigits counts the significant fractional digits of d
// (4.3 → 1, 3.142 → 3, 4.30 → 1, 5 → 0).
//
// Complexity: O(k) for k fractional digits.
func FractionDigits(d decimal.Decimal) int32 {
	var (
		frac   = FractionalPart(d)
		digits int32
	)
	for !frac.IsInteger() {
		frac = frac.Mul(ten)
		digits++
	}

	return digits
}

// CompareMean compares sum/n against average without dividing:
// -1 if sum < average·n, 0 if equal, +1 if greater. n must be positive.
func CompareMean(sum, n int64, average decimal.Decimal) int {
	return decimal.NewFromInt(sum).Cmp(average.Mul(decimal.NewFromInt(n)))
}
