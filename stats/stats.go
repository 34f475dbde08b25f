// SPDX-License-Identifier: MIT
// Package: avgdist/stats
//
// stats.go - pure reductions over []decimal.Decimal.
//
// Determinism:
//   - Fixed left→right traversal; no maps, no randomness.
//   - Rounding is always toward −∞ (floor) at the requested precision.

package stats

import (
	"errors"

	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of fractional digits kept by Mean/Variance.
const DefaultPrecision int32 = 10

// ErrEmptyInput is returned by reductions that have no value on empty input.
var ErrEmptyInput = errors.New("stats: input must be non-empty")

// DivFloor returns a/b rounded toward −∞ to precision fractional digits.
// b must be non-zero.
//
// decimal.QuoRem truncates toward zero, so a negative inexact quotient is
// stepped down by one unit in the last place.
//
// Complexity: O(1) big-int operations.
func DivFloor(a, b decimal.Decimal, precision int32) decimal.Decimal {
	q, r := a.QuoRem(b, precision)
	if !r.IsZero() && a.Sign()*b.Sign() < 0 {
		q = q.Sub(decimal.New(1, -precision))
	}

	return q
}

// Sum returns Σ values (0 for empty input).
//
// Complexity: O(n).
func Sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}

	return total
}

// Mean returns Σ values / n floored to precision digits, or 0 for empty input.
//
// Complexity: O(n).
func Mean(values []decimal.Decimal, precision int32) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}

	return DivFloor(Sum(values), decimal.NewFromInt(int64(len(values))), precision)
}

// Variance returns the population variance: the mean of squared deviations
// from Mean(values, precision), floored to precision digits. 0 for empty input.
//
// Complexity: O(n).
func Variance(values []decimal.Decimal, precision int32) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}

	var (
		mean    = Mean(values, precision)
		squares = decimal.Zero
		diff    decimal.Decimal
	)
	for _, v := range values {
		diff = v.Sub(mean)
		squares = squares.Add(diff.Mul(diff))
	}

	return DivFloor(squares, decimal.NewFromInt(int64(len(values))), precision)
}

// Min returns the smallest value or ErrEmptyInput.
//
// Complexity: O(n).
func Min(values []decimal.Decimal) (decimal.Decimal, error) {
	if len(values) == 0 {
		return decimal.Zero, ErrEmptyInput
	}
	best := values[0]
	for _, v := range values[1:] {
		if v.LessThan(best) {
			best = v
		}
	}

	return best, nil
}

// Max returns the largest value or ErrEmptyInput.
//
// Complexity: O(n).
func Max(values []decimal.Decimal) (decimal.Decimal, error) {
	if len(values) == 0 {
		return decimal.Zero, ErrEmptyInput
	}
	best := values[0]
	for _, v := range values[1:] {
		if v.GreaterThan(best) {
			best = v
		}
	}

	return best, nil
}
