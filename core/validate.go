// SPDX-License-Identifier: MIT
// Package: avgdist/core
//
// validate.go - input preconditions and the result invariant.
//
// Priority of checks (first failure wins, mirrored by tests):
//  1. integer part of average is zero,
//  2. min == max,
//  3. min > max,
//  4. min > average,
//  5. average > max.

package core

import (
	"github.com/shopspring/decimal"
)

const (
	methodValidateInputs = "ValidateInputs"
	methodVerifySequence = "VerifySequence"
)

// ValidateInputs checks the (average, bounds) preconditions shared by every
// algorithm. All violations are reported as ErrInvalidAverage.
//
// Complexity: O(1).
func ValidateInputs(average decimal.Decimal, b Bounds) error {
	if IntegerPart(average).IsZero() {
		return Errorf(methodValidateInputs, ErrInvalidAverage,
			"cannot divide by zero: average=%s has integer part 0", average)
	}
	if b.Min == b.Max {
		return Errorf(methodValidateInputs, ErrInvalidAverage,
			"minimum value %d cannot be equal to maximum value %d", b.Min, b.Max)
	}
	if b.Min > b.Max {
		return Errorf(methodValidateInputs, ErrInvalidAverage,
			"minimum value %d cannot be greater than maximum value %d", b.Min, b.Max)
	}
	if b.MinDecimal().GreaterThan(average) {
		return Errorf(methodValidateInputs, ErrInvalidAverage,
			"minimum value %d cannot be larger than average %s", b.Min, average)
	}
	if average.GreaterThan(b.MaxDecimal()) {
		return Errorf(methodValidateInputs, ErrInvalidAverage,
			"average %s cannot be larger than maximum value %d", average, b.Max)
	}

	return nil
}

// VerifySequence checks the result invariant: non-empty, every value within b,
// and Σs == average·len(s). A failure here means the producing algorithm is
// broken, so it is surfaced as ErrUnsatisfiable under the caller's method name.
func VerifySequence(method string, s Sequence, average decimal.Decimal, b Bounds) error {
	if len(s) == 0 {
		return Errorf(method, ErrUnsatisfiable, "%s: empty sequence", methodVerifySequence)
	}
	for i, v := range s {
		if !b.Contains(v) {
			return Errorf(method, ErrUnsatisfiable,
				"%s: value %d at index %d outside [%d, %d]", methodVerifySequence, v, i, b.Min, b.Max)
		}
	}
	if !s.MeanEquals(average) {
		return Errorf(method, ErrUnsatisfiable,
			"%s: sum %d over %d values does not average %s", methodVerifySequence, s.Sum(), len(s), average)
	}

	return nil
}
