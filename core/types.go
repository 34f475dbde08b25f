// SPDX-License-Identifier: MIT
// Package: avgdist/core
//
// types.go - Bounds, Target and Sequence.
//
// All arithmetic against the average goes through decimal.Decimal; the
// integer side (sequence values, counts, sums) stays in int64 so that the
// exact-mean test reduces to one multiplication: Σx == average·n.

package core

import (
	"github.com/shopspring/decimal"
)

// Bounds is the inclusive integer range [Min, Max] every sequence value must
// stay in. A usable Bounds has Min < Max (see ValidateInputs).
type Bounds struct {
	Min int64
	Max int64
}

// NewBounds is a small convenience constructor; it performs no validation.
func NewBounds(min, max int64) Bounds {
	return Bounds{Min: min, Max: max}
}

// Validate reports ErrInvalidAverage unless Min < Max.
func (b Bounds) Validate() error {
	if b.Min >= b.Max {
		return Errorf("Bounds.Validate", ErrInvalidAverage, "min %d must be below max %d", b.Min, b.Max)
	}

	return nil
}

// Contains reports whether v lies in [Min, Max].
func (b Bounds) Contains(v int64) bool {
	return v >= b.Min && v <= b.Max
}

// MinDecimal returns Min as an exact decimal.
func (b Bounds) MinDecimal() decimal.Decimal { return decimal.NewFromInt(b.Min) }

// MaxDecimal returns Max as an exact decimal.
func (b Bounds) MaxDecimal() decimal.Decimal { return decimal.NewFromInt(b.Max) }

// Target is the exact integer ratio Sum/Count that equals Average.
//
// Invariant: Sum == Average·Count (checked by Check).
type Target struct {
	// Average is the requested mean, kept verbatim.
	Average decimal.Decimal
	// Count is the multiplier that makes Average·Count integral (≥ 1).
	Count int64
	// Sum is Average·Count.
	Sum int64
}

// Check verifies Count > 0 and Sum == Average·Count exactly.
func (t Target) Check() error {
	if t.Count <= 0 {
		return Errorf("Target.Check", ErrInvalidAverage, "count %d must be positive", t.Count)
	}
	if !decimal.NewFromInt(t.Sum).Equal(t.Average.Mul(decimal.NewFromInt(t.Count))) {
		return Errorf("Target.Check", ErrInvalidAverage, "%d/%d != %s", t.Sum, t.Count, t.Average)
	}

	return nil
}

// Sequence is an ordered list of integer values produced by one algorithm run.
// Algorithms always hand out a fresh slice; callers may mutate it freely.
type Sequence []int64

// Len returns the number of values.
func (s Sequence) Len() int { return len(s) }

// Sum returns Σ values. It wraps on int64 overflow; MeanEquals does not.
func (s Sequence) Sum() int64 {
	var total int64
	for _, v := range s {
		total += v
	}

	return total
}

// Clone returns an independent copy (nil stays nil).
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)

	return out
}

// Decimals converts the values to exact decimals for the stats package.
func (s Sequence) Decimals() []decimal.Decimal {
	out := make([]decimal.Decimal, len(s))
	for i, v := range s {
		out[i] = decimal.NewFromInt(v)
	}

	return out
}

// MeanEquals reports whether Σs / len(s) == average exactly. Empty sequences
// never match.
func (s Sequence) MeanEquals(average decimal.Decimal) bool {
	if len(s) == 0 {
		return false
	}

	total := decimal.Zero
	for _, v := range s {
		total = total.Add(decimal.NewFromInt(v))
	}

	return total.Equal(average.Mul(decimal.NewFromInt(int64(len(s)))))
}

// Within reports whether every value lies in b.
func (s Sequence) Within(b Bounds) bool {
	for _, v := range s {
		if !b.Contains(v) {
			return false
		}
	}

	return true
}
