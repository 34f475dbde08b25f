// SPDX-License-Identifier: MIT
// Package: avgdist/distribute
//
// subtraction.go - Subtraction Distribution.

package distribute

import (
	"github.com/katalvlaran/avgdist/core"
)

const methodSubtraction = "Subtraction"

// Subtraction builds a sequence of exactly t.Count values.
//
// Algorithm:
//  1. Set every value to max; the target sum is t.Sum.
//  2. While Σs > t.Sum, decrement the value at a cyclic index by one and
//     advance the index (wrapping to 0 after the last value).
//
// The lower bound is enforced: a decrement that would take a value below min
// fails with core.ErrUnsatisfiable instead of producing an out-of-range value,
// as does a max·Count total that would not fit in int64.
//
// Complexity: O(Count + (max·Count − Sum)) time, O(Count) space.
func Subtraction(t core.Target, b core.Bounds, opts ...Option) (core.Sequence, error) {
	o, err := preflight(methodSubtraction, t, b, opts)
	if err != nil {
		return nil, err
	}
	if err = checkSumRange(methodSubtraction, t.Count, b.Min, b.Max); err != nil {
		return nil, err
	}

	var (
		n   = int(t.Count)
		seq = fill(n, b.Max)
		sum = seq.Sum()
		bud = newBudget(o)
		idx int
	)
	for sum > t.Sum {
		if !bud.step() {
			return nil, core.Errorf(methodSubtraction, core.ErrUnsatisfiable,
				"%s with excess %d left", bud.reason(), sum-t.Sum)
		}
		if seq[idx]-1 < b.Min {
			return nil, core.Errorf(methodSubtraction, core.ErrUnsatisfiable,
				"value at index %d would drop below min %d", idx, b.Min)
		}
		seq[idx]--
		sum--

		idx++
		if idx >= n {
			idx = 0
		}
	}

	if err = core.VerifySequence(methodSubtraction, seq, t.Average, b); err != nil {
		return nil, err
	}

	return seq, nil
}
