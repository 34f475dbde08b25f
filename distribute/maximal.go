// SPDX-License-Identifier: MIT
// Package: avgdist/distribute
//
// maximal.go - Maximal Distribution.

package distribute

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/avgdist/core"
)

const methodMaximal = "Maximal"

// Maximal builds a sequence of exactly t.Count values.
//
// Algorithm:
//  1. Set every value to t.Average and truncate it toward zero; the discarded
//     fractional parts are summed into a pool (integral, since Average·Count is).
//  2. Visit values cyclically. While the pool is positive, raise a value that is
//     below max by one and take one unit from the pool; a negative pool (negative
//     averages) lowers values above min instead.
//  3. Stop as soon as Σs == Average·Count.
//
// Errors:
//   - core.ErrInvalidAverage for bad inputs.
//   - core.ErrUnsatisfiable when a full pass moves nothing while the pool is
//     non-zero (no headroom), or when the budget runs out.
//
// Complexity: O(Count + |pool|) time, O(Count) space.
func Maximal(t core.Target, b core.Bounds, opts ...Option) (core.Sequence, error) {
	o, err := preflight(methodMaximal, t, b, opts)
	if err != nil {
		return nil, err
	}

	var (
		n    = int(t.Count)
		base = core.IntegerPart(t.Average)
		frac = t.Average.Sub(base)
		pool = decimal.Zero
	)
	seq := fill(n, base.IntPart())
	for range seq {
		pool = pool.Add(frac)
	}

	var (
		remaining = pool.IntPart()
		sum       = seq.Sum()
		bud       = newBudget(o)
		idx       int
		moved     bool
	)
	for core.CompareMean(sum, t.Count, t.Average) != 0 {
		if !bud.step() {
			return nil, core.Errorf(methodMaximal, core.ErrUnsatisfiable,
				"%s with pool %d left", bud.reason(), remaining)
		}

		switch {
		case remaining > 0 && seq[idx] < b.Max:
			seq[idx]++
			sum++
			remaining--
			moved = true
		case remaining < 0 && seq[idx] > b.Min:
			seq[idx]--
			sum--
			remaining++
			moved = true
		}

		idx++
		if idx >= n {
			if !moved && remaining != 0 {
				return nil, core.Errorf(methodMaximal, core.ErrUnsatisfiable,
					"no headroom left for pool %d", remaining)
			}
			idx = 0
			moved = false
		}
	}

	if err = core.VerifySequence(methodMaximal, seq, t.Average, b); err != nil {
		return nil, err
	}

	return seq, nil
}
