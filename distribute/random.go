// SPDX-License-Identifier: MIT
// Package: avgdist/distribute
//
// random.go - Random Adjustment.

package distribute

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/avgdist/core"
	"github.com/katalvlaran/avgdist/stats"
)

const methodRandomAdjustment = "RandomAdjustment"

// quarterScale is the precision of the max/4 jump threshold.
const quarterScale int32 = 2

var four = decimal.NewFromInt(4)

// RandomAdjustment builds a sequence of exactly t.Count values from random
// draws, then walks the total to t.Sum.
//
// Algorithm:
//  1. Draw Count integers uniformly in [1, max−1] (or [min, max] when that range
//     is empty); values that land below min are raised to min.
//  2. quarter = floor(max/4) at 2 fractional digits.
//  3. total < Sum: scan values below max; headroom = max − v. Headroom under
//     quarter jumps v straight to max, otherwise v += 1. Each step is clipped to
//     the remaining gap so the total never overshoots. Stop at total == Sum.
//  4. total > Sum: the mirror image toward min with the same threshold.
//
// Randomness comes only from Options.Rand (WithRand/WithSeed); without one a
// DefaultSeed stream is used, so results are reproducible by default.
//
// Errors:
//   - core.ErrUnsatisfiable when a full scan cannot move the total, the
//     budget runs out, or Count values in [min, max] could overflow int64.
//
// Complexity: O(Count + iterations) time, O(Count) space.
func RandomAdjustment(t core.Target, b core.Bounds, opts ...Option) (core.Sequence, error) {
	o, err := preflight(methodRandomAdjustment, t, b, opts)
	if err != nil {
		return nil, err
	}
	if err = checkSumRange(methodRandomAdjustment, t.Count, b.Min, b.Max); err != nil {
		return nil, err
	}
	rng := o.Rand
	if rng == nil {
		rng = RandFromSeed(0)
	}

	// Stage 1: draw.
	lo, hi := int64(1), b.Max-1
	if hi < lo {
		lo, hi = b.Min, b.Max
	}
	seq := make(core.Sequence, int(t.Count))
	var v int64
	for i := range seq {
		v = drawInclusive(rng, lo, hi)
		if v < b.Min {
			v = b.Min
		}
		seq[i] = v
	}

	// Stage 2: adjust.
	var (
		quarter = stats.DivFloor(b.MaxDecimal(), four, quarterScale)
		total   = seq.Sum()
		bud     = newBudget(o)
	)
	for total != t.Sum {
		var progressed bool
		for i := range seq {
			if total == t.Sum {
				break
			}
			if !bud.step() {
				return nil, core.Errorf(methodRandomAdjustment, core.ErrUnsatisfiable,
					"%s with gap %d left", bud.reason(), t.Sum-total)
			}

			var delta int64
			if total < t.Sum && seq[i] < b.Max {
				delta = adjustStep(b.Max-seq[i], t.Sum-total, quarter)
			} else if total > t.Sum && seq[i] > b.Min {
				delta = -adjustStep(seq[i]-b.Min, total-t.Sum, quarter)
			}
			if delta != 0 {
				seq[i] += delta
				total += delta
				progressed = true
			}
		}
		if !progressed && total != t.Sum {
			return nil, core.Errorf(methodRandomAdjustment, core.ErrUnsatisfiable,
				"no value can move toward gap %d", t.Sum-total)
		}
	}

	if err = core.VerifySequence(methodRandomAdjustment, seq, t.Average, b); err != nil {
		return nil, err
	}

	return seq, nil
}

// adjustStep returns the (positive) move for one value: the whole headroom
// when it is under quarter, otherwise 1, never more than gap.
func adjustStep(headroom, gap int64, quarter decimal.Decimal) int64 {
	step := int64(1)
	if decimal.NewFromInt(headroom).LessThan(quarter) {
		step = headroom
	}
	if step > gap {
		step = gap
	}

	return step
}
