// SPDX-License-Identifier: MIT
// Package: avgdist/distribute
//
// moving.go - Moving-Average Growth.

package distribute

import (
	"github.com/katalvlaran/avgdist/core"
)

const methodMovingAverage = "MovingAverage"

// MovingAverage grows a sequence from t.Count values equal to min until its
// mean equals t.Average exactly. The result may be longer than t.Count.
//
// Algorithm:
//  1. s = [min × Count], idx = 0.
//  2. While mean(s) != Average:
//     s[idx] < max ⇒ s[idx]++, otherwise append min;
//     advance idx cyclically over the current length.
//
// The mean is tested before the first mutation, so Average == min returns
// the initial all-min sequence. The sequence is never empty, so the mean is
// always defined.
//
// Errors:
//   - core.ErrUnsatisfiable when min·Count does not fit in int64.
//   - core.ErrNoConvergence when MaxIterations, TimeLimit or MaxLength is hit.
//
// Complexity: O(iterations) time, O(len(result)) space.
func MovingAverage(t core.Target, b core.Bounds, opts ...Option) (core.Sequence, error) {
	o, err := preflight(methodMovingAverage, t, b, opts)
	if err != nil {
		return nil, err
	}
	if err = checkSumRange(methodMovingAverage, t.Count, b.Min, b.Min); err != nil {
		return nil, err
	}

	var (
		seq = fill(int(t.Count), b.Min)
		sum = seq.Sum()
		bud = newBudget(o)
		idx int
	)
	for core.CompareMean(sum, int64(len(seq)), t.Average) != 0 {
		if !bud.step() {
			return nil, core.Errorf(methodMovingAverage, core.ErrNoConvergence,
				"%s at length %d", bud.reason(), len(seq))
		}

		if seq[idx] < b.Max {
			seq[idx]++
			sum++
		} else {
			if len(seq) >= o.MaxLength {
				return nil, core.Errorf(methodMovingAverage, core.ErrNoConvergence,
					"length cap %d reached", o.MaxLength)
			}
			seq = append(seq, b.Min)
			sum += b.Min
		}

		idx++
		if idx >= len(seq) {
			idx = 0
		}
	}

	if err = core.VerifySequence(methodMovingAverage, seq, t.Average, b); err != nil {
		return nil, err
	}

	return seq, nil
}
