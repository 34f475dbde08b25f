// SPDX-License-Identifier: MIT
// Package: avgdist/backtrack
//
// backtrack.go - the tail-walking search.

package backtrack

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/avgdist/core"
	"github.com/katalvlaran/avgdist/stats"
)

const methodSearch = "Search"

// deadlineMask makes the wall-clock check run once every 4096 steps.
const deadlineMask = 4095

// Result carries the found sequence together with the number of steps the
// walk took, for diagnostics and logging.
type Result struct {
	Sequence core.Sequence
	Steps    int
	Mode     MatchMode
}

// Search returns a sequence in [b.Min, b.Max] whose mean matches average
// under the configured MatchMode.
//
// Errors:
//   - core.ErrInvalidAverage on violated preconditions (see core.ValidateInputs).
//   - core.ErrNoConvergence when MaxSteps or TimeLimit runs out.
//   - core.ErrBadOption when a MatchPrecision precision has fewer digits
//     than the average itself.
//
// Complexity: O(steps) time, O(len(result)) space; each step is O(1) in
// MatchExact and one bounded decimal division in MatchPrecision.
func Search(average decimal.Decimal, b core.Bounds, opts ...Option) (core.Sequence, error) {
	res, err := SearchResult(average, b, opts...)
	if err != nil {
		return nil, err
	}

	return res.Sequence, nil
}

// SearchResult is Search with step accounting.
func SearchResult(average decimal.Decimal, b core.Bounds, opts ...Option) (Result, error) {
	if err := core.ValidateInputs(average, b); err != nil {
		return Result{}, err
	}
	o := gatherOptions(opts)

	cmp := exactComparer(average)
	if o.Mode == MatchPrecision {
		digits := core.FractionDigits(average)
		p := o.Precision
		if p == 0 {
			p = digits + 1
		}
		if p < digits {
			return Result{}, core.Errorf(methodSearch, core.ErrBadOption,
				"precision %d cannot represent %s", p, average)
		}
		cmp = precisionComparer(average, p)
	}

	var (
		seq         = core.Sequence{b.Min}
		sum         = b.Min
		steps       int
		useDeadline = o.TimeLimit > 0
		deadline    time.Time
	)
	if useDeadline {
		deadline = time.Now().Add(o.TimeLimit)
	}

	for {
		steps++
		if steps > o.MaxSteps {
			return Result{}, core.Errorf(methodSearch, core.ErrNoConvergence,
				"step cap %d reached at length %d", o.MaxSteps, len(seq))
		}
		if useDeadline && (steps&deadlineMask) == 0 && time.Now().After(deadline) {
			return Result{}, core.Errorf(methodSearch, core.ErrNoConvergence,
				"time limit exceeded after %d steps", steps)
		}

		last := len(seq) - 1
		switch c := cmp(sum, int64(len(seq))); {
		case c < 0:
			if seq[last] < b.Max {
				seq[last]++
				sum++
			} else {
				seq = append(seq, b.Min)
				sum += b.Min
			}
		case c > 0:
			if seq[last] > b.Min {
				seq[last]--
				sum--
			}
			seq = append(seq, b.Min)
			sum += b.Min
		default:
			return finish(seq, average, b, steps, o.Mode)
		}
	}
}

// finish checks the result before it leaves the package. Precision matches
// are only checked against the bounds.
func finish(seq core.Sequence, average decimal.Decimal, b core.Bounds, steps int, mode MatchMode) (Result, error) {
	if mode == MatchExact {
		if err := core.VerifySequence(methodSearch, seq, average, b); err != nil {
			return Result{}, err
		}
	} else if !seq.Within(b) {
		return Result{}, core.Errorf(methodSearch, core.ErrUnsatisfiable,
			"values %v outside [%d, %d]", seq, b.Min, b.Max)
	}

	return Result{Sequence: seq, Steps: steps, Mode: mode}, nil
}

// comparer reports the sign of mean(sum/n) − average.
type comparer func(sum, n int64) int

func exactComparer(average decimal.Decimal) comparer {
	return func(sum, n int64) int {
		return core.CompareMean(sum, n, average)
	}
}

func precisionComparer(average decimal.Decimal, precision int32) comparer {
	return func(sum, n int64) int {
		mean := stats.DivFloor(decimal.NewFromInt(sum), decimal.NewFromInt(n), precision)

		return mean.Cmp(average)
	}
}
