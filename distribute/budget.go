// SPDX-License-Identifier: MIT
// Package: avgdist/distribute
//
// budget.go - iteration cap + sparse deadline shared by every strategy loop,
// and the common preflight (validation + option resolution).

package distribute

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/avgdist/core"
)

// deadlineMask makes the wall-clock check run once every 4096 steps.
const deadlineMask = 4095

// budget counts loop iterations and watches an optional deadline.
type budget struct {
	max         int
	used        int
	useDeadline bool
	deadline    time.Time
	timedOut    bool
}

func newBudget(o Options) *budget {
	b := &budget{max: o.MaxIterations}
	if o.TimeLimit > 0 {
		b.useDeadline = true
		b.deadline = time.Now().Add(o.TimeLimit)
	}

	return b
}

// step consumes one iteration; false means the budget is exhausted.
func (b *budget) step() bool {
	b.used++
	if b.used > b.max {
		return false
	}
	if b.useDeadline && (b.used&deadlineMask) == 0 && time.Now().After(b.deadline) {
		b.timedOut = true
		return false
	}

	return true
}

// reason describes why step returned false, for error details.
func (b *budget) reason() string {
	if b.timedOut {
		return "time limit exceeded"
	}

	return "iteration cap reached"
}

// preflight validates the target against the bounds and resolves options.
func preflight(method string, t core.Target, b core.Bounds, opts []Option) (Options, error) {
	if err := core.ValidateInputs(t.Average, b); err != nil {
		return Options{}, err
	}
	if err := t.Check(); err != nil {
		return Options{}, err
	}
	o := gatherOptions(opts)
	if t.Count > int64(o.MaxLength) {
		return Options{}, core.Errorf(method, core.ErrUnsatisfiable,
			"count %d exceeds max length %d", t.Count, o.MaxLength)
	}

	return o, nil
}

// checkSumRange fails with core.ErrUnsatisfiable unless count·lo, count·hi
// and count·(hi−lo) all fit in int64. Loops that keep a running int64 total
// over count values in [lo, hi] call it before the first mutation.
func checkSumRange(method string, count, lo, hi int64) error {
	n := decimal.NewFromInt(count)
	for _, v := range []decimal.Decimal{
		decimal.NewFromInt(lo),
		decimal.NewFromInt(hi),
		decimal.NewFromInt(hi).Sub(decimal.NewFromInt(lo)),
	} {
		if !v.Mul(n).BigInt().IsInt64() {
			return core.Errorf(method, core.ErrUnsatisfiable,
				"sum of %d values in [%d, %d] overflows int64", count, lo, hi)
		}
	}

	return nil
}

// fill returns n copies of v.
func fill(n int, v int64) core.Sequence {
	s := make(core.Sequence, n)
	for i := range s {
		s[i] = v
	}

	return s
}
