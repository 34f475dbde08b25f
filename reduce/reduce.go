// SPDX-License-Identifier: MIT
// Package: avgdist/reduce
//
// reduce.go - average → (count, sum).

package reduce

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/avgdist/core"
)

const (
	methodReduce     = "Reduce"
	methodMultiplier = "Multiplier"
)

var ten = decimal.NewFromInt(10)

// Reduce validates (average, b) and returns the exact ratio Sum/Count == average.
//
// Contract:
//   - All preconditions of core.ValidateInputs hold, otherwise ErrInvalidAverage.
//   - Count = 10^k for the smallest k ≥ 1 making average·10^k integral, unless
//     WithLowestTerms is set (then Count/Sum are coprime).
//   - Sum and Count fit in int64, otherwise ErrInvalidAverage.
//
// Complexity: O(k) decimal operations for k fractional digits.
func Reduce(average decimal.Decimal, b core.Bounds, opts ...Option) (core.Target, error) {
	if err := core.ValidateInputs(average, b); err != nil {
		return core.Target{}, err
	}
	o := gatherOptions(opts)

	count, err := multiplier(average, o.MaxScale)
	if err != nil {
		return core.Target{}, err
	}

	sumDec := average.Mul(decimal.NewFromInt(count))
	if !sumDec.IsInteger() || !sumDec.BigInt().IsInt64() {
		return core.Target{}, core.Errorf(methodReduce, core.ErrInvalidAverage,
			"sum %s for count %d does not fit int64", sumDec, count)
	}
	sum := sumDec.IntPart()

	if o.LowestTerms {
		g := gcd(abs(sum), count)
		count /= g
		sum /= g
	}

	t := core.Target{Average: average, Count: count, Sum: sum}
	if err = t.Check(); err != nil {
		return core.Target{}, err
	}

	return t, nil
}

// Multiplier runs only the scaling loop (no bounds checks) with the default
// scale cap. average must have a non-zero integer part.
func Multiplier(average decimal.Decimal) (int64, error) {
	if core.IntegerPart(average).IsZero() {
		return 0, core.Errorf(methodMultiplier, core.ErrInvalidAverage,
			"cannot divide by zero: average=%s", average)
	}

	return multiplier(average, DefaultMaxScale)
}

// multiplier scales the fractional remainder by ten until it vanishes.
// One pass always happens, so integral averages yield 10.
func multiplier(average decimal.Decimal, maxScale int) (int64, error) {
	var (
		remainder = core.FractionalPart(average)
		mult      = int64(1)
		passes    int
	)
	for {
		if passes == maxScale {
			return 0, core.Errorf(methodMultiplier, core.ErrInvalidAverage,
				"average %s needs more than %d decimal digits", average, maxScale)
		}
		mult *= 10
		passes++
		remainder = core.FractionalPart(remainder.Mul(ten))
		if remainder.IsZero() {
			return mult, nil
		}
	}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}

	return a
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}
