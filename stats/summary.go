// SPDX-License-Identifier: MIT
// Package: avgdist/stats
//
// summary.go - one-shot summary used by callers to compare algorithm runs.

package stats

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/avgdist/core"
)

// Summary bundles the statistics reported for every algorithm run.
type Summary struct {
	Count    int
	Sum      decimal.Decimal
	Mean     decimal.Decimal
	Variance decimal.Decimal
	Min      decimal.Decimal
	Max      decimal.Decimal
}

// Summarize computes all statistics in one call.
// Returns ErrEmptyInput (and a zero Summary) for empty input.
//
// Complexity: O(n).
func Summarize(values []decimal.Decimal, precision int32) (Summary, error) {
	lo, err := Min(values)
	if err != nil {
		return Summary{}, err
	}
	hi, err := Max(values)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Count:    len(values),
		Sum:      Sum(values),
		Mean:     Mean(values, precision),
		Variance: Variance(values, precision),
		Min:      lo,
		Max:      hi,
	}, nil
}

// OfSequence summarizes an integer sequence.
func OfSequence(s core.Sequence, precision int32) (Summary, error) {
	return Summarize(s.Decimals(), precision)
}

// String renders the summary in a single log-friendly line.
func (s Summary) String() string {
	return fmt.Sprintf("sum=%s, mean=%s, variance=%s, min=%s, max=%s, numElements=%d",
		s.Sum, s.Mean, s.Variance, s.Min, s.Max, s.Count)
}

// LogValue implements slog.LogValuer so a Summary logs as a group.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("sum", s.Sum.String()),
		slog.String("mean", s.Mean.String()),
		slog.String("variance", s.Variance.String()),
		slog.String("min", s.Min.String()),
		slog.String("max", s.Max.String()),
		slog.Int("num_elements", s.Count),
	)
}
