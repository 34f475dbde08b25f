// SPDX-License-Identifier: MIT

// Package stats summarizes sequences with exact decimal arithmetic: sum,
// mean, population variance, min and max.
//
// Numeric policy:
//   - Sums are exact.
//   - Every division (mean, variance) is floored to a fixed number of
//     fractional digits (DefaultPrecision unless the caller says otherwise).
//   - Empty input yields 0 for Sum/Mean/Variance and ErrEmptyInput for
//     Min/Max/Summarize.
//
// Usage:
//
//	s, _ := stats.OfSequence(seq, stats.DefaultPrecision)
//	fmt.Println(s) // sum=43, mean=4.3, variance=0.21, min=4, max=5, numElements=10
package stats
