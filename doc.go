// SPDX-License-Identifier: MIT

// Package avgdist builds integer sequences whose arithmetic mean equals a
// decimal average exactly, with every value kept inside [min, max].
//
// 🚀 What is avgdist?
//
//	Ask for a 4.3 rating on a 1..5 scale and get back ten votes such as
//	5 5 5 4 4 4 4 4 4 4. The library brings together:
//		• Exact decimals: github.com/shopspring/decimal, no float64 anywhere
//		• Rational reduction: 4.3 → 43/10, 3.142 → 3142/1000 (or 1571/500)
//		• Four construction strategies with fixed or growing length
//		• A tail-walking search that finds short sequences
//		• A batch runner with timing, summaries, slog logging and metrics
//
// ✨ Why choose avgdist?
//
//   - Exact – Σs == average·len(s) is checked before anything is returned
//   - Bounded – every loop has an iteration cap and an optional time limit
//   - Reproducible – randomness comes only from explicit seeds
//
// Packages:
//
//	core/       - Bounds, Target, Sequence, sentinel errors, validation
//	stats/      - Sum, Mean, Variance, Min, Max, Summary (floored decimals)
//	reduce/     - average → (count, sum)
//	distribute/ - Maximal, Subtraction, MovingAverage, RandomAdjustment
//	backtrack/  - Search
//	runner/     - concurrent batches, reports, Prometheus instruments
//	cmd/avgdist - command-line front end
//
// Quick example:
//
//	b := core.NewBounds(1, 5)
//	t, _ := reduce.Reduce(decimal.RequireFromString("4.3"), b)
//	seq, _ := distribute.Maximal(t, b) // [5 5 5 4 4 4 4 4 4 4]
//
//	go install github.com/katalvlaran/avgdist/cmd/avgdist@latest
package avgdist
