// SPDX-License-Identifier: MIT

// Package runner executes a batch of averaging algorithms against one
// (average, min, max) request and reports how each of them did.
//
// 🚀 What a batch does:
//
//	1. Reduce the average to a core.Target (reduce.Reduce).
//	2. Run every configured Algorithm, in parallel up to a concurrency limit
//	   (errgroup.SetLimit). Each run gets its own *rand.Rand derived from the
//	   batch seed and the run index, so a batch is reproducible.
//	3. Time each run, summarize its sequence (stats.OfSequence) and record
//	   Prometheus metrics.
//	4. Log every report in registration order, then a separator line.
//
// A failing algorithm never aborts its siblings: the error lands in its
// Report. Run itself fails only on invalid input or a cancelled context.
//
// ⚙️ Built-ins (see Builtins / Select):
//
//	maximal, subtraction, moving-average, random-adjustment, backtrack
//
// Logging goes through an injected *slog.Logger (WithLogger); the default
// discards everything. Metrics are optional (WithMetrics).
package runner
