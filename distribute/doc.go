// SPDX-License-Identifier: MIT

// Package distribute builds integer sequences whose mean equals a reduced
// core.Target exactly, using four independent construction strategies.
//
// 🚀 Strategies (all take the same Target and Bounds):
//
//	Maximal          - start every value at trunc(average), then hand out the
//	                   pooled fractional parts one unit at a time, cyclically.
//	Subtraction      - start every value at max, decrement cyclically until the
//	                   sum drops to the target sum.
//	MovingAverage    - start every value at min, increment cyclically and
//	                   append a new min whenever a value is already at max.
//	                   The only strategy whose length may exceed Target.Count.
//	RandomAdjustment - draw random values, then walk them up (or down) toward
//	                   the target sum, jumping straight to the bound when the
//	                   remaining headroom is under a quarter of max.
//
// Example (4.3 in [1,5] → 43/10):
//
//	Maximal:     [5 5 5 4 4 4 4 4 4 4]
//	Subtraction: [4 4 4 4 4 4 4 5 5 5]
//
// ⚙️ Budgets:
//
//	Every loop is bounded by Options.MaxIterations and, optionally, a
//	wall-clock Options.TimeLimit checked every 4096 iterations. Exhaustion
//	yields core.ErrUnsatisfiable (fixed-length strategies) or
//	core.ErrNoConvergence (MovingAverage). A returned sequence always
//	satisfies Σs == average·len(s) and min ≤ s[i] ≤ max.
//
// Determinism:
//
//	Maximal, Subtraction and MovingAverage are pure. RandomAdjustment reads
//	only the injected *rand.Rand (WithRand / WithSeed); the default source is
//	seeded with a fixed value, never the clock.
package distribute
