// SPDX-License-Identifier: MIT

// Package core defines the shared data model of avgdist: exact values, the
// inclusive integer Bounds a sequence must respect, the reduced Target
// (count, sum) pair, and the Sequence every algorithm returns.
//
// 🚀 What problem is modelled?
//
//	Given a decimal average such as 4.3 and bounds [1, 5], find integers
//	x₁…xₙ with min ≤ xᵢ ≤ max and Σxᵢ / n == average exactly.
//	4.3 reduces to 43/10, so ten values summing to 43 (e.g. 5,5,5,4,4,4,4,4,4,4)
//	satisfy it.
//
// ✨ Key pieces:
//   - Exact arithmetic on github.com/shopspring/decimal; no float64 anywhere.
//   - Bounds   - inclusive [Min, Max] with Min < Max.
//   - Target   - Average plus the integer ratio Sum/Count equal to it.
//   - Sequence - an independent []int64 snapshot owned by the caller.
//
// Error taxonomy (errors.go), matched with errors.Is:
//
//	ErrInvalidAverage - (average, min, max) preconditions violated.
//	ErrUnsatisfiable  - an algorithm's bounds make convergence impossible.
//	ErrNoConvergence  - an iteration/step budget ran out before an exact match.
//	ErrBadOption      - a runtime option resolved to a meaningless value.
//
// The construction algorithms and exact-mode search call VerifySequence
// before returning, so a nil error implies the sum/bounds invariant holds.
package core
