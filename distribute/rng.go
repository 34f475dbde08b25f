// SPDX-License-Identifier: MIT
// Package: avgdist/distribute
//
// rng.go - deterministic random sources for RandomAdjustment and for callers
// that run several strategies side by side.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; use DeriveRand to give each run its own stream.

package distribute

import (
	"math"
	"math/rand"
)

// DefaultSeed is used whenever a caller passes seed 0.
const DefaultSeed int64 = 1

// RandFromSeed returns a deterministic *rand.Rand (seed 0 ⇒ DefaultSeed).
//
// Complexity: O(1).
func RandFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64 finalizer, so sibling streams are decorrelated.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRand creates an independent stream for the given parent seed.
func DeriveRand(parent int64, stream uint64) *rand.Rand {
	if parent == 0 {
		parent = DefaultSeed
	}

	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}

// drawInclusive returns a uniform integer in [lo, hi]; hi ≥ lo.
// Ranges wider than MaxInt64 are drawn in uint64 arithmetic.
func drawInclusive(r *rand.Rand, lo, hi int64) int64 {
	span := uint64(hi) - uint64(lo) + 1 // 0 for the full int64 range
	switch {
	case span == 0:
		return int64(r.Uint64())
	case span <= math.MaxInt64:
		return lo + r.Int63n(int64(span))
	default:
		return int64(uint64(lo) + r.Uint64()%span)
	}
}
