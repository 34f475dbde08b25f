// SPDX-License-Identifier: MIT

// Package reduce turns a decimal average into an exact integer ratio.
//
// 🚀 How it works
//
//	multiplier := 1
//	remainder  := frac(average)
//	repeat:
//	  multiplier ×= 10
//	  remainder   = frac(remainder × 10)
//	until remainder == 0
//	count = multiplier, sum = average × count
//
//	4.3   → 43 / 10
//	3.142 → 3142 / 1000
//	5     → 50 / 10   (at least one scaling pass, kept for compatibility)
//
// ✨ Options:
//   - WithLowestTerms() divides (count, sum) by their GCD, giving the shortest
//     possible sequence length (5 → 5/1, 4.5 → 9/2).
//   - WithMaxScale(n) bounds the number of scaling passes.
//
// Preconditions on (average, min, max) are checked before any scaling; every
// violation is core.ErrInvalidAverage.
package reduce
