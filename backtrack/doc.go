// SPDX-License-Identifier: MIT

// Package backtrack finds a short integer sequence in [min, max] whose mean
// equals a decimal average by walking a single growing list.
//
// 🚀 Walk:
//
//	Start from [min]. On every step compare the running mean to the average:
//	  below → raise the last value, or append min once it sits at max;
//	  above → lower the last value if it can move, then append min;
//	  equal → done.
//	Only the tail ever changes, so the search is an explicit loop with O(1)
//	work per step; no recursion and no call-stack growth.
//
// ✨ Match modes:
//
//	MatchExact (default) compares Σs against average·len(s) exactly and is the
//	only mode whose results satisfy the exact-mean invariant.
//	MatchPrecision compares the mean floored to a fixed number of fractional
//	digits (default: digits of the average + 1). It stops earlier and may
//	return a sequence whose true mean only agrees with the average up to that
//	precision; 3.142 in [1,5] yields 531/169 instead of 1571/500.
//
// ⚙️ Budgets:
//
//	WithMaxSteps (default 1,000,000) and WithTimeLimit bound the loop;
//	exhaustion yields core.ErrNoConvergence and no partial sequence.
package backtrack
