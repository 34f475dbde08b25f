// SPDX-License-Identifier: MIT
// Package: avgdist/core
//
// errors.go - sentinel errors shared by every avgdist package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Algorithms attach context with Errorf (method + detail), never by
//     formatting parameters into the sentinel itself.
//   • Option constructors panic on programmer error; algorithms never panic.

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAverage indicates violated preconditions on (average, min, max):
	// zero integer part, min ≥ max, or average outside [min, max].
	// Fatal to the invocation; retrying with identical inputs cannot succeed.
	ErrInvalidAverage = errors.New("core: invalid average")

	// ErrUnsatisfiable indicates that an algorithm cannot reach the target
	// within the bounds (e.g. no headroom left below max or above min).
	// Local to that algorithm; another algorithm may still succeed.
	ErrUnsatisfiable = errors.New("core: unsatisfiable within bounds")

	// ErrNoConvergence indicates an iteration or step budget was exhausted
	// before the running mean matched the target.
	ErrNoConvergence = errors.New("core: no convergence within budget")

	// ErrBadOption indicates an option value that can only be rejected at run
	// time (e.g. a time limit that already expired).
	ErrBadOption = errors.New("core: invalid option value")
)

// Errorf wraps sentinel with a "<method>: <detail>" prefix while keeping it
// matchable with errors.Is.
func Errorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
