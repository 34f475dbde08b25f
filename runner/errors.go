// SPDX-License-Identifier: MIT
// Package: avgdist/runner
//
// errors.go - runner configuration errors.

package runner

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAlgorithms indicates a Runner with nothing to run.
	ErrNoAlgorithms = errors.New("runner: no algorithms configured")

	// ErrNilAlgorithm indicates a nil entry in WithAlgorithms.
	ErrNilAlgorithm = errors.New("runner: nil algorithm")

	// ErrDuplicateAlgorithm indicates two algorithms sharing one name.
	ErrDuplicateAlgorithm = errors.New("runner: duplicate algorithm name")

	// ErrUnknownAlgorithm indicates a name Select does not know.
	ErrUnknownAlgorithm = errors.New("runner: unknown algorithm")
)

func runnerErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
