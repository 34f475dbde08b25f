// SPDX-License-Identifier: MIT
// Package: avgdist/backtrack
//
// options.go - step budget and match mode for Search.

package backtrack

import (
	"time"
)

// DefaultMaxSteps bounds the walk when MaxSteps == 0.
const DefaultMaxSteps = 1_000_000

// MatchMode selects how the running mean is compared to the average.
type MatchMode int

const (
	// MatchExact compares sum against average·len exactly.
	MatchExact MatchMode = iota
	// MatchPrecision compares the floored mean at Options.Precision digits.
	MatchPrecision
)

// String renders the mode for logs.
func (m MatchMode) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchPrecision:
		return "precision"
	default:
		return "unknown"
	}
}

// Options configures one Search.
type Options struct {
	// MaxSteps caps loop iterations; 0 means DefaultMaxSteps.
	MaxSteps int
	// TimeLimit is an optional wall-clock budget; 0 disables it.
	TimeLimit time.Duration
	// Mode is the mean comparison; MatchExact by default.
	Mode MatchMode
	// Precision applies to MatchPrecision; 0 means fractional digits + 1.
	Precision int32
}

// Option customizes Options before a run.
type Option func(*Options)

// DefaultOptions returns exact matching with the default step budget.
func DefaultOptions() Options {
	return Options{
		MaxSteps:  DefaultMaxSteps,
		TimeLimit: 0,
		Mode:      MatchExact,
		Precision: 0,
	}
}

// WithMaxSteps caps the walk. Panics on n < 0; 0 restores the default.
func WithMaxSteps(n int) Option {
	if n < 0 {
		panic("backtrack: WithMaxSteps(n<0)")
	}
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithTimeLimit sets a wall-clock budget. Panics on d < 0; 0 disables it.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic("backtrack: WithTimeLimit(d<0)")
	}
	return func(o *Options) {
		o.TimeLimit = d
	}
}

// WithMatchExact selects exact comparison (the default).
func WithMatchExact() Option {
	return func(o *Options) {
		o.Mode = MatchExact
		o.Precision = 0
	}
}

// WithMatchPrecision selects floored comparison at p fractional digits.
// p == 0 derives the precision from the average. Panics on p < 0.
func WithMatchPrecision(p int32) Option {
	if p < 0 {
		panic("backtrack: WithMatchPrecision(p<0)")
	}
	return func(o *Options) {
		o.Mode = MatchPrecision
		o.Precision = p
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.MaxSteps == 0 {
		o.MaxSteps = DefaultMaxSteps
	}

	return o
}
