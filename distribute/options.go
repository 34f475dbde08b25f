// SPDX-License-Identifier: MIT
// Package: avgdist/distribute
//
// options.go - functional options shared by all construction strategies.
//
// Contract:
//   • Options are functional (type Option func(*Options)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     strategies themselves never panic.
//   • Randomness is explicit: WithRand or WithSeed; nothing reads the clock.

package distribute

import (
	"math/rand"
	"time"
)

const (
	// DefaultMaxIterations bounds every strategy loop when MaxIterations==0.
	DefaultMaxIterations = 10_000_000

	// DefaultMaxLength bounds the number of values a strategy may allocate
	// (initial Count and MovingAverage growth alike).
	DefaultMaxLength = 1 << 24
)

// Options configures a single strategy run.
type Options struct {
	// MaxIterations caps loop iterations; 0 means DefaultMaxIterations.
	MaxIterations int
	// MaxLength caps the sequence length; 0 means DefaultMaxLength.
	MaxLength int
	// TimeLimit is an optional wall-clock budget; 0 disables it.
	TimeLimit time.Duration
	// Rand feeds RandomAdjustment; nil means a deterministic default stream.
	Rand *rand.Rand
}

// Option customizes Options before a run.
type Option func(*Options)

// DefaultOptions returns the zero-knob configuration with defaults resolved.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		MaxLength:     DefaultMaxLength,
		TimeLimit:     0,
		Rand:          nil,
	}
}

// WithMaxIterations caps loop iterations. Panics on n < 0; 0 restores the default.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic("distribute: WithMaxIterations(n<0)")
	}
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithMaxLength caps the sequence length. Panics on n < 0; 0 restores the default.
func WithMaxLength(n int) Option {
	if n < 0 {
		panic("distribute: WithMaxLength(n<0)")
	}
	return func(o *Options) {
		o.MaxLength = n
	}
}

// WithTimeLimit sets a wall-clock budget. Panics on d < 0; 0 disables it.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic("distribute: WithTimeLimit(d<0)")
	}
	return func(o *Options) {
		o.TimeLimit = d
	}
}

// WithRand injects the random source used by RandomAdjustment. Panics on nil.
// *rand.Rand is not goroutine-safe; give every concurrent run its own.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("distribute: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed seeds a fresh deterministic source (seed 0 ⇒ DefaultSeed).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = RandFromSeed(seed)
	}
}

// gatherOptions applies opts in order (last wins) and resolves zero values.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.MaxLength == 0 {
		o.MaxLength = DefaultMaxLength
	}

	return o
}
