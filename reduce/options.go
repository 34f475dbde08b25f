// SPDX-License-Identifier: MIT
// Package: avgdist/reduce
//
// options.go - functional options for Reduce.
//
// Option constructors panic on meaningless values (programmer error);
// Reduce itself never panics.

package reduce

// DefaultMaxScale is the largest number of ×10 passes Reduce performs.
// 10^18 is the largest power of ten that fits in int64.
const DefaultMaxScale = 18

// Options holds the resolved configuration of one Reduce call.
type Options struct {
	// LowestTerms divides (Count, Sum) by gcd(Count, Sum).
	LowestTerms bool
	// MaxScale caps the number of scaling passes (1..DefaultMaxScale).
	MaxScale int
}

// Option mutates Options before reduction starts.
type Option func(*Options)

// DefaultOptions returns the historical behavior: no GCD reduction and the
// full int64 scaling range.
func DefaultOptions() Options {
	return Options{
		LowestTerms: false,
		MaxScale:    DefaultMaxScale,
	}
}

// WithLowestTerms requests the shortest (count, sum) pair.
func WithLowestTerms() Option {
	return func(o *Options) {
		o.LowestTerms = true
	}
}

// WithMaxScale bounds the scaling passes. Panics unless 1 ≤ n ≤ DefaultMaxScale.
func WithMaxScale(n int) Option {
	if n < 1 || n > DefaultMaxScale {
		panic("reduce: WithMaxScale out of range")
	}
	return func(o *Options) {
		o.MaxScale = n
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
