// SPDX-License-Identifier: MIT
// Package: avgdist/runner
//
// algorithm.go - the Algorithm contract and the built-in registrations.

package runner

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/katalvlaran/avgdist/backtrack"
	"github.com/katalvlaran/avgdist/core"
	"github.com/katalvlaran/avgdist/distribute"
)

// Built-in algorithm names, as accepted by Select.
const (
	NameMaximal          = "maximal"
	NameSubtraction      = "subtraction"
	NameMovingAverage    = "moving-average"
	NameRandomAdjustment = "random-adjustment"
	NameBacktrack        = "backtrack"
)

// Input is everything one algorithm run receives.
type Input struct {
	Target core.Target
	Bounds core.Bounds
	// Rand is private to this run; algorithms that do not draw ignore it.
	Rand *rand.Rand
}

// Algorithm produces a sequence for one reduced target.
type Algorithm interface {
	Name() string
	Run(ctx context.Context, in Input) (core.Sequence, error)
}

// Limits bounds the built-in algorithms. Zero values mean package defaults.
type Limits struct {
	MaxIterations int
	MaxSteps      int
	TimeLimit     time.Duration
}

// algorithmFunc adapts a plain function to Algorithm.
type algorithmFunc struct {
	name string
	run  func(in Input) (core.Sequence, error)
}

func (a algorithmFunc) Name() string { return a.name }

func (a algorithmFunc) Run(ctx context.Context, in Input) (core.Sequence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return a.run(in)
}

// Builtins returns the five built-in algorithms in their canonical order.
func Builtins(l Limits) []Algorithm {
	dist := func(in Input) []distribute.Option {
		opts := []distribute.Option{
			distribute.WithMaxIterations(l.MaxIterations),
			distribute.WithTimeLimit(l.TimeLimit),
		}
		if in.Rand != nil {
			opts = append(opts, distribute.WithRand(in.Rand))
		}

		return opts
	}

	return []Algorithm{
		algorithmFunc{NameMaximal, func(in Input) (core.Sequence, error) {
			return distribute.Maximal(in.Target, in.Bounds, dist(in)...)
		}},
		algorithmFunc{NameSubtraction, func(in Input) (core.Sequence, error) {
			return distribute.Subtraction(in.Target, in.Bounds, dist(in)...)
		}},
		algorithmFunc{NameMovingAverage, func(in Input) (core.Sequence, error) {
			return distribute.MovingAverage(in.Target, in.Bounds, dist(in)...)
		}},
		algorithmFunc{NameRandomAdjustment, func(in Input) (core.Sequence, error) {
			return distribute.RandomAdjustment(in.Target, in.Bounds, dist(in)...)
		}},
		algorithmFunc{NameBacktrack, func(in Input) (core.Sequence, error) {
			return backtrack.Search(in.Target.Average, in.Bounds,
				backtrack.WithMaxSteps(l.MaxSteps),
				backtrack.WithTimeLimit(l.TimeLimit),
			)
		}},
	}
}

// Select picks built-ins by name, keeping the order of names. Names are
// matched case-insensitively; an empty list selects all of them.
func Select(names []string, l Limits) ([]Algorithm, error) {
	all := Builtins(l)
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]Algorithm, len(all))
	for _, a := range all {
		byName[a.Name()] = a
	}
	out := make([]Algorithm, 0, len(names))
	for _, n := range names {
		a, ok := byName[strings.ToLower(strings.TrimSpace(n))]
		if !ok {
			return nil, runnerErrorf("Select", ErrUnknownAlgorithm, "%q", n)
		}
		out = append(out, a)
	}

	return out, nil
}
