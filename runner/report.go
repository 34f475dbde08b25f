// SPDX-License-Identifier: MIT
// Package: avgdist/runner
//
// report.go - batch results.

package runner

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/avgdist/core"
	"github.com/katalvlaran/avgdist/stats"
)

// Report is the outcome of one algorithm run. Exactly one of Sequence and
// Err is set.
type Report struct {
	Algorithm string
	Sequence  core.Sequence
	Summary   stats.Summary
	Elapsed   time.Duration
	Err       error
}

// OK reports whether the run produced a sequence.
func (r Report) OK() bool { return r.Err == nil }

// Batch is the outcome of one Runner.Run: the reduced target and one Report
// per algorithm, in registration order.
type Batch struct {
	ID      uuid.UUID
	Target  core.Target
	Bounds  core.Bounds
	Reports []Report
}

// Failed counts the reports that carry an error.
func (b Batch) Failed() int {
	var n int
	for _, r := range b.Reports {
		if r.Err != nil {
			n++
		}
	}

	return n
}

// Err joins every report error; nil when all runs succeeded.
func (b Batch) Err() error {
	var errs []error
	for _, r := range b.Reports {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}

	return errors.Join(errs...)
}

// Report returns the report of the named algorithm.
func (b Batch) Report(name string) (Report, bool) {
	for _, r := range b.Reports {
		if r.Algorithm == name {
			return r, true
		}
	}

	return Report{}, false
}
