// SPDX-License-Identifier: MIT
// Package: avgdist/runner
//
// metrics.go - Prometheus instruments for algorithm runs.

package runner

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/avgdist/core"
)

// Failure reasons used as the "reason" label.
const (
	ReasonInvalidAverage = "invalid_average"
	ReasonUnsatisfiable  = "unsatisfiable"
	ReasonNoConvergence  = "no_convergence"
	ReasonCanceled       = "canceled"
	ReasonOther          = "other"
)

// Metrics provides observability for batch runs.
type Metrics struct {
	// Runs by algorithm, successful or not
	Runs *prometheus.CounterVec

	// Failures by algorithm and reason
	Failures *prometheus.CounterVec

	// Run duration by algorithm
	Duration *prometheus.HistogramVec

	// Length of returned sequences by algorithm
	SequenceLength *prometheus.HistogramVec
}

// NewMetrics creates all runner instruments and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "avgdist_runs_total",
			Help: "Total algorithm runs by algorithm",
		}, []string{"algorithm"}),

		Failures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "avgdist_run_failures_total",
			Help: "Total failed algorithm runs by algorithm and reason",
		}, []string{"algorithm", "reason"}),

		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "avgdist_run_duration_seconds",
			Help:    "Duration of a single algorithm run",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"algorithm"}),

		SequenceLength: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "avgdist_sequence_length",
			Help:    "Number of values in sequences returned by successful runs",
			Buckets: prometheus.ExponentialBuckets(1, 10, 7),
		}, []string{"algorithm"}),
	}
}

// ObserveRun records one finished run.
func (m *Metrics) ObserveRun(algorithm string, d time.Duration, length int, err error) {
	if m == nil {
		return
	}
	m.Runs.WithLabelValues(algorithm).Inc()
	m.Duration.WithLabelValues(algorithm).Observe(d.Seconds())
	if err != nil {
		m.Failures.WithLabelValues(algorithm, FailureReason(err)).Inc()
		return
	}
	m.SequenceLength.WithLabelValues(algorithm).Observe(float64(length))
}

// FailureReason maps an algorithm error onto a metric label.
func FailureReason(err error) string {
	switch {
	case errors.Is(err, core.ErrInvalidAverage):
		return ReasonInvalidAverage
	case errors.Is(err, core.ErrUnsatisfiable):
		return ReasonUnsatisfiable
	case errors.Is(err, core.ErrNoConvergence):
		return ReasonNoConvergence
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ReasonCanceled
	default:
		return ReasonOther
	}
}
