// SPDX-License-Identifier: MIT
// Package: avgdist/runner
//
// runner.go - batch orchestration.

package runner

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/avgdist/core"
	"github.com/katalvlaran/avgdist/distribute"
	"github.com/katalvlaran/avgdist/reduce"
	"github.com/katalvlaran/avgdist/stats"
)

// separator closes the log output of every batch.
const separator = "--------------------------------------------"

// Request is one (average, min, max) input.
type Request struct {
	Average decimal.Decimal
	Bounds  core.Bounds
}

// Runner runs a fixed set of algorithms against requests.
type Runner struct {
	algorithms  []Algorithm
	logger      *slog.Logger
	metrics     *Metrics
	concurrency int
	seed        int64
	precision   int32
	reduceOpts  []reduce.Option
	now         func() time.Time
}

// Option configures a Runner.
type Option func(r *Runner)

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithMetrics records every run into m.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) {
		r.metrics = m
	}
}

// WithAlgorithms replaces the built-in algorithm set.
func WithAlgorithms(algs ...Algorithm) Option {
	return func(r *Runner) {
		r.algorithms = algs
	}
}

// WithConcurrency caps parallel runs; n <= 0 means GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		r.concurrency = n
	}
}

// WithSeed sets the batch seed from which per-run random streams derive.
// 0 means distribute.DefaultSeed.
func WithSeed(seed int64) Option {
	return func(r *Runner) {
		r.seed = seed
	}
}

// WithPrecision sets the fractional digits used for summary means and variances.
func WithPrecision(p int32) Option {
	return func(r *Runner) {
		r.precision = p
	}
}

// WithReduceOptions forwards options to reduce.Reduce (e.g. reduce.WithLowestTerms).
func WithReduceOptions(opts ...reduce.Option) Option {
	return func(r *Runner) {
		r.reduceOpts = append(r.reduceOpts, opts...)
	}
}

// New constructs a Runner. Without WithAlgorithms it runs Builtins(Limits{}).
func New(opts ...Option) (*Runner, error) {
	r := &Runner{
		algorithms: Builtins(Limits{}),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		precision:  stats.DefaultPrecision,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	if len(r.algorithms) == 0 {
		return nil, ErrNoAlgorithms
	}
	seen := make(map[string]struct{}, len(r.algorithms))
	for i, a := range r.algorithms {
		if a == nil {
			return nil, runnerErrorf("New", ErrNilAlgorithm, "index %d", i)
		}
		name := a.Name()
		if _, dup := seen[name]; dup {
			return nil, runnerErrorf("New", ErrDuplicateAlgorithm, "%q", name)
		}
		seen[name] = struct{}{}
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if r.concurrency <= 0 {
		r.concurrency = runtime.GOMAXPROCS(0)
	}
	if r.seed == 0 {
		r.seed = distribute.DefaultSeed
	}

	return r, nil
}

// Algorithms lists the configured algorithm names in run order.
func (r *Runner) Algorithms() []string {
	names := make([]string, len(r.algorithms))
	for i, a := range r.algorithms {
		names[i] = a.Name()
	}

	return names
}

// Run reduces req and executes every algorithm against the result.
//
// Errors:
//   - core.ErrInvalidAverage (wrapped) when req cannot be reduced.
//   - ctx.Err() when ctx is done before or during the batch.
//
// Algorithm failures are not returned here; see Report.Err and Batch.Err.
func (r *Runner) Run(ctx context.Context, req Request) (Batch, error) {
	target, err := reduce.Reduce(req.Average, req.Bounds, r.reduceOpts...)
	if err != nil {
		r.logger.WarnContext(ctx, "rejected request",
			"average", req.Average.String(),
			"min", req.Bounds.Min,
			"max", req.Bounds.Max,
			"error", err,
		)
		return Batch{}, err
	}

	batch := Batch{
		ID:      uuid.New(),
		Target:  target,
		Bounds:  req.Bounds,
		Reports: make([]Report, len(r.algorithms)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, alg := range r.algorithms {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			batch.Reports[i] = r.runOne(gctx, alg, Input{
				Target: target,
				Bounds: req.Bounds,
				Rand:   distribute.DeriveRand(r.seed, uint64(i)),
			})
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return Batch{}, err
	}
	if err = ctx.Err(); err != nil {
		return Batch{}, err
	}

	r.logBatch(ctx, batch)

	return batch, nil
}

// runOne times a single algorithm and turns its outcome into a Report.
func (r *Runner) runOne(ctx context.Context, alg Algorithm, in Input) Report {
	name := alg.Name()
	start := r.now()
	seq, err := alg.Run(ctx, in)
	elapsed := r.now().Sub(start)

	rep := Report{Algorithm: name, Elapsed: elapsed}
	if err == nil {
		// A custom Algorithm may break the invariant; built-ins never do.
		err = core.VerifySequence(name, seq, in.Target.Average, in.Bounds)
	}
	if err == nil {
		rep.Summary, err = stats.OfSequence(seq, r.precision)
	}
	if err != nil {
		rep.Err = err
	} else {
		rep.Sequence = seq
	}
	r.metrics.ObserveRun(name, elapsed, len(rep.Sequence), rep.Err)

	return rep
}

func (r *Runner) logBatch(ctx context.Context, b Batch) {
	r.logger.InfoContext(ctx, "batch",
		"batch_id", b.ID.String(),
		"average", b.Target.Average.String(),
		"count", b.Target.Count,
		"sum", b.Target.Sum,
		"min", b.Bounds.Min,
		"max", b.Bounds.Max,
	)
	for _, rep := range b.Reports {
		if rep.Err != nil {
			r.logger.WarnContext(ctx, "algorithm failed",
				"batch_id", b.ID.String(),
				"algorithm", rep.Algorithm,
				"elapsed", rep.Elapsed,
				"reason", FailureReason(rep.Err),
				"error", rep.Err,
			)
			continue
		}
		r.logger.InfoContext(ctx, "algorithm finished",
			"batch_id", b.ID.String(),
			"algorithm", rep.Algorithm,
			"elapsed", rep.Elapsed,
			"summary", rep.Summary,
		)
		r.logger.DebugContext(ctx, "sequence",
			"batch_id", b.ID.String(),
			"algorithm", rep.Algorithm,
			"values", rep.Sequence,
		)
	}
	r.logger.InfoContext(ctx, separator)
}
