// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/avgdist/core"
	"github.com/katalvlaran/avgdist/reduce"
	"github.com/katalvlaran/avgdist/runner"
)

// Result is what a finished invocation reports back to main.
type Result struct {
	ExitCode int
	Batch    runner.Batch
}

// Execute runs one batch for inv with budgets from cfg, writing a per-algorithm
// table to stdout and structured logs to stderr.
//
// Exit codes: ExitSuccess when every algorithm succeeded, ExitAlgorithmFailure
// when at least one failed, ExitInvalidInvocation for averages the bounds
// reject, ExitInternalError for anything else.
func Execute(ctx context.Context, inv Invocation, cfg Config, stdout, stderr io.Writer) (Result, error) {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	limits := runner.Limits{
		MaxIterations: cfg.MaxIterations,
		MaxSteps:      cfg.MaxSteps,
		TimeLimit:     cfg.TimeLimit,
	}
	algs, err := runner.Select(inv.Algorithms, limits)
	if err != nil {
		return Result{ExitCode: ExitInvalidInvocation}, invalidInvocationf("%v", err)
	}

	seed := inv.Seed
	if seed == 0 {
		seed = cfg.Seed
	}
	concurrency := inv.Concurrency
	if concurrency == 0 {
		concurrency = cfg.Concurrency
	}

	reg := prometheus.NewRegistry()
	opts := []runner.Option{
		runner.WithAlgorithms(algs...),
		runner.WithLogger(logger),
		runner.WithMetrics(runner.NewMetrics(reg)),
		runner.WithSeed(seed),
		runner.WithConcurrency(concurrency),
	}
	if inv.LowestTerms {
		opts = append(opts, runner.WithReduceOptions(reduce.WithLowestTerms()))
	}
	r, err := runner.New(opts...)
	if err != nil {
		return Result{ExitCode: ExitInternalError}, err
	}

	batch, err := r.Run(ctx, runner.Request{Average: inv.Average, Bounds: inv.Bounds})
	if err != nil {
		if errors.Is(err, core.ErrInvalidAverage) {
			return Result{ExitCode: ExitInvalidInvocation}, invalidInvocationf("%v", err)
		}
		return Result{ExitCode: ExitInternalError}, err
	}

	writeBatch(stdout, batch, inv.Print)
	logMetrics(ctx, logger, reg)

	res := Result{ExitCode: ExitSuccess, Batch: batch}
	if batch.Failed() > 0 {
		res.ExitCode = ExitAlgorithmFailure
	}
	return res, nil
}

func writeBatch(w io.Writer, b runner.Batch, printValues bool) {
	fmt.Fprintf(w, "average=%s count=%d sum=%d bounds=[%d,%d]\n",
		b.Target.Average, b.Target.Count, b.Target.Sum, b.Bounds.Min, b.Bounds.Max)
	for _, rep := range b.Reports {
		if rep.Err != nil {
			fmt.Fprintf(w, "%-18s %12s  error: %v\n", rep.Algorithm, rep.Elapsed, rep.Err)
			continue
		}
		fmt.Fprintf(w, "%-18s %12s  %s\n", rep.Algorithm, rep.Elapsed, rep.Summary)
		if printValues {
			fmt.Fprintf(w, "%-18s %12s  %v\n", "", "", rep.Sequence)
		}
	}
}

// logMetrics dumps the counters of the private registry at debug level.
func logMetrics(ctx context.Context, logger *slog.Logger, reg *prometheus.Registry) {
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	families, err := reg.Gather()
	if err != nil {
		logger.WarnContext(ctx, "gather metrics", "error", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			c := m.GetCounter()
			if c == nil {
				continue
			}
			attrs := []any{"metric", mf.GetName(), "value", c.GetValue()}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, lp.GetName(), lp.GetValue())
			}
			logger.DebugContext(ctx, "metric", attrs...)
		}
	}
}
