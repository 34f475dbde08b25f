// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/avgdist/core"
)

const (
	ExitSuccess           = 0
	ExitAlgorithmFailure  = 1
	ExitInvalidInvocation = 2
	ExitConfigError       = 3
	ExitInternalError     = 4
)

// Invocation is the parsed command line. Zero Seed and Concurrency defer to
// the environment (see Config).
type Invocation struct {
	Average     decimal.Decimal
	Bounds      core.Bounds
	LowestTerms bool
	Seed        int64
	Concurrency int
	Algorithms  []string
	Print       bool
}

type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

func configErrorf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitConfigError, Message: fmt.Sprintf(format, args...)}
}

// ParseInvocation parses CLI flags into an Invocation.
//
// The average must be given explicitly; -min and -max default to the 1..5
// rating scale. The range check against the average is left to the runner.
func ParseInvocation(args []string) (Invocation, error) {
	fs := flag.NewFlagSet("avgdist", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // parsing errors are returned, not printed

	var (
		average     string
		minValue    int64
		maxValue    int64
		lowestTerms bool
		seed        int64
		concurrency int
		algorithms  string
		printValues bool
	)
	fs.StringVar(&average, "average", "", "Target average as a decimal literal, e.g. 4.3. Required.")
	fs.Int64Var(&minValue, "min", 1, "Smallest allowed value.")
	fs.Int64Var(&maxValue, "max", 5, "Largest allowed value.")
	fs.BoolVar(&lowestTerms, "lowest-terms", false, "Reduce count/sum by their GCD (shortest sequences).")
	fs.Int64Var(&seed, "seed", 0, "Batch seed for randomized algorithms (0: AVGDIST_SEED or default).")
	fs.IntVar(&concurrency, "concurrency", 0, "Parallel algorithm runs (0: AVGDIST_CONCURRENCY or GOMAXPROCS).")
	fs.StringVar(&algorithms, "algorithms", "", "Comma-separated algorithm names (default: all).")
	fs.BoolVar(&printValues, "print", false, "Print every produced sequence.")

	if err := fs.Parse(args); err != nil {
		return Invocation{}, invalidInvocationf("%v", err)
	}
	if fs.NArg() != 0 {
		return Invocation{}, invalidInvocationf("unexpected positional arguments: %q", strings.Join(fs.Args(), " "))
	}

	if strings.TrimSpace(average) == "" {
		return Invocation{}, invalidInvocationf("-average is required")
	}
	avg, err := decimal.NewFromString(strings.TrimSpace(average))
	if err != nil {
		return Invocation{}, invalidInvocationf("invalid -average %q: %v", average, err)
	}
	if concurrency < 0 {
		return Invocation{}, invalidInvocationf("-concurrency must be >= 0 (got %d)", concurrency)
	}

	return Invocation{
		Average:     avg,
		Bounds:      core.NewBounds(minValue, maxValue),
		LowestTerms: lowestTerms,
		Seed:        seed,
		Concurrency: concurrency,
		Algorithms:  splitList(algorithms),
		Print:       printValues,
	}, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ExitCode extracts a semantic exit code from a ParseInvocation or Execute error.
// If the error is not a known invocation error, it returns ExitInternalError.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var invErr *InvocationError
	if errors.As(err, &invErr) && invErr != nil {
		if invErr.ExitCode != 0 {
			return invErr.ExitCode
		}
		return ExitInvalidInvocation
	}
	return ExitInternalError
}
