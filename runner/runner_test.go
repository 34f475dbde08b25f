package runner_test

//go:generate mockgen -source=algorithm.go -destination=mocks/mocks.go -package=mocks Algorithm

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/katalvlaran/avgdist/core"
	"github.com/katalvlaran/avgdist/runner"
	"github.com/katalvlaran/avgdist/runner/mocks"
)

// =============================================================================
// Runner Test Suite
// =============================================================================
// Mocked algorithms isolate the orchestration: ordering, failure isolation,
// invariant re-checking, metrics and logging.

type RunnerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	first   *mocks.MockAlgorithm
	second  *mocks.MockAlgorithm
	reg     *prometheus.Registry
	metrics *runner.Metrics
	logs    *bytes.Buffer
	logger  *slog.Logger
	request runner.Request
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func (s *RunnerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.first = mocks.NewMockAlgorithm(s.ctrl)
	s.second = mocks.NewMockAlgorithm(s.ctrl)
	s.first.EXPECT().Name().Return("first").AnyTimes()
	s.second.EXPECT().Name().Return("second").AnyTimes()

	s.reg = prometheus.NewRegistry()
	s.metrics = runner.NewMetrics(s.reg)
	s.logs = &bytes.Buffer{}
	s.logger = slog.New(slog.NewTextHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s.request = runner.Request{Average: decimal.RequireFromString("4.3"), Bounds: core.NewBounds(1, 5)}
}

func (s *RunnerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RunnerSuite) newRunner(opts ...runner.Option) *runner.Runner {
	base := []runner.Option{
		runner.WithAlgorithms(s.first, s.second),
		runner.WithLogger(s.logger),
		runner.WithMetrics(s.metrics),
		runner.WithConcurrency(2),
	}
	r, err := runner.New(append(base, opts...)...)
	s.Require().NoError(err)

	return r
}

// =============================================================================
// Constructor
// =============================================================================

func (s *RunnerSuite) TestNew() {
	s.Run("defaults to the five built-ins", func() {
		r, err := runner.New()
		s.Require().NoError(err)
		s.Equal([]string{
			runner.NameMaximal, runner.NameSubtraction, runner.NameMovingAverage,
			runner.NameRandomAdjustment, runner.NameBacktrack,
		}, r.Algorithms())
	})

	s.Run("empty algorithm set is rejected", func() {
		_, err := runner.New(runner.WithAlgorithms())
		s.ErrorIs(err, runner.ErrNoAlgorithms)
	})

	s.Run("nil algorithm is rejected", func() {
		_, err := runner.New(runner.WithAlgorithms(s.first, nil))
		s.ErrorIs(err, runner.ErrNilAlgorithm)
	})

	s.Run("duplicate names are rejected", func() {
		dup := mocks.NewMockAlgorithm(s.ctrl)
		dup.EXPECT().Name().Return("first").AnyTimes()
		_, err := runner.New(runner.WithAlgorithms(s.first, dup))
		s.ErrorIs(err, runner.ErrDuplicateAlgorithm)
	})
}

// =============================================================================
// Run
// =============================================================================

func (s *RunnerSuite) TestRun_ReportsInRegistrationOrder() {
	s.first.EXPECT().Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in runner.Input) (core.Sequence, error) {
			s.Equal(int64(10), in.Target.Count)
			s.Equal(int64(43), in.Target.Sum)
			s.NotNil(in.Rand)
			return core.Sequence{5, 5, 5, 4, 4, 4, 4, 4, 4, 4}, nil
		})
	s.second.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(core.Sequence{4, 4, 4, 4, 4, 4, 4, 5, 5, 5}, nil)

	batch, err := s.newRunner().Run(context.Background(), s.request)
	s.Require().NoError(err)
	s.Require().Len(batch.Reports, 2)
	s.Equal("first", batch.Reports[0].Algorithm)
	s.Equal("second", batch.Reports[1].Algorithm)
	s.Zero(batch.Failed())
	s.NoError(batch.Err())
	s.NotEqual([16]byte{}, [16]byte(batch.ID))

	rep, ok := batch.Report("first")
	s.Require().True(ok)
	s.True(rep.OK())
	s.Equal("sum=43, mean=4.3, variance=0.21, min=4, max=5, numElements=10", rep.Summary.String())

	s.Equal(2.0, testutil.ToFloat64(s.metrics.Runs.WithLabelValues("first"))+
		testutil.ToFloat64(s.metrics.Runs.WithLabelValues("second")))
	s.Contains(s.logs.String(), "algorithm=first")
	s.Contains(s.logs.String(), "num_elements=10")
	s.Contains(s.logs.String(), "----")
}

func (s *RunnerSuite) TestRun_FailureDoesNotAbortSiblings() {
	s.first.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(nil, core.Errorf("first", core.ErrNoConvergence, "gave up"))
	s.second.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(core.Sequence{4, 4, 4, 4, 4, 4, 4, 5, 5, 5}, nil)

	batch, err := s.newRunner().Run(context.Background(), s.request)
	s.Require().NoError(err)
	s.Equal(1, batch.Failed())
	s.ErrorIs(batch.Err(), core.ErrNoConvergence)
	s.Nil(batch.Reports[0].Sequence)
	s.True(batch.Reports[1].OK())

	s.Equal(1.0, testutil.ToFloat64(s.metrics.Failures.WithLabelValues("first", runner.ReasonNoConvergence)))
	s.Contains(s.logs.String(), "algorithm failed")
}

func (s *RunnerSuite) TestRun_RejectsBrokenSequence() {
	s.first.EXPECT().Run(gomock.Any(), gomock.Any()).Return(core.Sequence{1, 2, 3}, nil)
	s.second.EXPECT().Run(gomock.Any(), gomock.Any()).Return(core.Sequence{9}, nil)

	batch, err := s.newRunner().Run(context.Background(), s.request)
	s.Require().NoError(err)
	s.Equal(2, batch.Failed())
	s.ErrorIs(batch.Reports[0].Err, core.ErrUnsatisfiable)
	s.ErrorIs(batch.Reports[1].Err, core.ErrUnsatisfiable)
}

func (s *RunnerSuite) TestRun_InvalidRequest() {
	r := s.newRunner()
	_, err := r.Run(context.Background(), runner.Request{
		Average: decimal.RequireFromString("0.5"),
		Bounds:  core.NewBounds(0, 5),
	})
	s.ErrorIs(err, core.ErrInvalidAverage)
	s.Contains(s.logs.String(), "rejected request")
}

func (s *RunnerSuite) TestRun_CanceledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.newRunner().Run(ctx, s.request)
	s.ErrorIs(err, context.Canceled)
}

func (s *RunnerSuite) TestRun_DerivedRandIsReproducible() {
	var draws []int64
	s.first.EXPECT().Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in runner.Input) (core.Sequence, error) {
			draws = append(draws, in.Rand.Int63())
			return core.Sequence{5, 5, 5, 4, 4, 4, 4, 4, 4, 4}, nil
		}).Times(2)
	s.second.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(core.Sequence{5, 5, 5, 4, 4, 4, 4, 4, 4, 4}, nil).Times(2)

	r := s.newRunner(runner.WithSeed(99), runner.WithConcurrency(1))
	_, err := r.Run(context.Background(), s.request)
	s.Require().NoError(err)
	_, err = r.Run(context.Background(), s.request)
	s.Require().NoError(err)
	s.Require().Len(draws, 2)
	s.Equal(draws[0], draws[1])
}

// =============================================================================
// Built-ins end to end
// =============================================================================

func TestBuiltins_EndToEnd(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r, err := runner.New(runner.WithLogger(logger), runner.WithMetrics(runner.NewMetrics(prometheus.NewRegistry())))
	if err != nil {
		t.Fatal(err)
	}

	batch, err := r.Run(context.Background(), runner.Request{
		Average: decimal.RequireFromString("4.3"),
		Bounds:  core.NewBounds(1, 5),
	})
	if err != nil {
		t.Fatal(err)
	}
	if batch.Failed() != 0 {
		t.Fatalf("unexpected failures: %v", batch.Err())
	}
	for _, rep := range batch.Reports {
		if !rep.Sequence.MeanEquals(batch.Target.Average) || !rep.Sequence.Within(batch.Bounds) {
			t.Fatalf("%s: invariant broken: %v", rep.Algorithm, rep.Sequence)
		}
	}
	bt, ok := batch.Report(runner.NameBacktrack)
	if !ok || len(bt.Sequence) != 10 {
		t.Fatalf("backtrack report: %+v", bt)
	}
}

func TestSelect(t *testing.T) {
	algs, err := runner.Select([]string{"Backtrack", " maximal "}, runner.Limits{})
	if err != nil {
		t.Fatal(err)
	}
	if len(algs) != 2 || algs[0].Name() != runner.NameBacktrack || algs[1].Name() != runner.NameMaximal {
		t.Fatalf("unexpected selection")
	}

	all, err := runner.Select(nil, runner.Limits{})
	if err != nil || len(all) != 5 {
		t.Fatalf("empty selection must return all built-ins, got %d (%v)", len(all), err)
	}

	if _, err = runner.Select([]string{"bogus"}, runner.Limits{}); !errors.Is(err, runner.ErrUnknownAlgorithm) {
		t.Fatalf("want ErrUnknownAlgorithm, got %v", err)
	}
}

func TestFailureReason(t *testing.T) {
	cases := map[error]string{
		core.ErrInvalidAverage: runner.ReasonInvalidAverage,
		core.ErrUnsatisfiable:  runner.ReasonUnsatisfiable,
		core.ErrNoConvergence:  runner.ReasonNoConvergence,
		context.Canceled:       runner.ReasonCanceled,
		errors.New("boom"):     runner.ReasonOther,
	}
	for err, want := range cases {
		if got := runner.FailureReason(err); got != want {
			t.Errorf("FailureReason(%v) = %q, want %q", err, got, want)
		}
	}
}
