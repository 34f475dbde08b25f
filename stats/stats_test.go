package stats_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/avgdist/core"
	"github.com/katalvlaran/avgdist/stats"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// TestDivFloor checks exact, truncated and negative quotients.
func TestDivFloor(t *testing.T) {
	assert.True(t, stats.DivFloor(dec("43"), dec("10"), 10).Equal(dec("4.3")))
	assert.True(t, stats.DivFloor(dec("10"), dec("3"), 2).Equal(dec("3.33")))
	assert.True(t, stats.DivFloor(dec("-10"), dec("3"), 2).Equal(dec("-3.34")), "floor goes toward -inf")
	assert.True(t, stats.DivFloor(dec("5"), dec("4"), 2).Equal(dec("1.25")))
	assert.True(t, stats.DivFloor(dec("-9"), dec("3"), 2).Equal(dec("-3")))
}

// TestEmptyInput verifies the zero/empty policy.
func TestEmptyInput(t *testing.T) {
	assert.True(t, stats.Sum(nil).IsZero())
	assert.True(t, stats.Mean(nil, stats.DefaultPrecision).IsZero())
	assert.True(t, stats.Variance(nil, stats.DefaultPrecision).IsZero())

	_, err := stats.Min(nil)
	assert.ErrorIs(t, err, stats.ErrEmptyInput)
	_, err = stats.Max(nil)
	assert.ErrorIs(t, err, stats.ErrEmptyInput)
	_, err = stats.Summarize(nil, stats.DefaultPrecision)
	assert.ErrorIs(t, err, stats.ErrEmptyInput)
}

// TestSummarize_FourPointThree summarizes the canonical 4.3 solution.
func TestSummarize_FourPointThree(t *testing.T) {
	seq := core.Sequence{5, 5, 5, 4, 4, 4, 4, 4, 4, 4}

	sum, err := stats.OfSequence(seq, stats.DefaultPrecision)
	require.NoError(t, err)
	assert.Equal(t, 10, sum.Count)
	assert.True(t, sum.Sum.Equal(dec("43")))
	assert.True(t, sum.Mean.Equal(dec("4.3")))
	assert.True(t, sum.Variance.Equal(dec("0.21")), "got %s", sum.Variance)
	assert.True(t, sum.Min.Equal(dec("4")))
	assert.True(t, sum.Max.Equal(dec("5")))
	assert.Equal(t, "sum=43, mean=4.3, variance=0.21, min=4, max=5, numElements=10", sum.String())
}

// TestMean_Precision shows the floor policy on a repeating mean.
func TestMean_Precision(t *testing.T) {
	values := core.Sequence{1, 1, 2}.Decimals()
	assert.True(t, stats.Mean(values, 4).Equal(dec("1.3333")))
	assert.True(t, stats.Mean(values, 0).Equal(dec("1")))
	// deviations from 1.3333: 0.3333² ×2 + 0.6667² = 0.22217778 + 0.44448889
	assert.True(t, stats.Variance(values, 4).Equal(dec("0.2222")), "got %s", stats.Variance(values, 4))
}

// TestConstantSequence has zero variance.
func TestConstantSequence(t *testing.T) {
	values := core.Sequence{5, 5, 5, 5}.Decimals()
	assert.True(t, stats.Variance(values, stats.DefaultPrecision).IsZero())
	lo, err := stats.Min(values)
	require.NoError(t, err)
	hi, err := stats.Max(values)
	require.NoError(t, err)
	assert.True(t, lo.Equal(hi))
}

// TestSummary_LogValue renders the summary as a slog group.
func TestSummary_LogValue(t *testing.T) {
	s, err := stats.OfSequence(core.Sequence{5, 5, 5, 4, 4, 4, 4, 4, 4, 4}, stats.DefaultPrecision)
	require.NoError(t, err)

	var buf bytes.Buffer
	slog.New(slog.NewTextHandler(&buf, nil)).Info("run", "summary", s)
	out := buf.String()
	assert.Contains(t, out, "summary.sum=43")
	assert.Contains(t, out, "summary.mean=4.3")
	assert.Contains(t, out, "summary.num_elements=10")
}
