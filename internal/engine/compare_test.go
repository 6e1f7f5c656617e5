package engine

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	calcerr "github.com/ashalantos/loan-calc-app/pkg/errors"
)

func TestCompareDurations_ShortestTermWinsOnInterest(t *testing.T) {
	principal := decimal.NewFromInt(1_000_000)
	rate := decimal.NewFromInt(9)

	// unordered input comes back sorted ascending
	comparison, err := CompareDurations(principal, rate, []int{180, 60, 120})
	require.NoError(t, err)
	require.Len(t, comparison.Candidates, 3)

	assert.Equal(t, 60, comparison.Candidates[0].TermMonths)
	assert.Equal(t, 120, comparison.Candidates[1].TermMonths)
	assert.Equal(t, 180, comparison.Candidates[2].TermMonths)

	// total interest grows with duration; the best option is computed from
	// the numbers, and lands on the shortest term
	assert.True(t, comparison.Candidates[0].Plan.TotalInterest.
		LessThan(comparison.Candidates[1].Plan.TotalInterest))
	assert.True(t, comparison.Candidates[1].Plan.TotalInterest.
		LessThan(comparison.Candidates[2].Plan.TotalInterest))
	assert.Equal(t, 60, comparison.Best.TermMonths)
}

func TestCompareDurations_PlanFields(t *testing.T) {
	principal := decimal.NewFromInt(5_000_000)
	comparison, err := CompareDurations(principal, decimal.NewFromFloat(7.5), []int{240})
	require.NoError(t, err)
	require.Len(t, comparison.Candidates, 1)

	candidate := comparison.Candidates[0]
	assert.Equal(t, 240, candidate.Plan.TermMonths)
	expectedTotal := candidate.Plan.MonthlyPayment.Mul(decimal.NewFromInt(240))
	assert.True(t, candidate.Plan.TotalPayment.Equal(expectedTotal))
	assert.True(t, candidate.Plan.TotalInterest.Equal(expectedTotal.Sub(principal)))
	assert.True(t, candidate.TotalCost.Equal(expectedTotal))
	assert.Equal(t, 240, comparison.Best.TermMonths)
}

func TestCompareDurations_ZeroRateTieKeepsShortest(t *testing.T) {
	// At zero rate every duration costs exactly zero interest; the
	// first-seen rule must keep the shortest duration.
	comparison, err := CompareDurations(decimal.NewFromInt(120_000), decimal.Zero, []int{24, 12, 36})
	require.NoError(t, err)

	for _, candidate := range comparison.Candidates {
		assert.True(t, candidate.Plan.TotalInterest.IsZero())
	}
	assert.Equal(t, 12, comparison.Best.TermMonths)
}

func TestCompareDurations_Errors(t *testing.T) {
	_, err := CompareDurations(decimal.NewFromInt(1000), decimal.NewFromInt(9), nil)
	assert.True(t, errors.Is(err, calcerr.ErrNoCandidates))

	_, err = CompareDurations(decimal.NewFromInt(1000), decimal.NewFromInt(9), []int{120, 0})
	assert.True(t, errors.Is(err, calcerr.ErrInvalidTerm))

	_, err = CompareDurations(decimal.Zero, decimal.NewFromInt(9), []int{120})
	assert.True(t, errors.Is(err, calcerr.ErrInvalidPrincipal))
}

func TestCompareHorizons_LongestHorizonWinsOnGain(t *testing.T) {
	contribution := decimal.NewFromInt(5000)
	rate := decimal.NewFromInt(12)

	comparison, err := CompareHorizons(contribution, rate, []int{36, 12, 24})
	require.NoError(t, err)
	require.Len(t, comparison.Candidates, 3)

	assert.Equal(t, 12, comparison.Candidates[0].Months)
	assert.Equal(t, 36, comparison.Candidates[2].Months)

	// gain grows with horizon at a positive rate; max total return wins
	assert.True(t, comparison.Candidates[2].Projection.Gain.
		GreaterThan(comparison.Candidates[0].Projection.Gain))
	assert.Equal(t, 36, comparison.Best.Months)
}

func TestCompareHorizons_Errors(t *testing.T) {
	_, err := CompareHorizons(decimal.NewFromInt(5000), decimal.NewFromInt(12), nil)
	assert.True(t, errors.Is(err, calcerr.ErrNoCandidates))

	_, err = CompareHorizons(decimal.Zero, decimal.NewFromInt(12), []int{12})
	assert.True(t, errors.Is(err, calcerr.ErrInvalidContribution))
}
