package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashalantos/loan-calc-app/internal/config"
	"github.com/ashalantos/loan-calc-app/internal/domain"
	calcerr "github.com/ashalantos/loan-calc-app/pkg/errors"
)

func newTestService() *CalculatorService {
	return NewCalculatorService(config.Default())
}

func TestCalculateEMI_Success(t *testing.T) {
	service := newTestService()

	result, err := service.CalculateEMI(domain.EMIRequest{
		Principal:         decimal.NewFromInt(5_000_000),
		AnnualRatePercent: decimal.NewFromFloat(7.5),
		Years:             20,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, result.ID)
	assert.Equal(t, 240, result.Terms.TermMonths)
	assert.Equal(t, 240, result.Plan.TermMonths)

	payment, _ := result.Plan.MonthlyPayment.Float64()
	assert.InDelta(t, 40280, payment, 10)

	// payment is rounded to currency places and the totals derive from it
	assert.True(t, result.Plan.MonthlyPayment.Equal(result.Plan.MonthlyPayment.Round(2)))
	expectedTotal := result.Plan.MonthlyPayment.Mul(decimal.NewFromInt(240))
	assert.True(t, result.Plan.TotalPayment.Equal(expectedTotal))
	assert.True(t, result.Plan.TotalInterest.Equal(expectedTotal.Sub(decimal.NewFromInt(5_000_000))))
}

func TestCalculateEMI_ValidationFailures(t *testing.T) {
	service := newTestService()

	tests := []struct {
		name    string
		request domain.EMIRequest
		wantErr error
	}{
		{
			name: "non-positive principal",
			request: domain.EMIRequest{
				Principal:         decimal.Zero,
				AnnualRatePercent: decimal.NewFromFloat(7.5),
				Years:             20,
			},
			wantErr: calcerr.ErrInvalidRequest,
		},
		{
			name: "negative rate",
			request: domain.EMIRequest{
				Principal:         decimal.NewFromInt(1000),
				AnnualRatePercent: decimal.NewFromInt(-1),
				Years:             20,
			},
			wantErr: calcerr.ErrInvalidRequest,
		},
		{
			name: "rate beyond sanity bound",
			request: domain.EMIRequest{
				Principal:         decimal.NewFromInt(1000),
				AnnualRatePercent: decimal.NewFromInt(1001),
				Years:             20,
			},
			wantErr: calcerr.ErrInvalidRequest,
		},
		{
			name: "zero duration",
			request: domain.EMIRequest{
				Principal:         decimal.NewFromInt(1000),
				AnnualRatePercent: decimal.NewFromFloat(7.5),
			},
			wantErr: calcerr.ErrInvalidTerm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CalculateEMI(tt.request)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
		})
	}
}

func TestCalculateEMI_TermAboveConfiguredMax(t *testing.T) {
	cfg := config.Default()
	cfg.Engine.MaxTermMonths = 360
	service := NewCalculatorService(cfg)

	_, err := service.CalculateEMI(domain.EMIRequest{
		Principal:         decimal.NewFromInt(1_000_000),
		AnnualRatePercent: decimal.NewFromFloat(7.5),
		Years:             40,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, calcerr.ErrNumericOverflow))
}

func TestGenerateSchedule_TotalsAgreeWithRows(t *testing.T) {
	service := newTestService()

	schedule, err := service.GenerateSchedule(domain.EMIRequest{
		Principal:         decimal.NewFromInt(4_000_000),
		AnnualRatePercent: decimal.NewFromInt(8),
		Years:             15,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, schedule.ID)
	require.Len(t, schedule.Rows, 180)

	last := schedule.Rows[len(schedule.Rows)-1]
	assert.True(t, last.RemainingBalance.IsZero())
	assert.True(t, schedule.Plan.TotalInterest.Equal(last.CumulativeInterest))
	assert.True(t, schedule.Plan.TotalPayment.Equal(
		schedule.Terms.Principal.Add(schedule.Plan.TotalInterest)))
}

func TestEstimatePayoff_UsesConfiguredCap(t *testing.T) {
	cfg := config.Default()
	cfg.Engine.PayoffCapMonths = 120
	service := NewCalculatorService(cfg)

	// payment barely above monthly interest: walk hits the cap
	estimate, err := service.EstimatePayoff(domain.PayoffRequest{
		Principal:         decimal.NewFromInt(1_000_000),
		AnnualRatePercent: decimal.NewFromInt(12),
		MonthlyPayment:    decimal.NewFromInt(10_001),
	})
	require.NoError(t, err)
	assert.True(t, estimate.Capped)
	assert.Equal(t, 120, estimate.Months)

	// an explicit cap on the request wins over the configured one
	estimate, err = service.EstimatePayoff(domain.PayoffRequest{
		Principal:         decimal.NewFromInt(1_000_000),
		AnnualRatePercent: decimal.NewFromInt(12),
		MonthlyPayment:    decimal.NewFromInt(10_001),
		CapMonths:         60,
	})
	require.NoError(t, err)
	assert.Equal(t, 60, estimate.Months)
}

func TestEstimatePayoff_Unbounded(t *testing.T) {
	service := newTestService()

	estimate, err := service.EstimatePayoff(domain.PayoffRequest{
		Principal:         decimal.NewFromInt(3_000_000),
		AnnualRatePercent: decimal.NewFromFloat(7.5),
		MonthlyPayment:    decimal.NewFromInt(18_000),
	})
	require.NoError(t, err)
	assert.True(t, estimate.Unbounded)
	assert.Equal(t, 0, estimate.Months)
}

func TestCompareTerms_DefaultYearlyCandidates(t *testing.T) {
	service := newTestService()

	comparison, err := service.CompareTerms(domain.TermComparisonRequest{
		Principal:         decimal.NewFromInt(3_000_000),
		AnnualRatePercent: decimal.NewFromFloat(7.5),
		Years:             20,
	})
	require.NoError(t, err)

	// 12, 24, ..., 240
	require.Len(t, comparison.Candidates, 20)
	assert.Equal(t, 12, comparison.Candidates[0].TermMonths)
	assert.Equal(t, 240, comparison.Candidates[19].TermMonths)
	assert.Equal(t, 12, comparison.Best.TermMonths)
	assert.NotEqual(t, uuid.Nil, comparison.ID)
}

func TestCompareTerms_FiltersCandidatesAboveTerm(t *testing.T) {
	service := newTestService()

	comparison, err := service.CompareTerms(domain.TermComparisonRequest{
		Principal:         decimal.NewFromInt(3_000_000),
		AnnualRatePercent: decimal.NewFromFloat(7.5),
		Years:             10,
		CandidateTerms:    []int{60, 120, 180, 240},
	})
	require.NoError(t, err)

	require.Len(t, comparison.Candidates, 2)
	assert.Equal(t, 60, comparison.Candidates[0].TermMonths)
	assert.Equal(t, 120, comparison.Candidates[1].TermMonths)

	// nothing at or below the term leaves nothing to compare
	_, err = service.CompareTerms(domain.TermComparisonRequest{
		Principal:         decimal.NewFromInt(3_000_000),
		AnnualRatePercent: decimal.NewFromFloat(7.5),
		Years:             2,
		CandidateTerms:    []int{120, 180},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, calcerr.ErrNoCandidates))
}

func TestProjectInvestment_BlendsLumpSumAndRecurring(t *testing.T) {
	service := newTestService()

	projection, err := service.ProjectInvestment(domain.SIPRequest{
		MonthlyContribution: decimal.NewFromInt(10_000),
		LumpSum:             decimal.NewFromInt(500_000),
		AnnualRatePercent:   decimal.NewFromInt(12),
		Years:               10,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, projection.ID)
	assert.True(t, projection.TotalInvested.Equal(decimal.NewFromInt(1_700_000)))
	assert.True(t, projection.FutureValue.GreaterThan(projection.TotalInvested))

	fv, _ := projection.Recurring.FutureValue.Float64()
	assert.InDelta(t, 2_323_391, fv, 500)
}

func TestProjectInvestment_RequiresAnInvestment(t *testing.T) {
	service := newTestService()

	_, err := service.ProjectInvestment(domain.SIPRequest{
		AnnualRatePercent: decimal.NewFromInt(12),
		Years:             10,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, calcerr.ErrInvalidContribution))
}

func TestCompareInvestmentHorizons(t *testing.T) {
	service := newTestService()

	comparison, err := service.CompareInvestmentHorizons(domain.HorizonComparisonRequest{
		MonthlyContribution: decimal.NewFromInt(5000),
		AnnualRatePercent:   decimal.NewFromInt(12),
		MaxMonths:           60,
	})
	require.NoError(t, err)

	require.Len(t, comparison.Candidates, 5)
	assert.Equal(t, 60, comparison.Best.Months)

	// explicit horizons skip the yearly expansion
	comparison, err = service.CompareInvestmentHorizons(domain.HorizonComparisonRequest{
		MonthlyContribution: decimal.NewFromInt(5000),
		AnnualRatePercent:   decimal.NewFromInt(12),
		HorizonsMonths:      []int{18, 6},
	})
	require.NoError(t, err)
	require.Len(t, comparison.Candidates, 2)
	assert.Equal(t, 6, comparison.Candidates[0].Months)
	assert.Equal(t, 18, comparison.Best.Months)

	// no horizons at all
	_, err = service.CompareInvestmentHorizons(domain.HorizonComparisonRequest{
		MonthlyContribution: decimal.NewFromInt(5000),
		AnnualRatePercent:   decimal.NewFromInt(12),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, calcerr.ErrNoCandidates))
}
