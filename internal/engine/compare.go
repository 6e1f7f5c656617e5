package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ashalantos/loan-calc-app/internal/domain"
	calcerr "github.com/ashalantos/loan-calc-app/pkg/errors"
)

// CompareDurations prices the loan at each candidate duration and selects
// the one with the smallest total interest. Candidates are evaluated in
// ascending duration order and the best slot only moves on a strict
// improvement, so a true tie keeps the shorter duration. The winner is
// computed, not assumed: the shorter-is-cheaper rule holds for standard
// amortization but the engine stays correct under arbitrary candidate sets.
func CompareDurations(principal, annualRatePercent decimal.Decimal, durations []int) (domain.DurationComparison, error) {
	if len(durations) == 0 {
		return domain.DurationComparison{}, calcerr.WrapNoCandidates()
	}

	sorted := make([]int, len(durations))
	copy(sorted, durations)
	sort.Ints(sorted)

	candidates := make([]domain.ComparisonCandidate, 0, len(sorted))
	best := -1

	for _, term := range sorted {
		payment, err := ComputeEMI(principal, annualRatePercent, term)
		if err != nil {
			return domain.DurationComparison{}, err
		}

		totalPayment := payment.Mul(decimal.NewFromInt(int64(term)))
		candidate := domain.ComparisonCandidate{
			TermMonths: term,
			Plan: domain.PaymentPlan{
				MonthlyPayment: payment,
				TermMonths:     term,
				TotalPayment:   totalPayment,
				TotalInterest:  totalPayment.Sub(principal),
			},
			TotalCost: totalPayment,
		}
		candidates = append(candidates, candidate)

		if best < 0 || candidate.Plan.TotalInterest.LessThan(candidates[best].Plan.TotalInterest) {
			best = len(candidates) - 1
		}
	}

	return domain.DurationComparison{
		Candidates: candidates,
		Best:       candidates[best],
	}, nil
}

// CompareHorizons is the investment-side counterpart: it projects a fixed
// recurring contribution over each candidate horizon and selects the one
// with the largest gain. Candidates are evaluated in ascending order;
// strict improvement only, so ties keep the shorter horizon.
func CompareHorizons(monthlyContribution, annualRatePercent decimal.Decimal, horizons []int) (domain.HorizonComparison, error) {
	if len(horizons) == 0 {
		return domain.HorizonComparison{}, calcerr.WrapNoCandidates()
	}

	sorted := make([]int, len(horizons))
	copy(sorted, horizons)
	sort.Ints(sorted)

	candidates := make([]domain.HorizonCandidate, 0, len(sorted))
	best := -1

	for _, months := range sorted {
		projection, err := ProjectSIP(monthlyContribution, annualRatePercent, months)
		if err != nil {
			return domain.HorizonComparison{}, err
		}

		candidates = append(candidates, domain.HorizonCandidate{
			Months:     months,
			Projection: projection,
		})

		if best < 0 || projection.Gain.GreaterThan(candidates[best].Projection.Gain) {
			best = len(candidates) - 1
		}
	}

	return domain.HorizonComparison{
		Candidates: candidates,
		Best:       candidates[best],
	}, nil
}
