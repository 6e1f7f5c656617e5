package engine

import (
	"github.com/shopspring/decimal"

	calcerr "github.com/ashalantos/loan-calc-app/pkg/errors"
)

// DefaultPayoffCap bounds the payoff walk when the caller does not supply a
// horizon of its own. 600 months = 50 years. The cap is a safety bound, not
// a mathematical limit; callers pick reject-vs-truncate policy themselves.
const DefaultPayoffCap = 600

// PayoffResult is the outcome of a payoff-horizon computation.
type PayoffResult struct {
	// Months until the balance clears; the cap value when Capped.
	Months int
	// Unbounded is set when the payment never reduces principal. It is a
	// valid answer to the question asked, not an error.
	Unbounded bool
	// Capped is set when the walk reached the cap with balance remaining.
	Capped bool
	// TotalInterest accrued over the counted months.
	TotalInterest decimal.Decimal
}

// MonthsToPayoff computes how many months a fixed payment needs to retire
// the principal at the given monthly rate. capMonths <= 0 selects
// DefaultPayoffCap.
func MonthsToPayoff(principal, monthlyRate, monthlyPayment decimal.Decimal, capMonths int) (PayoffResult, error) {
	if !principal.IsPositive() {
		return PayoffResult{}, calcerr.WrapInvalidPrincipal(principal)
	}
	if monthlyRate.IsNegative() {
		return PayoffResult{}, calcerr.WrapInvalidRate(monthlyRate)
	}
	if !monthlyPayment.IsPositive() {
		return PayoffResult{}, calcerr.WrapInvalidPayment(monthlyPayment)
	}
	if capMonths <= 0 {
		capMonths = DefaultPayoffCap
	}

	if monthlyRate.IsZero() {
		months := int(principal.Div(monthlyPayment).Ceil().IntPart())
		if months > capMonths {
			return PayoffResult{Months: capMonths, Capped: true, TotalInterest: decimal.Zero}, nil
		}
		return PayoffResult{Months: months, TotalInterest: decimal.Zero}, nil
	}

	if monthlyPayment.LessThanOrEqual(principal.Mul(monthlyRate)) {
		return PayoffResult{Unbounded: true, TotalInterest: decimal.Zero}, nil
	}

	balance := principal
	totalInterest := decimal.Zero
	months := 0

	for months < capMonths && balance.GreaterThan(balanceTolerance) {
		interest := balance.Mul(monthlyRate)
		totalInterest = totalInterest.Add(interest)
		balance = balance.Add(interest).Sub(monthlyPayment)
		months++
	}

	return PayoffResult{
		Months:        months,
		Capped:        balance.GreaterThan(balanceTolerance),
		TotalInterest: totalInterest,
	}, nil
}
