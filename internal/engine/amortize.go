package engine

import (
	"github.com/shopspring/decimal"

	"github.com/ashalantos/loan-calc-app/internal/domain"
	calcerr "github.com/ashalantos/loan-calc-app/pkg/errors"
)

// moneyPlaces is the currency precision of schedule rows.
const moneyPlaces = 2

// Simulate walks the loan month by month and returns the repayment rows.
// It produces at most termMonths rows; fewer when the balance clears early.
// The remaining balance is non-increasing across rows and exactly zero on
// the last row: the final scheduled row absorbs the remaining balance so no
// rounding dust survives.
//
// A payment that does not exceed the first month's interest at a positive
// rate never converges and is rejected up front.
func Simulate(principal, monthlyPayment, monthlyRate decimal.Decimal, termMonths int) ([]domain.AmortizationRow, error) {
	if !principal.IsPositive() {
		return nil, calcerr.WrapInvalidPrincipal(principal)
	}
	if monthlyRate.IsNegative() {
		return nil, calcerr.WrapInvalidRate(monthlyRate)
	}
	if termMonths <= 0 {
		return nil, calcerr.WrapInvalidTerm(termMonths)
	}
	if termMonths > MaxTermMonths {
		return nil, calcerr.WrapNumericOverflow(termMonths)
	}
	if !monthlyPayment.IsPositive() {
		return nil, calcerr.WrapInvalidPayment(monthlyPayment)
	}
	if monthlyRate.IsPositive() {
		firstInterest := principal.Mul(monthlyRate)
		if monthlyPayment.LessThanOrEqual(firstInterest) {
			return nil, calcerr.WrapNonConvergent(monthlyPayment, firstInterest)
		}
	}

	rows := make([]domain.AmortizationRow, 0, termMonths)
	balance := principal
	cumulativeInterest := decimal.Zero

	for period := 1; period <= termMonths && balance.IsPositive(); period++ {
		interest := balance.Mul(monthlyRate).Round(moneyPlaces)

		principalPart := monthlyPayment.Sub(interest)
		payment := monthlyPayment
		if period == termMonths || principalPart.GreaterThan(balance) {
			principalPart = balance
			payment = interest.Add(principalPart)
		}

		balance = balance.Sub(principalPart)
		cumulativeInterest = cumulativeInterest.Add(interest)

		rows = append(rows, domain.AmortizationRow{
			Period:             period,
			Payment:            payment,
			Interest:           interest,
			Principal:          principalPart,
			RemainingBalance:   balance,
			CumulativeInterest: cumulativeInterest,
		})
	}

	return rows, nil
}
