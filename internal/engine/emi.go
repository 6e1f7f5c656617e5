package engine

import (
	"github.com/shopspring/decimal"

	calcerr "github.com/ashalantos/loan-calc-app/pkg/errors"
	"github.com/ashalantos/loan-calc-app/pkg/utils"
)

// SolveEMI computes the fixed monthly payment that fully amortizes
// principal over termMonths at the given monthly rate.
//
// Zero rate is the straight-line branch: principal / termMonths.
// Otherwise the standard annuity formula P*r*(1+r)^n / ((1+r)^n - 1).
func SolveEMI(principal, monthlyRate decimal.Decimal, termMonths int) (decimal.Decimal, error) {
	if !principal.IsPositive() {
		return decimal.Zero, calcerr.WrapInvalidPrincipal(principal)
	}
	if monthlyRate.IsNegative() {
		return decimal.Zero, calcerr.WrapInvalidRate(monthlyRate)
	}
	if termMonths <= 0 {
		return decimal.Zero, calcerr.WrapInvalidTerm(termMonths)
	}
	if termMonths > MaxTermMonths {
		return decimal.Zero, calcerr.WrapNumericOverflow(termMonths)
	}

	months := decimal.NewFromInt(int64(termMonths))
	if monthlyRate.IsZero() {
		return principal.Div(months), nil
	}

	factor := utils.CompoundFactor(monthlyRate, termMonths)
	denominator := factor.Sub(one)
	if !denominator.IsPositive() {
		// rate so small that compounding rounds away entirely
		return principal.Div(months), nil
	}

	return principal.Mul(monthlyRate).Mul(factor).Div(denominator), nil
}

// ComputeEMI is SolveEMI with the rate given as an annual percentage.
func ComputeEMI(principal, annualRatePercent decimal.Decimal, termMonths int) (decimal.Decimal, error) {
	return SolveEMI(principal, MonthlyRate(annualRatePercent), termMonths)
}
