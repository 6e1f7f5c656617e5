// Package engine implements the amortization and financial-projection core:
// EMI solving, month-by-month schedule simulation, payoff horizons, duration
// comparison and SIP projection. All functions are pure; money is
// decimal.Decimal throughout and failures are explicit errors from
// pkg/errors, never sentinel values.
package engine

import (
	"github.com/shopspring/decimal"
)

// MaxTermMonths bounds the compounding exponent in every calculation.
// 600 months = 50 years.
const MaxTermMonths = 600

var (
	one           = decimal.NewFromInt(1)
	monthsPerYear = decimal.NewFromInt(1200)

	// balanceTolerance is the residual below which a balance counts as
	// cleared, absorbing rounding dust from long payment walks.
	balanceTolerance = decimal.NewFromFloat(0.01)
)

// MonthlyRate converts an annual percentage rate into a monthly fraction.
// A zero annual rate yields exactly zero, which downstream code treats as
// the interest-free branch, not an error.
func MonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(monthsPerYear)
}

// TotalMonths normalizes a duration given as whole years plus extra months.
// Months beyond 11 are accepted and simply carried over.
func TotalMonths(years, months int) int {
	return years*12 + months
}
