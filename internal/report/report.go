// Package report converts the structured calculation records into display
// text. It is the only place that knows about currency symbols and table
// layout; the engine and service stay presentation-free.
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/ashalantos/loan-calc-app/internal/domain"
)

type Renderer struct {
	currency string
	places   int32
}

func NewRenderer(currency string, places int32) *Renderer {
	return &Renderer{
		currency: currency,
		places:   places,
	}
}

// FormatMoney renders an amount with the configured currency symbol and
// thousands grouping.
func (r *Renderer) FormatMoney(amount decimal.Decimal) string {
	rounded := amount.Round(r.places)
	text := rounded.StringFixed(r.places)

	negative := strings.HasPrefix(text, "-")
	text = strings.TrimPrefix(text, "-")

	whole := text
	fraction := ""
	if idx := strings.IndexByte(text, '.'); idx >= 0 {
		whole, fraction = text[:idx], text[idx:]
	}

	grouped := groupThousands(whole)
	if negative {
		return "-" + r.currency + grouped + fraction
	}
	return r.currency + grouped + fraction
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// LoanSummary renders a single EMI result.
func (r *Renderer) LoanSummary(result domain.EMIResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Loan of %s at %s%% for %d months\n",
		r.FormatMoney(result.Terms.Principal),
		result.Terms.AnnualRatePercent,
		result.Terms.TermMonths)
	fmt.Fprintf(&b, "  Monthly payment: %s\n", r.FormatMoney(result.Plan.MonthlyPayment))
	fmt.Fprintf(&b, "  Total payment:   %s\n", r.FormatMoney(result.Plan.TotalPayment))
	fmt.Fprintf(&b, "  Total interest:  %s\n", r.FormatMoney(result.Plan.TotalInterest))

	return b.String()
}

// AmortizationTable renders the full repayment schedule.
func (r *Renderer) AmortizationTable(schedule domain.AmortizationSchedule) string {
	var b strings.Builder

	b.WriteString(r.LoanSummary(domain.EMIResult{
		ID:    schedule.ID,
		Terms: schedule.Terms,
		Plan:  schedule.Plan,
	}))
	b.WriteByte('\n')

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Month\tPayment\tInterest\tPrincipal\tBalance\tCum. Interest\t")
	for _, row := range schedule.Rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t\n",
			row.Period,
			r.FormatMoney(row.Payment),
			r.FormatMoney(row.Interest),
			r.FormatMoney(row.Principal),
			r.FormatMoney(row.RemainingBalance),
			r.FormatMoney(row.CumulativeInterest))
	}
	w.Flush()

	return b.String()
}

// PayoffSummary renders a payoff estimate, including the unbounded and
// capped outcomes.
func (r *Renderer) PayoffSummary(estimate domain.PayoffEstimate) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Balance %s at %s%%, paying %s per month\n",
		r.FormatMoney(estimate.Principal),
		estimate.AnnualRatePercent,
		r.FormatMoney(estimate.MonthlyPayment))

	switch {
	case estimate.Unbounded:
		b.WriteString("  The payment does not cover the monthly interest; the balance never declines.\n")
	case estimate.Capped:
		fmt.Fprintf(&b, "  Not cleared within %d months (%s interest accrued so far).\n",
			estimate.Months, r.FormatMoney(estimate.TotalInterest))
	default:
		years, months := estimate.Months/12, estimate.Months%12
		fmt.Fprintf(&b, "  Paid off in %d months (%dy %dm), %s total interest.\n",
			estimate.Months, years, months, r.FormatMoney(estimate.TotalInterest))
	}

	return b.String()
}

// ComparisonTable renders the duration comparison; the best option carries
// a marker.
func (r *Renderer) ComparisonTable(comparison domain.DurationComparison) string {
	var b strings.Builder

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Months\tMonthly Payment\tTotal Payment\tTotal Interest\t\t")
	for _, candidate := range comparison.Candidates {
		marker := ""
		if candidate.TermMonths == comparison.Best.TermMonths {
			marker = "best"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t\n",
			candidate.TermMonths,
			r.FormatMoney(candidate.Plan.MonthlyPayment),
			r.FormatMoney(candidate.Plan.TotalPayment),
			r.FormatMoney(candidate.Plan.TotalInterest),
			marker)
	}
	w.Flush()

	fmt.Fprintf(&b, "\nLowest total interest: %d months at %s per month.\n",
		comparison.Best.TermMonths,
		r.FormatMoney(comparison.Best.Plan.MonthlyPayment))

	return b.String()
}

// ProjectionSummary renders a blended investment projection.
func (r *Renderer) ProjectionSummary(projection domain.BlendedProjection) string {
	var b strings.Builder

	if projection.Recurring.MonthlyContribution.IsPositive() {
		fmt.Fprintf(&b, "Investing %s per month at %s%% for %d months\n",
			r.FormatMoney(projection.Recurring.MonthlyContribution),
			projection.Recurring.AnnualRatePercent,
			projection.Recurring.Months)
	}
	if projection.LumpSum.IsPositive() {
		fmt.Fprintf(&b, "Lump sum of %s grows to %s\n",
			r.FormatMoney(projection.LumpSum),
			r.FormatMoney(projection.LumpSumValue))
	}

	fmt.Fprintf(&b, "  Total invested: %s\n", r.FormatMoney(projection.TotalInvested))
	fmt.Fprintf(&b, "  Future value:   %s\n", r.FormatMoney(projection.FutureValue))
	fmt.Fprintf(&b, "  Gain:           %s\n", r.FormatMoney(projection.Gain))

	return b.String()
}

// HorizonTable renders the investment-horizon comparison.
func (r *Renderer) HorizonTable(comparison domain.HorizonComparison) string {
	var b strings.Builder

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Months\tContributed\tFuture Value\tGain\t\t")
	for _, candidate := range comparison.Candidates {
		marker := ""
		if candidate.Months == comparison.Best.Months {
			marker = "best"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t\n",
			candidate.Months,
			r.FormatMoney(candidate.Projection.TotalContributed),
			r.FormatMoney(candidate.Projection.FutureValue),
			r.FormatMoney(candidate.Projection.Gain),
			marker)
	}
	w.Flush()

	fmt.Fprintf(&b, "\nLargest gain: %d months, %s.\n",
		comparison.Best.Months,
		r.FormatMoney(comparison.Best.Projection.Gain))

	return b.String()
}
