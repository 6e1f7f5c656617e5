package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AmortizationRow is one month of the repayment schedule. Period is 1-based.
// Interest plus Principal equals Payment on every row except possibly the
// last, where Principal is clamped to the remaining balance.
type AmortizationRow struct {
	Period             int             `json:"period"`
	Payment            decimal.Decimal `json:"payment"`
	Interest           decimal.Decimal `json:"interest"`
	Principal          decimal.Decimal `json:"principal"`
	RemainingBalance   decimal.Decimal `json:"remaining_balance"`
	CumulativeInterest decimal.Decimal `json:"cumulative_interest"`
}

// AmortizationSchedule is a full month-by-month repayment trajectory.
type AmortizationSchedule struct {
	ID    uuid.UUID         `json:"id"`
	Terms LoanTerms         `json:"terms"`
	Plan  PaymentPlan       `json:"plan"`
	Rows  []AmortizationRow `json:"rows"`
}

// PayoffEstimate answers "how long until this balance clears at this
// payment". Unbounded means the payment never reduces principal; Capped
// means the walk stopped at the configured horizon before the balance
// cleared, and Months holds the cap.
type PayoffEstimate struct {
	ID                uuid.UUID       `json:"id"`
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	MonthlyPayment    decimal.Decimal `json:"monthly_payment"`
	Months            int             `json:"months"`
	Unbounded         bool            `json:"unbounded"`
	Capped            bool            `json:"capped"`
	TotalInterest     decimal.Decimal `json:"total_interest"`
}
