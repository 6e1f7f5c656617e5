package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanTerms holds the inputs of a single loan calculation. Values are
// immutable once constructed.
type LoanTerms struct {
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	TermMonths        int             `json:"term_months"`
}

// PaymentPlan is the priced counterpart of LoanTerms.
type PaymentPlan struct {
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TermMonths     int             `json:"term_months"`
	TotalPayment   decimal.Decimal `json:"total_payment"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
}

// EMIResult is returned by the service for a single EMI calculation. The ID
// lets a caller hand a specific result to a downstream report or comparison
// instead of relying on ambient "last result" state.
type EMIResult struct {
	ID    uuid.UUID   `json:"id"`
	Terms LoanTerms   `json:"terms"`
	Plan  PaymentPlan `json:"plan"`
}

// ComparisonCandidate is one priced duration in a comparison run.
type ComparisonCandidate struct {
	TermMonths int             `json:"term_months"`
	Plan       PaymentPlan     `json:"plan"`
	TotalCost  decimal.Decimal `json:"total_cost"`
}

// DurationComparison holds candidates in ascending duration order plus the
// one with the smallest total interest.
type DurationComparison struct {
	ID         uuid.UUID             `json:"id"`
	Candidates []ComparisonCandidate `json:"candidates"`
	Best       ComparisonCandidate   `json:"best"`
}

// DTOs for requests

type EMIRequest struct {
	Principal         decimal.Decimal `json:"principal" validate:"gt=0"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent" validate:"gte=0,lte=1000"`
	Years             int             `json:"years" validate:"gte=0"`
	Months            int             `json:"months" validate:"gte=0"`
}

type PayoffRequest struct {
	Principal         decimal.Decimal `json:"principal" validate:"gt=0"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent" validate:"gte=0,lte=1000"`
	MonthlyPayment    decimal.Decimal `json:"monthly_payment" validate:"gt=0"`
	CapMonths         int             `json:"cap_months" validate:"gte=0"`
}

type TermComparisonRequest struct {
	Principal         decimal.Decimal `json:"principal" validate:"gt=0"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent" validate:"gte=0,lte=1000"`
	Years             int             `json:"years" validate:"gte=0"`
	Months            int             `json:"months" validate:"gte=0"`
	CandidateTerms    []int           `json:"candidate_terms" validate:"omitempty,dive,gt=0"`
}
