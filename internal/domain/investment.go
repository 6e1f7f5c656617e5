package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestmentProjection is the future value of a recurring contribution
// compounded with the annuity-due convention (contribution at period start).
type InvestmentProjection struct {
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	AnnualRatePercent   decimal.Decimal `json:"annual_rate_percent"`
	Months              int             `json:"months"`
	FutureValue         decimal.Decimal `json:"future_value"`
	TotalContributed    decimal.Decimal `json:"total_contributed"`
	Gain                decimal.Decimal `json:"gain"`
}

// BlendedProjection combines a one-time lump sum growing on its own with a
// recurring contribution stream. The two legs compound independently; no
// interaction term is modeled.
type BlendedProjection struct {
	ID            uuid.UUID            `json:"id"`
	LumpSum       decimal.Decimal      `json:"lump_sum"`
	LumpSumValue  decimal.Decimal      `json:"lump_sum_value"`
	Recurring     InvestmentProjection `json:"recurring"`
	FutureValue   decimal.Decimal      `json:"future_value"`
	TotalInvested decimal.Decimal      `json:"total_invested"`
	Gain          decimal.Decimal      `json:"gain"`
}

// HorizonCandidate is one projected investment horizon in a comparison run.
type HorizonCandidate struct {
	Months     int                  `json:"months"`
	Projection InvestmentProjection `json:"projection"`
}

// HorizonComparison holds candidates in ascending horizon order plus the one
// with the largest gain.
type HorizonComparison struct {
	ID         uuid.UUID          `json:"id"`
	Candidates []HorizonCandidate `json:"candidates"`
	Best       HorizonCandidate   `json:"best"`
}

// DTOs for requests

type SIPRequest struct {
	MonthlyContribution decimal.Decimal `json:"monthly_contribution" validate:"gte=0"`
	LumpSum             decimal.Decimal `json:"lump_sum" validate:"gte=0"`
	AnnualRatePercent   decimal.Decimal `json:"annual_rate_percent" validate:"gte=0,lte=1000"`
	Years               int             `json:"years" validate:"gte=0"`
	Months              int             `json:"months" validate:"gte=0"`
}

type HorizonComparisonRequest struct {
	MonthlyContribution decimal.Decimal `json:"monthly_contribution" validate:"gt=0"`
	AnnualRatePercent   decimal.Decimal `json:"annual_rate_percent" validate:"gte=0,lte=1000"`
	HorizonsMonths      []int           `json:"horizons_months" validate:"omitempty,dive,gt=0"`
	MaxMonths           int             `json:"max_months" validate:"gte=0"`
}
