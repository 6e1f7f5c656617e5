package service

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ashalantos/loan-calc-app/internal/config"
	"github.com/ashalantos/loan-calc-app/internal/domain"
	"github.com/ashalantos/loan-calc-app/internal/engine"
	calcerr "github.com/ashalantos/loan-calc-app/pkg/errors"
	"github.com/ashalantos/loan-calc-app/pkg/utils"
)

// CalculatorService validates requests, applies the configured caps and
// rounding, and orchestrates the engine. Every result is a fresh immutable
// record stamped with an ID; nothing is cached between calls.
type CalculatorService struct {
	cfg      *config.Config
	validate *validator.Validate
}

func NewCalculatorService(cfg *config.Config) *CalculatorService {
	v := validator.New()
	v.RegisterCustomTypeFunc(decimalAsFloat, decimal.Decimal{})

	return &CalculatorService{
		cfg:      cfg,
		validate: v,
	}
}

// decimalAsFloat lets the numeric validation tags (gt, gte, lte) apply to
// decimal.Decimal fields.
func decimalAsFloat(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// CalculateEMI prices a loan: fixed monthly payment, total payment and
// total interest over the term.
func (s *CalculatorService) CalculateEMI(request domain.EMIRequest) (domain.EMIResult, error) {
	if err := s.validate.Struct(request); err != nil {
		return domain.EMIResult{}, calcerr.WrapInvalidRequest(err)
	}

	termMonths, err := s.resolveTerm(request.Years, request.Months)
	if err != nil {
		return domain.EMIResult{}, err
	}

	payment, err := engine.ComputeEMI(request.Principal, request.AnnualRatePercent, termMonths)
	if err != nil {
		return domain.EMIResult{}, err
	}
	payment = utils.RoundMoney(payment, s.cfg.Engine.MoneyPlaces)

	totalPayment := payment.Mul(decimal.NewFromInt(int64(termMonths)))

	return domain.EMIResult{
		ID: uuid.New(),
		Terms: domain.LoanTerms{
			Principal:         request.Principal,
			AnnualRatePercent: request.AnnualRatePercent,
			TermMonths:        termMonths,
		},
		Plan: domain.PaymentPlan{
			MonthlyPayment: payment,
			TermMonths:     termMonths,
			TotalPayment:   totalPayment,
			TotalInterest:  totalPayment.Sub(request.Principal),
		},
	}, nil
}

// GenerateSchedule prices the loan and walks the full month-by-month
// repayment trajectory. Plan totals are taken from the walked schedule, so
// they agree with the rows to the cent.
func (s *CalculatorService) GenerateSchedule(request domain.EMIRequest) (domain.AmortizationSchedule, error) {
	if err := s.validate.Struct(request); err != nil {
		return domain.AmortizationSchedule{}, calcerr.WrapInvalidRequest(err)
	}

	termMonths, err := s.resolveTerm(request.Years, request.Months)
	if err != nil {
		return domain.AmortizationSchedule{}, err
	}

	rate := engine.MonthlyRate(request.AnnualRatePercent)
	payment, err := engine.SolveEMI(request.Principal, rate, termMonths)
	if err != nil {
		return domain.AmortizationSchedule{}, err
	}
	payment = utils.RoundMoney(payment, s.cfg.Engine.MoneyPlaces)

	rows, err := engine.Simulate(request.Principal, payment, rate, termMonths)
	if err != nil {
		return domain.AmortizationSchedule{}, err
	}

	totalInterest := rows[len(rows)-1].CumulativeInterest

	return domain.AmortizationSchedule{
		ID: uuid.New(),
		Terms: domain.LoanTerms{
			Principal:         request.Principal,
			AnnualRatePercent: request.AnnualRatePercent,
			TermMonths:        termMonths,
		},
		Plan: domain.PaymentPlan{
			MonthlyPayment: payment,
			TermMonths:     termMonths,
			TotalPayment:   request.Principal.Add(totalInterest),
			TotalInterest:  totalInterest,
		},
		Rows: rows,
	}, nil
}

// EstimatePayoff answers how long a fixed payment needs to retire the
// balance. A zero CapMonths selects the configured cap.
func (s *CalculatorService) EstimatePayoff(request domain.PayoffRequest) (domain.PayoffEstimate, error) {
	if err := s.validate.Struct(request); err != nil {
		return domain.PayoffEstimate{}, calcerr.WrapInvalidRequest(err)
	}

	capMonths := request.CapMonths
	if capMonths == 0 {
		capMonths = s.cfg.Engine.PayoffCapMonths
	}

	rate := engine.MonthlyRate(request.AnnualRatePercent)
	result, err := engine.MonthsToPayoff(request.Principal, rate, request.MonthlyPayment, capMonths)
	if err != nil {
		return domain.PayoffEstimate{}, err
	}

	return domain.PayoffEstimate{
		ID:                uuid.New(),
		Principal:         request.Principal,
		AnnualRatePercent: request.AnnualRatePercent,
		MonthlyPayment:    request.MonthlyPayment,
		Months:            result.Months,
		Unbounded:         result.Unbounded,
		Capped:            result.Capped,
		TotalInterest:     utils.RoundMoney(result.TotalInterest, s.cfg.Engine.MoneyPlaces),
	}, nil
}

// CompareTerms prices the loan at each candidate duration at or below the
// requested term and picks the cheapest by total interest. Without explicit
// candidates, every full year up to the term is considered.
func (s *CalculatorService) CompareTerms(request domain.TermComparisonRequest) (domain.DurationComparison, error) {
	if err := s.validate.Struct(request); err != nil {
		return domain.DurationComparison{}, calcerr.WrapInvalidRequest(err)
	}

	termMonths, err := s.resolveTerm(request.Years, request.Months)
	if err != nil {
		return domain.DurationComparison{}, err
	}

	candidates := request.CandidateTerms
	if len(candidates) == 0 {
		candidates = yearlyCandidates(termMonths)
	} else {
		// candidates beyond the requested term are not alternatives
		kept := make([]int, 0, len(candidates))
		for _, term := range candidates {
			if term <= termMonths {
				kept = append(kept, term)
			}
		}
		candidates = kept
	}
	if len(candidates) == 0 {
		return domain.DurationComparison{}, calcerr.WrapNoCandidates()
	}

	comparison, err := engine.CompareDurations(request.Principal, request.AnnualRatePercent, candidates)
	if err != nil {
		return domain.DurationComparison{}, err
	}

	for i := range comparison.Candidates {
		s.roundPlan(&comparison.Candidates[i].Plan)
		comparison.Candidates[i].TotalCost = utils.RoundMoney(comparison.Candidates[i].TotalCost, s.cfg.Engine.MoneyPlaces)
	}
	s.roundPlan(&comparison.Best.Plan)
	comparison.Best.TotalCost = utils.RoundMoney(comparison.Best.TotalCost, s.cfg.Engine.MoneyPlaces)
	comparison.ID = uuid.New()

	return comparison, nil
}

// ProjectInvestment projects a recurring contribution, an existing lump
// sum, or both, over the requested horizon.
func (s *CalculatorService) ProjectInvestment(request domain.SIPRequest) (domain.BlendedProjection, error) {
	if err := s.validate.Struct(request); err != nil {
		return domain.BlendedProjection{}, calcerr.WrapInvalidRequest(err)
	}

	months, err := s.resolveTerm(request.Years, request.Months)
	if err != nil {
		return domain.BlendedProjection{}, err
	}

	blended, err := engine.BlendExistingAndRecurring(
		request.LumpSum, request.MonthlyContribution, request.AnnualRatePercent, months)
	if err != nil {
		return domain.BlendedProjection{}, err
	}

	places := s.cfg.Engine.MoneyPlaces
	blended.ID = uuid.New()
	blended.LumpSumValue = utils.RoundMoney(blended.LumpSumValue, places)
	blended.FutureValue = utils.RoundMoney(blended.FutureValue, places)
	blended.Gain = utils.RoundMoney(blended.Gain, places)
	blended.Recurring.FutureValue = utils.RoundMoney(blended.Recurring.FutureValue, places)
	blended.Recurring.Gain = utils.RoundMoney(blended.Recurring.Gain, places)

	return blended, nil
}

// CompareInvestmentHorizons projects a fixed contribution across candidate
// horizons and picks the one with the largest gain. Without explicit
// horizons, every full year up to MaxMonths is considered.
func (s *CalculatorService) CompareInvestmentHorizons(request domain.HorizonComparisonRequest) (domain.HorizonComparison, error) {
	if err := s.validate.Struct(request); err != nil {
		return domain.HorizonComparison{}, calcerr.WrapInvalidRequest(err)
	}

	horizons := request.HorizonsMonths
	if len(horizons) == 0 {
		horizons = yearlyCandidates(request.MaxMonths)
	}
	if len(horizons) == 0 {
		return domain.HorizonComparison{}, calcerr.WrapNoCandidates()
	}

	comparison, err := engine.CompareHorizons(request.MonthlyContribution, request.AnnualRatePercent, horizons)
	if err != nil {
		return domain.HorizonComparison{}, err
	}

	places := s.cfg.Engine.MoneyPlaces
	for i := range comparison.Candidates {
		projection := &comparison.Candidates[i].Projection
		projection.FutureValue = utils.RoundMoney(projection.FutureValue, places)
		projection.Gain = utils.RoundMoney(projection.Gain, places)
	}
	comparison.Best.Projection.FutureValue = utils.RoundMoney(comparison.Best.Projection.FutureValue, places)
	comparison.Best.Projection.Gain = utils.RoundMoney(comparison.Best.Projection.Gain, places)
	comparison.ID = uuid.New()

	return comparison, nil
}

func (s *CalculatorService) resolveTerm(years, months int) (int, error) {
	termMonths := engine.TotalMonths(years, months)
	if termMonths <= 0 {
		return 0, calcerr.WrapInvalidTerm(termMonths)
	}
	if termMonths > s.cfg.Engine.MaxTermMonths {
		return 0, calcerr.WrapNumericOverflow(termMonths)
	}
	return termMonths, nil
}

func (s *CalculatorService) roundPlan(plan *domain.PaymentPlan) {
	places := s.cfg.Engine.MoneyPlaces
	plan.MonthlyPayment = utils.RoundMoney(plan.MonthlyPayment, places)
	plan.TotalPayment = utils.RoundMoney(plan.TotalPayment, places)
	plan.TotalInterest = utils.RoundMoney(plan.TotalInterest, places)
}

// yearlyCandidates lists every full-year duration up to and including
// maxMonths, plus maxMonths itself when it is not a whole year.
func yearlyCandidates(maxMonths int) []int {
	if maxMonths < 12 {
		if maxMonths <= 0 {
			return nil
		}
		return []int{maxMonths}
	}

	candidates := make([]int, 0, maxMonths/12+1)
	for months := 12; months <= maxMonths; months += 12 {
		candidates = append(candidates, months)
	}
	if maxMonths%12 != 0 {
		candidates = append(candidates, maxMonths)
	}
	return candidates
}
