package errors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Domain errors
var (
	ErrInvalidPrincipal    = errors.New("principal must be positive")
	ErrInvalidRate         = errors.New("interest rate must not be negative")
	ErrInvalidTerm         = errors.New("term must be a positive number of months")
	ErrInvalidPayment      = errors.New("payment must be positive")
	ErrInvalidContribution = errors.New("contribution must be positive")
	ErrNonConvergent       = errors.New("payment does not cover the monthly interest")
	ErrNumericOverflow     = errors.New("inputs exceed the supported compounding range")
	ErrNoCandidates        = errors.New("no candidate durations to compare")
	ErrInvalidRequest      = errors.New("invalid request")
)

// CalcError represents a calculation failure with a stable code
type CalcError struct {
	Code    string
	Message string
	Err     error
}

func (e *CalcError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CalcError) Unwrap() error {
	return e.Err
}

// NewCalcError creates a new calculation error
func NewCalcError(code, message string, err error) *CalcError {
	return &CalcError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeInvalidPrincipal    = "INVALID_PRINCIPAL"
	ErrCodeInvalidRate         = "INVALID_RATE"
	ErrCodeInvalidTerm         = "INVALID_TERM"
	ErrCodeInvalidPayment      = "INVALID_PAYMENT"
	ErrCodeInvalidContribution = "INVALID_CONTRIBUTION"
	ErrCodeNonConvergent       = "NON_CONVERGENT"
	ErrCodeNumericOverflow     = "NUMERIC_OVERFLOW"
	ErrCodeNoCandidates        = "NO_CANDIDATES"
	ErrCodeInvalidRequest      = "INVALID_REQUEST"
)

// Wrap common errors with calculation context
func WrapInvalidPrincipal(principal decimal.Decimal) *CalcError {
	return NewCalcError(
		ErrCodeInvalidPrincipal,
		fmt.Sprintf("principal %s is not positive", principal),
		ErrInvalidPrincipal,
	)
}

func WrapInvalidRate(rate decimal.Decimal) *CalcError {
	return NewCalcError(
		ErrCodeInvalidRate,
		fmt.Sprintf("rate %s is negative", rate),
		ErrInvalidRate,
	)
}

func WrapInvalidTerm(termMonths int) *CalcError {
	return NewCalcError(
		ErrCodeInvalidTerm,
		fmt.Sprintf("term of %d months is not positive", termMonths),
		ErrInvalidTerm,
	)
}

func WrapInvalidPayment(payment decimal.Decimal) *CalcError {
	return NewCalcError(
		ErrCodeInvalidPayment,
		fmt.Sprintf("payment %s is not positive", payment),
		ErrInvalidPayment,
	)
}

func WrapInvalidContribution(contribution decimal.Decimal) *CalcError {
	return NewCalcError(
		ErrCodeInvalidContribution,
		fmt.Sprintf("contribution %s is not positive", contribution),
		ErrInvalidContribution,
	)
}

func WrapNonConvergent(payment, monthlyInterest decimal.Decimal) *CalcError {
	return NewCalcError(
		ErrCodeNonConvergent,
		fmt.Sprintf("payment %s does not exceed first-month interest %s", payment, monthlyInterest),
		ErrNonConvergent,
	)
}

func WrapNumericOverflow(termMonths int) *CalcError {
	return NewCalcError(
		ErrCodeNumericOverflow,
		fmt.Sprintf("term of %d months exceeds the supported compounding range", termMonths),
		ErrNumericOverflow,
	)
}

func WrapNoCandidates() *CalcError {
	return NewCalcError(
		ErrCodeNoCandidates,
		"candidate set is empty after filtering",
		ErrNoCandidates,
	)
}

func WrapInvalidRequest(err error) *CalcError {
	return NewCalcError(
		ErrCodeInvalidRequest,
		"request validation failed",
		err,
	)
}
