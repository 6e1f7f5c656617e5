package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/ashalantos/loan-calc-app/internal/config"
	"github.com/ashalantos/loan-calc-app/internal/domain"
	"github.com/ashalantos/loan-calc-app/internal/report"
	"github.com/ashalantos/loan-calc-app/internal/service"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "failed to load configuration: %v\n", err)
		return 1
	}

	svc := service.NewCalculatorService(cfg)
	renderer := report.NewRenderer(cfg.Report.Currency, cfg.Engine.MoneyPlaces)

	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "emi":
		return runEMI(args[1:], svc, renderer, stdout, stderr)
	case "schedule":
		return runSchedule(args[1:], svc, renderer, stdout, stderr)
	case "payoff":
		return runPayoff(args[1:], svc, renderer, stdout, stderr)
	case "compare-terms":
		return runCompareTerms(args[1:], svc, renderer, stdout, stderr)
	case "sip":
		return runSIP(args[1:], svc, renderer, stdout, stderr)
	case "compare-sip":
		return runCompareSIP(args[1:], svc, renderer, stdout, stderr)
	case "-h", "--help", "help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: loancalc <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  emi            Fixed monthly payment for a loan")
	fmt.Fprintln(w, "  schedule       Month-by-month amortization table")
	fmt.Fprintln(w, "  payoff         Months to clear a balance at a given payment")
	fmt.Fprintln(w, "  compare-terms  Price the loan across durations")
	fmt.Fprintln(w, "  sip            Future value of a recurring investment")
	fmt.Fprintln(w, "  compare-sip    Project an investment across horizons")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run `loancalc <command> -h` for command-specific help.")
}

func runEMI(args []string, svc *service.CalculatorService, renderer *report.Renderer, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("emi", flag.ContinueOnError)
	fs.SetOutput(stderr)
	principal := fs.String("principal", "", "loan principal")
	rate := fs.String("rate", "0", "annual interest rate in percent")
	years := fs.Int("years", 0, "term, whole years")
	months := fs.Int("months", 0, "term, extra months")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	request := domain.EMIRequest{Years: *years, Months: *months}
	if !parseAmount(stderr, "principal", *principal, &request.Principal) ||
		!parseAmount(stderr, "rate", *rate, &request.AnnualRatePercent) {
		return 2
	}

	result, err := svc.CalculateEMI(request)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	fmt.Fprint(stdout, renderer.LoanSummary(result))
	return 0
}

func runSchedule(args []string, svc *service.CalculatorService, renderer *report.Renderer, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("schedule", flag.ContinueOnError)
	fs.SetOutput(stderr)
	principal := fs.String("principal", "", "loan principal")
	rate := fs.String("rate", "0", "annual interest rate in percent")
	years := fs.Int("years", 0, "term, whole years")
	months := fs.Int("months", 0, "term, extra months")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	request := domain.EMIRequest{Years: *years, Months: *months}
	if !parseAmount(stderr, "principal", *principal, &request.Principal) ||
		!parseAmount(stderr, "rate", *rate, &request.AnnualRatePercent) {
		return 2
	}

	schedule, err := svc.GenerateSchedule(request)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	fmt.Fprint(stdout, renderer.AmortizationTable(schedule))
	return 0
}

func runPayoff(args []string, svc *service.CalculatorService, renderer *report.Renderer, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("payoff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	principal := fs.String("principal", "", "outstanding balance")
	rate := fs.String("rate", "0", "annual interest rate in percent")
	payment := fs.String("payment", "", "monthly payment")
	capMonths := fs.Int("cap", 0, "horizon cap in months (0 = configured default)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	request := domain.PayoffRequest{CapMonths: *capMonths}
	if !parseAmount(stderr, "principal", *principal, &request.Principal) ||
		!parseAmount(stderr, "rate", *rate, &request.AnnualRatePercent) ||
		!parseAmount(stderr, "payment", *payment, &request.MonthlyPayment) {
		return 2
	}

	estimate, err := svc.EstimatePayoff(request)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	fmt.Fprint(stdout, renderer.PayoffSummary(estimate))
	return 0
}

func runCompareTerms(args []string, svc *service.CalculatorService, renderer *report.Renderer, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("compare-terms", flag.ContinueOnError)
	fs.SetOutput(stderr)
	principal := fs.String("principal", "", "loan principal")
	rate := fs.String("rate", "0", "annual interest rate in percent")
	years := fs.Int("years", 0, "longest term, whole years")
	months := fs.Int("months", 0, "longest term, extra months")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	request := domain.TermComparisonRequest{Years: *years, Months: *months}
	if !parseAmount(stderr, "principal", *principal, &request.Principal) ||
		!parseAmount(stderr, "rate", *rate, &request.AnnualRatePercent) {
		return 2
	}

	comparison, err := svc.CompareTerms(request)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	fmt.Fprint(stdout, renderer.ComparisonTable(comparison))
	return 0
}

func runSIP(args []string, svc *service.CalculatorService, renderer *report.Renderer, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sip", flag.ContinueOnError)
	fs.SetOutput(stderr)
	contribution := fs.String("monthly", "0", "monthly contribution")
	lumpSum := fs.String("lumpsum", "0", "one-time amount already invested")
	rate := fs.String("rate", "0", "expected annual return in percent")
	years := fs.Int("years", 0, "horizon, whole years")
	months := fs.Int("months", 0, "horizon, extra months")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	request := domain.SIPRequest{Years: *years, Months: *months}
	if !parseAmount(stderr, "monthly", *contribution, &request.MonthlyContribution) ||
		!parseAmount(stderr, "lumpsum", *lumpSum, &request.LumpSum) ||
		!parseAmount(stderr, "rate", *rate, &request.AnnualRatePercent) {
		return 2
	}

	projection, err := svc.ProjectInvestment(request)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	fmt.Fprint(stdout, renderer.ProjectionSummary(projection))
	return 0
}

func runCompareSIP(args []string, svc *service.CalculatorService, renderer *report.Renderer, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("compare-sip", flag.ContinueOnError)
	fs.SetOutput(stderr)
	contribution := fs.String("monthly", "", "monthly contribution")
	rate := fs.String("rate", "0", "expected annual return in percent")
	maxMonths := fs.Int("max-months", 0, "longest horizon to consider")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	request := domain.HorizonComparisonRequest{MaxMonths: *maxMonths}
	if !parseAmount(stderr, "monthly", *contribution, &request.MonthlyContribution) ||
		!parseAmount(stderr, "rate", *rate, &request.AnnualRatePercent) {
		return 2
	}

	comparison, err := svc.CompareInvestmentHorizons(request)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	fmt.Fprint(stdout, renderer.HorizonTable(comparison))
	return 0
}

func parseAmount(stderr io.Writer, name, value string, target *decimal.Decimal) bool {
	if value == "" {
		fmt.Fprintf(stderr, "missing -%s\n", name)
		return false
	}

	parsed, err := decimal.NewFromString(value)
	if err != nil {
		fmt.Fprintf(stderr, "invalid -%s %q: %v\n", name, value, err)
		return false
	}

	*target = parsed
	return true
}
