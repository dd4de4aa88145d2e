package analysis

import (
	"math"

	"equityPaperBot/internal/domain"
)

// Fundamental state thresholds on the 0-100 check score.
const (
	fundamentalPassScore    = 70
	fundamentalNeutralScore = 40

	// fundamentalDefaultScore is reported when no fundamentals record is
	// available at all: trading stays allowed but flagged as incomplete.
	fundamentalDefaultScore = 60.0
)

// Conservative stand-ins for individual metrics missing from an otherwise
// present record.
const (
	defaultEPSGrowth  = 0
	defaultPE         = 100
	defaultIndustryPE = 25
	defaultDebtEquity = 1.0
	defaultROE        = 0
	defaultCashflow   = 0
)

// AnalyzeFundamentals applies the five-check quality gate.
//
// With no record at all the gate returns NEUTRAL with a fixed score of 60 and
// every reason explicitly unknown; that is a deliberate "no data" default,
// not five failed checks. With a record present each check evaluates to a
// definite pass or fail and the score is the passing fraction times 100.
func AnalyzeFundamentals(f *domain.Fundamentals) (domain.FundamentalState, float64, map[string]domain.Check) {
	if f.IsEmpty() {
		return domain.FundamentalNeutral, fundamentalDefaultScore, map[string]domain.Check{
			"eps_growth":        domain.CheckUnknown,
			"pe_reasonable":     domain.CheckUnknown,
			"debt_acceptable":   domain.CheckUnknown,
			"roe_strong":        domain.CheckUnknown,
			"cashflow_positive": domain.CheckUnknown,
		}
	}

	checks := map[string]bool{
		"eps_growth":        orDefault(f.EPSGrowth3Y, defaultEPSGrowth) > 10,
		"pe_reasonable":     orDefault(f.PE, defaultPE) < math.Min(orDefault(f.IndustryPE, defaultIndustryPE), 25),
		"debt_acceptable":   orDefault(f.DebtEquity, defaultDebtEquity) < 0.5,
		"roe_strong":        orDefault(f.ROE, defaultROE) > 15,
		"cashflow_positive": orDefault(f.OperatingCashflow, defaultCashflow) > 0,
	}

	passed := 0
	reasons := make(map[string]domain.Check, len(checks))
	for name, ok := range checks {
		if ok {
			passed++
		}
		reasons[name] = domain.CheckOf(ok)
	}
	score := float64(passed) / float64(len(checks)) * 100

	var state domain.FundamentalState
	switch {
	case score >= fundamentalPassScore:
		state = domain.FundamentalPass
	case score >= fundamentalNeutralScore:
		state = domain.FundamentalNeutral
	default:
		state = domain.FundamentalFail
	}
	return state, score, reasons
}

func orDefault(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
