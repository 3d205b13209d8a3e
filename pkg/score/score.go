package score

import (
	"math"

	"github.com/BrayanU12/BudgetMate/internal/config"
	"github.com/BrayanU12/BudgetMate/pkg/ledger"
)

// Sub-score caps. Their sum is the 100-point ceiling.
const (
	savingsMax   = 35.0
	stabilityMax = 25.0
	controlMax   = 25.0
	solvencyMax  = 15.0
)

type Breakdown struct {
	Savings   float64
	Stability float64
	Control   float64
	Solvency  float64
}

// Compute derives the composite 0-100 score from the monthly aggregates and
// the wants total of the same ledger. Pure; no side effects. Zero income is
// a defined input and yields 0 with an empty breakdown.
func Compute(summary ledger.Summary, wants float64, cfg config.Benchmarks) (int, Breakdown) {
	if summary.TotalIncome <= 0 {
		return 0, Breakdown{}
	}
	income := summary.TotalIncome

	// Linear ramp to the savings-rate target, saturating at the cap.
	savingsScore := math.Min(savingsMax, (summary.SavingsRate/cfg.SavingsRateTarget)*savingsMax)

	// Full marks below the threshold, then 1 point lost per 1% of income
	// that expenses exceed it, floored at 0.
	expenseRatio := summary.TotalExpenses / income
	stabilityScore := stabilityMax
	if expenseRatio >= cfg.StabilityThreshold {
		stabilityScore = math.Max(0, stabilityMax-(expenseRatio-cfg.StabilityThreshold)*100)
	}

	wantsRatio := wants / income
	controlScore := controlMax
	if wantsRatio >= cfg.ControlThreshold {
		controlScore = math.Max(0, controlMax-(wantsRatio-cfg.ControlThreshold)*100)
	}

	// Binary: strictly positive raw balance or nothing.
	solvencyScore := 0.0
	if summary.RawBalance > 0 {
		solvencyScore = solvencyMax
	}

	total := int(math.Round(savingsScore + stabilityScore + controlScore + solvencyScore))
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}

	return total, Breakdown{
		Savings:   savingsScore,
		Stability: stabilityScore,
		Control:   controlScore,
		Solvency:  solvencyScore,
	}
}

// LabelFor maps a score to its qualitative label. The thresholds are shared
// with DescriptionFor so the numeric label and the advice text never drift
// apart.
func LabelFor(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	default:
		return "Needs improvement"
	}
}

func DescriptionFor(score int) string {
	switch {
	case score >= 80:
		return "Your finances are healthy. Keep the streak going."
	case score >= 60:
		return "Solid ground, with room to push your savings rate higher."
	default:
		return "Your score is in the critical zone. Small consistent cuts recover it fastest."
	}
}
