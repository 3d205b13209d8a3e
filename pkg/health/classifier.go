package health

import (
	"fmt"

	"github.com/BrayanU12/BudgetMate/internal/config"
	"github.com/BrayanU12/BudgetMate/pkg/ledger"
	"github.com/BrayanU12/BudgetMate/pkg/transaction"
)

// Classifier partitions expenses into needs and wants and evaluates the
// category alert rules. The taxonomy and every threshold come from
// configuration; nothing here hardcodes a category name.
type Classifier struct {
	cfg   config.Benchmarks
	needs map[string]bool
}

func NewClassifier(cfg config.Benchmarks) *Classifier {
	needs := make(map[string]bool, len(cfg.NeedsCategories))
	for _, category := range cfg.NeedsCategories {
		needs[category] = true
	}
	return &Classifier{cfg: cfg, needs: needs}
}

// Partition sums EXPENSE transactions into the needs and wants buckets.
func (c *Classifier) Partition(txs []transaction.Transaction) (needs, wants float64) {
	for _, tx := range txs {
		if tx.Type != transaction.Expense {
			continue
		}
		if c.needs[tx.Category] {
			needs += tx.Amount
		} else {
			wants += tx.Amount
		}
	}
	return needs, wants
}

// Classify produces the 50/30/20 view of the ledger. With zero income all
// ratios are defined as 0.
func (c *Classifier) Classify(txs []transaction.Transaction, summary ledger.Summary) Classification {
	needs, wants := c.Partition(txs)

	classification := Classification{Needs: needs, Wants: wants}
	if summary.TotalIncome > 0 {
		classification.NeedsRatio = needs / summary.TotalIncome
		classification.WantsRatio = wants / summary.TotalIncome
		classification.SavingsAllocationRatio = summary.PotentialSavings / summary.TotalIncome
	}
	return classification
}

// Alerts evaluates the independent threshold rules against category totals
// and the wants aggregate. Any subset may fire; zero income fires none.
// The rules compare category-specific sums, not the needs/wants partition.
func (c *Classifier) Alerts(txs []transaction.Transaction, summary ledger.Summary) []Alert {
	if summary.TotalIncome <= 0 {
		return nil
	}
	income := summary.TotalIncome
	categoryTotals := ledger.ExpensesByCategory(txs)
	_, wants := c.Partition(txs)

	var alerts []Alert
	if categoryTotals[c.cfg.HousingAlertCategory] > income*c.cfg.HousingAlertRatio {
		alerts = append(alerts, Alert{
			Message:  fmt.Sprintf("Housing spend exceeds the recommended %.0f%% of income.", c.cfg.HousingAlertRatio*100),
			Severity: SeverityWarning,
		})
	}
	if categoryTotals[c.cfg.DebtAlertCategory] > income*c.cfg.DebtAlertRatio {
		alerts = append(alerts, Alert{
			Message:  fmt.Sprintf("Debt payments consume more than %.0f%% of your income.", c.cfg.DebtAlertRatio*100),
			Severity: SeverityDanger,
		})
	}
	if categoryTotals[c.cfg.FoodAlertCategory] > income*c.cfg.FoodAlertRatio {
		alerts = append(alerts, Alert{
			Message:  fmt.Sprintf("Grocery spend exceeds %.0f%% of income. Consider cooking at home more often.", c.cfg.FoodAlertRatio*100),
			Severity: SeverityInfo,
		})
	}
	if wants > income*c.cfg.WantsAlertRatio {
		alerts = append(alerts, Alert{
			Message:  fmt.Sprintf("Your \"Wants\" spending is high (>%.0f%% of income).", c.cfg.WantsAlertRatio*100),
			Severity: SeverityWarning,
		})
	}
	return alerts
}

// StatusFor maps the savings rate to the qualitative health label.
func StatusFor(savingsRate float64) Status {
	switch {
	case savingsRate >= 0.20:
		return Status{Label: "Healthy", Description: "Excellent! You are building a solid future."}
	case savingsRate >= 0.10:
		return Status{Label: "Regular", Description: "You are doing well, but trim expenses to save more."}
	default:
		return Status{Label: "Critical", Description: "Your expenses consume nearly all of your income. Prioritize saving."}
	}
}
