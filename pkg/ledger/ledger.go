package ledger

import (
	"sort"

	"github.com/BrayanU12/BudgetMate/pkg/transaction"
)

// Period selects between a monthly view of the ledger and its annualized
// projection. It is a pure scaling transform applied after aggregation;
// ratios and proportions are unaffected by it.
type Period string

const (
	Monthly Period = "MONTHLY"
	Annual  Period = "ANNUAL"
)

func (p Period) Multiplier() float64 {
	if p == Annual {
		return 12
	}
	return 1
}

// Summary holds the derived aggregates every view is built from. It is
// recomputed from the ledger on demand and never persisted.
type Summary struct {
	TotalIncome   float64
	TotalExpenses float64
	TotalSavings  float64
	// RawBalance is income minus expenses minus savings; negative means
	// overspending.
	RawBalance float64
	// PotentialSavings counts explicit savings plus any unspent positive
	// balance.
	PotentialSavings float64
	// SavingsRate is PotentialSavings over income, 0 when income is 0.
	SavingsRate float64
}

// CategoryTotal is one entry of the expense breakdown, ranked for display.
type CategoryTotal struct {
	Category string
	Amount   float64
}

// Aggregate reduces the transaction list into per-type totals scaled by the
// period multiplier. Sums are accumulated at native precision and scaled
// once at the end, so the multiplier cannot change proportions or introduce
// extra floating error per transaction.
func Aggregate(txs []transaction.Transaction, multiplier float64) Summary {
	var income, expenses, savings float64
	for _, tx := range txs {
		switch tx.Type {
		case transaction.Income:
			income += tx.Amount
		case transaction.Expense:
			expenses += tx.Amount
		case transaction.Saving:
			savings += tx.Amount
		}
	}
	income *= multiplier
	expenses *= multiplier
	savings *= multiplier

	rawBalance := income - expenses - savings
	potentialSavings := savings
	if rawBalance > 0 {
		potentialSavings += rawBalance
	}
	savingsRate := 0.0
	if income > 0 {
		savingsRate = potentialSavings / income
	}

	return Summary{
		TotalIncome:      income,
		TotalExpenses:    expenses,
		TotalSavings:     savings,
		RawBalance:       rawBalance,
		PotentialSavings: potentialSavings,
		SavingsRate:      savingsRate,
	}
}

// ExpensesByCategory sums EXPENSE transactions per category, unscaled.
func ExpensesByCategory(txs []transaction.Transaction) map[string]float64 {
	totals := make(map[string]float64)
	for _, tx := range txs {
		if tx.Type == transaction.Expense {
			totals[tx.Category] += tx.Amount
		}
	}
	return totals
}

// Breakdown ranks expense categories by scaled spend, descending. Ties keep
// a stable alphabetical order so repeated renders do not flicker.
func Breakdown(txs []transaction.Transaction, multiplier float64) []CategoryTotal {
	totals := ExpensesByCategory(txs)

	breakdown := make([]CategoryTotal, 0, len(totals))
	for category, amount := range totals {
		breakdown = append(breakdown, CategoryTotal{Category: category, Amount: amount * multiplier})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Amount != breakdown[j].Amount {
			return breakdown[i].Amount > breakdown[j].Amount
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}
