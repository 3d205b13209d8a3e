package comparison

import (
	"fmt"
	"math"

	"github.com/BrayanU12/BudgetMate/pkg/transaction"
)

// Percentile places a savings rate on a simulated population curve. It starts
// from the 50th percentile and moves linearly with the distance to the
// benchmark, clamped to [1, 99] so the result always reads as a standing
// rather than an absolute.
func Percentile(rate, benchmark, slope float64) int {
	percentile := 50.0
	if rate > benchmark {
		percentile = math.Min(99, 50+(rate-benchmark)*slope)
	} else {
		percentile = math.Max(1, 50-(benchmark-rate)*slope)
	}
	return int(math.Round(percentile))
}

// FoodSpend sums the expense amounts whose category belongs to the food
// benchmark group.
func FoodSpend(txs []transaction.Transaction, foodCategories []string) float64 {
	food := make(map[string]bool, len(foodCategories))
	for _, category := range foodCategories {
		food[category] = true
	}

	total := 0.0
	for _, tx := range txs {
		if tx.Type == transaction.Expense && food[tx.Category] {
			total += tx.Amount
		}
	}
	return total
}

func headlineFor(percentile int) string {
	switch {
	case percentile > 80:
		return "You are a positive financial outlier. Keep flying."
	case percentile > 50:
		return "You are above the average saver. Keep it up."
	default:
		return "You are below the average saver. Good moment to adjust."
	}
}

func foodMessageFor(foodRatio, benchmark float64) string {
	if foodRatio < benchmark {
		return fmt.Sprintf("You spend %.0f%% less on food than the average. Master chef material.", (benchmark-foodRatio)*100)
	}
	return "Your food spend is higher than most users. Too much takeout?"
}
