package comparison

import (
	"context"
	"testing"
	"time"

	"github.com/BrayanU12/BudgetMate/internal/config"
	"github.com/BrayanU12/BudgetMate/internal/test_utils"
	"github.com/BrayanU12/BudgetMate/pkg/ledger"
	"github.com/BrayanU12/BudgetMate/pkg/transaction"
	"github.com/BrayanU12/BudgetMate/pkg/user"
	"github.com/stretchr/testify/assert"
)

func testBenchmarks() config.Benchmarks {
	return config.Benchmarks{
		FoodCategories:         []string{"Groceries", "Dining Out", "Leisure"},
		AvgSavingsRate:         0.08,
		AvgSavingsRateColombia: 0.05,
		AvgFoodRatio:           0.25,
		AvgFoodRatioColombia:   0.35,
		PercentileSlope:        150,
	}
}

func TestPercentile_MatchesBenchmarkAtBaseline(t *testing.T) {
	assert.Equal(t, 50, Percentile(0.08, 0.08, 150))
}

func TestPercentile_MovesWithDistanceToBenchmark(t *testing.T) {
	// saving 10 points over the benchmark gains 15 percentile points
	assert.Equal(t, 65, Percentile(0.18, 0.08, 150))
	assert.Equal(t, 35, Percentile(0.0, 0.10, 150))
}

func TestPercentile_ClampsToOneAndNinetyNine(t *testing.T) {
	assert.Equal(t, 99, Percentile(1.0, 0.08, 150))
	assert.Equal(t, 1, Percentile(0.0, 0.50, 150))
}

func TestPercentile_MonotonicInRate(t *testing.T) {
	previous := 0
	for rate := 0.0; rate <= 1.0; rate += 0.01 {
		p := Percentile(rate, 0.08, 150)

		assert.GreaterOrEqual(t, p, previous, "percentile must not drop as the rate grows (rate=%v)", rate)
		assert.GreaterOrEqual(t, p, 1)
		assert.LessOrEqual(t, p, 99)
		previous = p
	}
}

func TestFoodSpend_OnlyCountsFoodGroupExpenses(t *testing.T) {
	txs := []transaction.Transaction{
		{Type: transaction.Expense, Category: "Groceries", Amount: 300},
		{Type: transaction.Expense, Category: "Dining Out", Amount: 100},
		{Type: transaction.Expense, Category: "Housing", Amount: 1200},
		{Type: transaction.Income, Category: "Salary", Amount: 3000},
	}

	assert.Equal(t, 400.0, FoodSpend(txs, []string{"Groceries", "Dining Out", "Leisure"}))
}

func serviceWith(txs []transaction.Transaction) (*ServiceImpl, func(colombian bool) context.Context) {
	repo := transaction.NewStubTransactionRepo()
	for _, tx := range txs {
		_ = repo.Store(context.Background(), 123, tx)
	}
	service := NewComparisonService(ledger.NewLedgerService(repo), testBenchmarks())

	ctxFor := func(colombian bool) context.Context {
		u := test_utils.TestUser()
		u.Settings.ColombianMode = colombian
		return user.WithUser(context.Background(), u)
	}
	return service, ctxFor
}

func tx(t *testing.T, txType transaction.Type, category string, amount float64) transaction.Transaction {
	t.Helper()
	created, err := transaction.New("id-"+category, category, amount, txType, category, time.Now())
	assert.NoError(t, err)
	return created
}

func TestComparisonService_PicksRegionalBenchmarks(t *testing.T) {
	// given: a 20% savings rate ledger
	service, ctxFor := serviceWith([]transaction.Transaction{
		{ID: "1", Name: "Salary", Type: transaction.Income, Category: "Salary", Amount: 1000},
		{ID: "2", Name: "Housing", Type: transaction.Expense, Category: "Housing", Amount: 800},
	})

	// when
	global, err := service.Compare(ctxFor(false))
	assert.NoError(t, err)
	colombian, err := service.Compare(ctxFor(true))
	assert.NoError(t, err)

	// then: the Colombian benchmark is lower, so the same rate ranks higher
	assert.Equal(t, 0.08, global.BenchmarkRate)
	assert.Equal(t, 0.05, colombian.BenchmarkRate)
	assert.Equal(t, 68, global.Percentile)
	assert.Equal(t, 73, colombian.Percentile)
	assert.True(t, global.BetterThanAverage)
}

func TestComparisonService_FoodComparisonFraming(t *testing.T) {
	// given: food is 10% of income, below both regional benchmarks
	service, ctxFor := serviceWith([]transaction.Transaction{
		tx(t, transaction.Income, "Salary", 2000),
		tx(t, transaction.Expense, "Groceries", 150),
		tx(t, transaction.Expense, "Dining Out", 50),
		tx(t, transaction.Expense, "Housing", 900),
	})

	// when
	report, err := service.Compare(ctxFor(false))

	// then: below the benchmark reads as favorable
	assert.NoError(t, err)
	assert.InDelta(t, 0.10, report.FoodRatio, 1e-9)
	assert.Contains(t, report.FoodMessage, "less on food")
	assert.Contains(t, report.FoodMessage, "15%")
}

func TestComparisonService_FoodOverspendMessage(t *testing.T) {
	// given: food is 40% of income
	service, ctxFor := serviceWith([]transaction.Transaction{
		tx(t, transaction.Income, "Salary", 1000),
		tx(t, transaction.Expense, "Dining Out", 400),
	})

	// when
	report, err := service.Compare(ctxFor(false))

	// then
	assert.NoError(t, err)
	assert.Contains(t, report.FoodMessage, "higher than most users")
}

func TestComparisonService_ZeroIncomeIsDegenerate(t *testing.T) {
	// given: an empty ledger
	service, ctxFor := serviceWith(nil)

	// when
	report, err := service.Compare(ctxFor(false))

	// then: baseline percentile, no messaging
	assert.NoError(t, err)
	assert.Equal(t, 50, report.Percentile)
	assert.False(t, report.BetterThanAverage)
	assert.Empty(t, report.Headline)
	assert.Empty(t, report.FoodMessage)
}

func TestComparisonService_RequiresUser(t *testing.T) {
	service, _ := serviceWith(nil)

	_, err := service.Compare(context.Background())

	assert.Error(t, err)
}
