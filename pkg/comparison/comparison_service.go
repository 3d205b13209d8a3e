package comparison

import (
	"context"
	"fmt"

	"github.com/BrayanU12/BudgetMate/internal/config"
	"github.com/BrayanU12/BudgetMate/pkg/ledger"
	"github.com/BrayanU12/BudgetMate/pkg/user"
)

// Report is the simulated community standing for the current user. When the
// ledger has no income the comparison is degenerate: the percentile stays at
// the 50 baseline and no messaging is produced.
type Report struct {
	Percentile        int
	BetterThanAverage bool
	SavingsRate       float64
	BenchmarkRate     float64
	FoodRatio         float64
	FoodBenchmark     float64
	Headline          string
	FoodMessage       string
}

type Service interface {
	Compare(ctx context.Context) (Report, error)
}

type ServiceImpl struct {
	ledgerService ledger.Service
	cfg           config.Benchmarks
}

func NewComparisonService(ledgerService ledger.Service, cfg config.Benchmarks) *ServiceImpl {
	return &ServiceImpl{ledgerService: ledgerService, cfg: cfg}
}

func (s *ServiceImpl) Compare(ctx context.Context) (Report, error) {
	currentUser, err := user.CurrentUser(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to get current user: %w", err)
	}

	summary, txs, err := s.ledgerService.CurrentSummary(ctx)
	if err != nil {
		return Report{}, err
	}

	benchmarkRate := s.cfg.AvgSavingsRate
	foodBenchmark := s.cfg.AvgFoodRatio
	if currentUser.Settings.ColombianMode {
		benchmarkRate = s.cfg.AvgSavingsRateColombia
		foodBenchmark = s.cfg.AvgFoodRatioColombia
	}

	if summary.TotalIncome <= 0 {
		return Report{
			Percentile:    50,
			BenchmarkRate: benchmarkRate,
			FoodBenchmark: foodBenchmark,
		}, nil
	}

	percentile := Percentile(summary.SavingsRate, benchmarkRate, s.cfg.PercentileSlope)
	foodRatio := FoodSpend(txs, s.cfg.FoodCategories) / summary.TotalIncome

	return Report{
		Percentile:        percentile,
		BetterThanAverage: summary.SavingsRate > benchmarkRate,
		SavingsRate:       summary.SavingsRate,
		BenchmarkRate:     benchmarkRate,
		FoodRatio:         foodRatio,
		FoodBenchmark:     foodBenchmark,
		Headline:          headlineFor(percentile),
		FoodMessage:       foodMessageFor(foodRatio, foodBenchmark),
	}, nil
}
