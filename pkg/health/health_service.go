package health

import (
	"context"

	"github.com/BrayanU12/BudgetMate/pkg/ledger"
)

// Report is the full health payload for the current user's ledger.
type Report struct {
	Summary        ledger.Summary
	Classification Classification
	Alerts         []Alert
	Mood           Mood
	Status         Status
	Projection     Projection
}

type Service interface {
	Report(ctx context.Context) (Report, error)
}

type ServiceImpl struct {
	ledgerService ledger.Service
	classifier    *Classifier
}

func NewHealthService(ledgerService ledger.Service, classifier *Classifier) *ServiceImpl {
	return &ServiceImpl{ledgerService: ledgerService, classifier: classifier}
}

func (s *ServiceImpl) Report(ctx context.Context) (Report, error) {
	summary, txs, err := s.ledgerService.CurrentSummary(ctx)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Summary:        summary,
		Classification: s.classifier.Classify(txs, summary),
		Alerts:         s.classifier.Alerts(txs, summary),
		Mood:           MoodFor(summary.RawBalance, summary.SavingsRate),
		Status:         StatusFor(summary.SavingsRate),
		Projection: Projection{
			OneYear:   summary.PotentialSavings * 12,
			FiveYears: summary.PotentialSavings * 60,
		},
	}, nil
}
