package ledger

import (
	"context"
	"fmt"

	"github.com/BrayanU12/BudgetMate/pkg/transaction"
	"github.com/BrayanU12/BudgetMate/pkg/user"
)

// TransactionSource is the narrow read surface this package needs from the
// transaction repository.
type TransactionSource interface {
	GetAll(ctx context.Context, userId int) ([]transaction.Transaction, error)
}

// View is the display payload for a period: totals plus the ranked expense
// breakdown.
type View struct {
	Period    Period
	Summary   Summary
	Breakdown []CategoryTotal
}

type Service interface {
	GetView(ctx context.Context, period Period) (View, error)
	// CurrentSummary returns the unscaled (monthly) aggregates other
	// services derive their ratios from.
	CurrentSummary(ctx context.Context) (Summary, []transaction.Transaction, error)
}

type ServiceImpl struct {
	transactions TransactionSource
}

func NewLedgerService(transactions TransactionSource) *ServiceImpl {
	return &ServiceImpl{transactions: transactions}
}

func (s *ServiceImpl) GetView(ctx context.Context, period Period) (View, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return View{}, fmt.Errorf("failed to get current user: %w", err)
	}
	txs, err := s.transactions.GetAll(ctx, userId)
	if err != nil {
		return View{}, err
	}

	m := period.Multiplier()
	return View{
		Period:    period,
		Summary:   Aggregate(txs, m),
		Breakdown: Breakdown(txs, m),
	}, nil
}

func (s *ServiceImpl) CurrentSummary(ctx context.Context) (Summary, []transaction.Transaction, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Summary{}, nil, fmt.Errorf("failed to get current user: %w", err)
	}
	txs, err := s.transactions.GetAll(ctx, userId)
	if err != nil {
		return Summary{}, nil, err
	}
	return Aggregate(txs, 1), txs, nil
}
