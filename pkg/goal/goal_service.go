package goal

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/BrayanU12/BudgetMate/internal/config"
	"github.com/BrayanU12/BudgetMate/pkg/ledger"
	"github.com/BrayanU12/BudgetMate/pkg/user"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Status decorates a goal with its derived display figures. The months
// estimate uses the synthetic contribution rate; an empty ledger selects the
// lower rate.
type Status struct {
	Goal            Goal
	Progress        float64
	Completed       bool
	EstimatedMonths int
}

type Service interface {
	Create(ctx context.Context, name string, targetAmount float64, emoji, color string, deadline *time.Time) (Status, error)
	List(ctx context.Context) ([]Status, error)
	Deposit(ctx context.Context, id string) (Status, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ServiceImpl struct {
	repo         Repo
	transactions ledger.TransactionSource
	cfg          config.Benchmarks
}

func NewGoalService(repo Repo, transactions ledger.TransactionSource, cfg config.Benchmarks) *ServiceImpl {
	return &ServiceImpl{repo: repo, transactions: transactions, cfg: cfg}
}

func (s *ServiceImpl) Create(ctx context.Context, name string, targetAmount float64, emoji, color string, deadline *time.Time) (Status, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("failed to get current user: %w", err)
	}

	if color == "" {
		color = fmt.Sprintf("hsl(%d, 70%%, 50%%)", rand.Intn(360))
	}
	goal, err := New(uuid.NewString(), name, targetAmount, emoji, color, deadline)
	if err != nil {
		return Status{}, err
	}

	if err := s.repo.Store(ctx, userId, goal); err != nil {
		return Status{}, err
	}
	return s.statusFor(ctx, userId, goal)
}

func (s *ServiceImpl) List(ctx context.Context) ([]Status, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	goals, err := s.repo.GetAll(ctx, userId)
	if err != nil {
		return nil, err
	}

	rate, err := s.contributionRate(ctx, userId)
	if err != nil {
		return nil, err
	}
	statuses := make([]Status, 0, len(goals))
	for _, goal := range goals {
		statuses = append(statuses, Status{
			Goal:            goal,
			Progress:        goal.Progress(),
			Completed:       goal.Completed(),
			EstimatedMonths: goal.EstimateMonths(rate),
		})
	}
	return statuses, nil
}

// Deposit adds the simulated fixed-fraction increment to the goal, clamped to
// the target.
func (s *ServiceImpl) Deposit(ctx context.Context, id string) (Status, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("failed to get current user: %w", err)
	}

	goal, err := s.repo.Get(ctx, userId, id)
	if err != nil {
		return Status{}, err
	}

	increment := DepositIncrement(goal.TargetAmount, s.cfg.GoalDepositFraction)
	goal.CurrentAmount = math.Min(goal.TargetAmount, goal.CurrentAmount+increment)

	if err := s.repo.UpdateCurrentAmount(ctx, userId, id, goal.CurrentAmount); err != nil {
		return Status{}, err
	}
	return s.statusFor(ctx, userId, goal)
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	deleted, err := s.repo.Delete(ctx, userId, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		log.Warnf("goal not deleted, probably because it does not exist (%s) or the user (%d) is not the owner", id, userId)
	}
	return deleted, nil
}

func (s *ServiceImpl) statusFor(ctx context.Context, userId int, goal Goal) (Status, error) {
	rate, err := s.contributionRate(ctx, userId)
	if err != nil {
		return Status{}, err
	}
	return Status{
		Goal:            goal,
		Progress:        goal.Progress(),
		Completed:       goal.Completed(),
		EstimatedMonths: goal.EstimateMonths(rate),
	}, nil
}

func (s *ServiceImpl) contributionRate(ctx context.Context, userId int) (float64, error) {
	txs, err := s.transactions.GetAll(ctx, userId)
	if err != nil {
		return 0, err
	}
	if len(txs) == 0 {
		return s.cfg.GoalMonthlyContributionEmpty, nil
	}
	return s.cfg.GoalMonthlyContribution, nil
}
