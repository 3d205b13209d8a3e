package app

import (
	"context"
	"database/sql"

	"github.com/BrayanU12/BudgetMate/internal/config"
	"github.com/BrayanU12/BudgetMate/internal/utils"
	"github.com/BrayanU12/BudgetMate/pkg/advice"
	"github.com/BrayanU12/BudgetMate/pkg/comparison"
	"github.com/BrayanU12/BudgetMate/pkg/goal"
	"github.com/BrayanU12/BudgetMate/pkg/health"
	"github.com/BrayanU12/BudgetMate/pkg/ledger"
	"github.com/BrayanU12/BudgetMate/pkg/score"
	"github.com/BrayanU12/BudgetMate/pkg/transaction"
	"github.com/BrayanU12/BudgetMate/pkg/user"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	UserService user.Service
	UserHandler *user.Handler

	TransactionRepo    transaction.Repo
	TransactionService transaction.Service
	TransactionHandler *transaction.Handler

	LedgerService ledger.Service
	LedgerHandler *ledger.Handler

	Classifier    *health.Classifier
	HealthService health.Service
	HealthHandler *health.Handler

	ScoreSnapshotRepo score.SnapshotRepo
	ScoreService      score.Service
	ScoreHandler      *score.Handler

	ComparisonService comparison.Service
	ComparisonHandler *comparison.Handler

	GoalRepo    goal.Repo
	GoalService goal.Service
	GoalHandler *goal.Handler

	AdviceGenerator advice.Generator
	AdviceService   advice.Service
	AdviceHandler   *advice.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}

	deps.UserService = user.NewUserService(user.NewUserRepo(db))
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.TransactionRepo = transaction.NewTransactionRepo(db)
	deps.TransactionService = transaction.NewTransactionService(deps.TransactionRepo)
	deps.TransactionHandler = transaction.NewHandler(deps.TransactionService)

	deps.LedgerService = ledger.NewLedgerService(deps.TransactionRepo)
	deps.LedgerHandler = ledger.NewHandler(deps.LedgerService)

	deps.Classifier = health.NewClassifier(cfg.Benchmarks)
	deps.HealthService = health.NewHealthService(deps.LedgerService, deps.Classifier)
	deps.HealthHandler = health.NewHandler(deps.HealthService)

	deps.ScoreSnapshotRepo = score.NewSnapshotRepo(db)
	deps.ScoreService = score.NewScoreService(
		deps.LedgerService,
		deps.TransactionRepo,
		deps.Classifier,
		deps.ScoreSnapshotRepo,
		deps.UserService,
		deps.Clock,
		cfg.Benchmarks,
	)
	deps.ScoreHandler = score.NewHandler(deps.ScoreService)

	deps.ComparisonService = comparison.NewComparisonService(deps.LedgerService, cfg.Benchmarks)
	deps.ComparisonHandler = comparison.NewHandler(deps.ComparisonService)

	deps.GoalRepo = goal.NewGoalRepo(db)
	deps.GoalService = goal.NewGoalService(deps.GoalRepo, deps.TransactionRepo, cfg.Benchmarks)
	deps.GoalHandler = goal.NewHandler(deps.GoalService)

	deps.AdviceGenerator = advice.NewGenerator(context.Background())
	deps.AdviceService = advice.NewAdviceService(deps.AdviceGenerator, deps.LedgerService, deps.ScoreService, cfg.Advice)
	deps.AdviceHandler = advice.NewHandler(deps.AdviceService)

	return deps
}
