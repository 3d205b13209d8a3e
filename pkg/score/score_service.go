package score

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/BrayanU12/BudgetMate/internal/config"
	"github.com/BrayanU12/BudgetMate/internal/utils"
	"github.com/BrayanU12/BudgetMate/pkg/health"
	"github.com/BrayanU12/BudgetMate/pkg/ledger"
	"github.com/BrayanU12/BudgetMate/pkg/user"
	log "github.com/sirupsen/logrus"
)

// Report pairs the live score with the persisted weekly baseline.
type Report struct {
	Score         int
	Breakdown     Breakdown
	PreviousScore int
	Delta         int
	Label         string
	Description   string
}

// UserLister is the slice of the user service the weekly snapshot job needs.
type UserLister interface {
	GetAllUsers(ctx context.Context) ([]user.User, error)
}

type Service interface {
	Report(ctx context.Context) (Report, error)
	// Snapshot persists the current user's live score as the new baseline.
	// This is the only operation that replaces it; reading never does.
	Snapshot(ctx context.Context) (int, error)
	// SnapshotAll snapshots every user, invoked by the weekly scheduler.
	SnapshotAll(ctx context.Context) error
}

type ServiceImpl struct {
	ledgerService ledger.Service
	transactions  ledger.TransactionSource
	classifier    *health.Classifier
	snapshots     SnapshotRepo
	users         UserLister
	clock         utils.Clock
	cfg           config.Benchmarks
	// seedOffset returns the random 0..n-1 offset used once per user to
	// bootstrap a plausible "last week" baseline. Injected for tests.
	seedOffset func(n int) int
}

func NewScoreService(
	ledgerService ledger.Service,
	transactions ledger.TransactionSource,
	classifier *health.Classifier,
	snapshots SnapshotRepo,
	users UserLister,
	clock utils.Clock,
	cfg config.Benchmarks,
) *ServiceImpl {
	return &ServiceImpl{
		ledgerService: ledgerService,
		transactions:  transactions,
		classifier:    classifier,
		snapshots:     snapshots,
		users:         users,
		clock:         clock,
		cfg:           cfg,
		seedOffset:    rand.Intn,
	}
}

func (s *ServiceImpl) Report(ctx context.Context) (Report, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to get current user: %w", err)
	}

	summary, txs, err := s.ledgerService.CurrentSummary(ctx)
	if err != nil {
		return Report{}, err
	}
	_, wants := s.classifier.Partition(txs)
	total, breakdown := Compute(summary, wants, s.cfg)

	snapshot, found, err := s.snapshots.Latest(ctx, userId)
	if err != nil {
		return Report{}, err
	}
	previous := snapshot.Score
	if !found {
		// First computation for this user: seed a slightly lower baseline so
		// the evolution widget has something to show. A cosmetic bootstrap,
		// not a real historical value; from here on only Snapshot replaces it.
		previous = total - s.seedOffset(5)
		if previous < 0 {
			previous = 0
		}
		if err := s.snapshots.Store(ctx, userId, previous, s.clock.Now()); err != nil {
			return Report{}, err
		}
	}

	return Report{
		Score:         total,
		Breakdown:     breakdown,
		PreviousScore: previous,
		Delta:         total - previous,
		Label:         LabelFor(total),
		Description:   DescriptionFor(total),
	}, nil
}

func (s *ServiceImpl) Snapshot(ctx context.Context) (int, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get current user: %w", err)
	}
	summary, txs, err := s.ledgerService.CurrentSummary(ctx)
	if err != nil {
		return 0, err
	}
	_, wants := s.classifier.Partition(txs)
	total, _ := Compute(summary, wants, s.cfg)

	if err := s.snapshots.Store(ctx, userId, total, s.clock.Now()); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *ServiceImpl) SnapshotAll(ctx context.Context) error {
	users, err := s.users.GetAllUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users for score snapshot: %w", err)
	}

	for _, u := range users {
		txs, err := s.transactions.GetAll(ctx, u.Id)
		if err != nil {
			log.Warnf("skipping score snapshot for user %d: %v", u.Id, err)
			continue
		}
		summary := ledger.Aggregate(txs, 1)
		_, wants := s.classifier.Partition(txs)
		total, _ := Compute(summary, wants, s.cfg)
		if err := s.snapshots.Store(ctx, u.Id, total, s.clock.Now()); err != nil {
			log.Warnf("failed to store score snapshot for user %d: %v", u.Id, err)
		}
	}
	log.Debugf("stored score snapshots for %d users", len(users))
	return nil
}
