package score

import (
	"context"
	"testing"
	"time"

	"github.com/BrayanU12/BudgetMate/internal/test_utils"
	"github.com/BrayanU12/BudgetMate/internal/utils"
	"github.com/BrayanU12/BudgetMate/pkg/health"
	"github.com/BrayanU12/BudgetMate/pkg/ledger"
	"github.com/BrayanU12/BudgetMate/pkg/transaction"
	"github.com/BrayanU12/BudgetMate/pkg/user"
	"github.com/stretchr/testify/assert"
)

type stubUserLister struct {
	users []user.User
}

func (s *stubUserLister) GetAllUsers(ctx context.Context) ([]user.User, error) {
	return s.users, nil
}

type scoreFixture struct {
	service      *ServiceImpl
	transactions *transaction.StubTransactionRepo
	snapshots    *StubSnapshotRepo
	clock        *utils.MockClock
	ctx          context.Context
}

func newScoreFixture(t *testing.T, users ...user.User) scoreFixture {
	t.Helper()
	repo := transaction.NewStubTransactionRepo()
	snapshots := NewStubSnapshotRepo()
	clock := &utils.MockClock{FixedNow: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)}
	cfg := testBenchmarks()

	service := NewScoreService(
		ledger.NewLedgerService(repo),
		repo,
		health.NewClassifier(cfg),
		snapshots,
		&stubUserLister{users: users},
		clock,
		cfg,
	)
	service.seedOffset = func(n int) int { return 3 }

	return scoreFixture{
		service:      service,
		transactions: repo,
		snapshots:    snapshots,
		clock:        clock,
		ctx:          user.WithUser(context.Background(), test_utils.TestUser()),
	}
}

func seedTx(t *testing.T, f scoreFixture, userId int, txType transaction.Type, category string, amount float64) {
	t.Helper()
	created, err := transaction.New("id-"+category, category, amount, txType, category, time.Now())
	assert.NoError(t, err)
	assert.NoError(t, f.transactions.Store(context.Background(), userId, created))
}

func seedHealthyLedger(t *testing.T, f scoreFixture, userId int) {
	seedTx(t, f, userId, transaction.Income, "Salary", 3500)
	seedTx(t, f, userId, transaction.Expense, "Housing", 1200)
	seedTx(t, f, userId, transaction.Expense, "Groceries", 450)
	seedTx(t, f, userId, transaction.Expense, "Transport", 150)
}

func TestScoreService_Report_SeedsBaselineOnce(t *testing.T) {
	// given
	f := newScoreFixture(t)
	seedHealthyLedger(t, f, 123)

	// when: first read with no stored snapshot
	report, err := f.service.Report(f.ctx)

	// then: a baseline slightly below the live score is fabricated and stored
	assert.NoError(t, err)
	assert.Equal(t, 100, report.Score)
	assert.Equal(t, 97, report.PreviousScore)
	assert.Equal(t, 3, report.Delta)
	assert.Equal(t, "Excellent", report.Label)

	// when: a second read, with the offset source changed
	f.service.seedOffset = func(n int) int {
		t.Fatal("baseline must be seeded only once")
		return 0
	}
	report, err = f.service.Report(f.ctx)

	// then: the stored baseline is reused untouched
	assert.NoError(t, err)
	assert.Equal(t, 97, report.PreviousScore)
	assert.Equal(t, 3, report.Delta)
}

func TestScoreService_Report_SeedFloorsAtZero(t *testing.T) {
	// given: an empty ledger, live score 0
	f := newScoreFixture(t)

	// when
	report, err := f.service.Report(f.ctx)

	// then: the fabricated baseline never goes negative
	assert.NoError(t, err)
	assert.Equal(t, 0, report.Score)
	assert.Equal(t, 0, report.PreviousScore)
	assert.Equal(t, 0, report.Delta)
	assert.Equal(t, "Needs improvement", report.Label)
}

func TestScoreService_Snapshot_ReplacesBaseline(t *testing.T) {
	// given: a seeded baseline of 97
	f := newScoreFixture(t)
	seedHealthyLedger(t, f, 123)
	_, err := f.service.Report(f.ctx)
	assert.NoError(t, err)

	// when: the score is explicitly snapshotted
	stored, err := f.service.Snapshot(f.ctx)

	// then: the live score becomes the new baseline and the delta resets
	assert.NoError(t, err)
	assert.Equal(t, 100, stored)

	report, err := f.service.Report(f.ctx)
	assert.NoError(t, err)
	assert.Equal(t, 100, report.PreviousScore)
	assert.Equal(t, 0, report.Delta)
}

func TestScoreService_Snapshot_RecordsClockTime(t *testing.T) {
	// given
	f := newScoreFixture(t)
	seedHealthyLedger(t, f, 123)
	f.clock.SetNow(time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC))

	// when
	_, err := f.service.Snapshot(f.ctx)

	// then
	assert.NoError(t, err)
	snapshot, found, err := f.snapshots.Latest(context.Background(), 123)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, f.clock.FixedNow, snapshot.CreatedAt)
}

func TestScoreService_SnapshotAll_CoversEveryUser(t *testing.T) {
	// given: two users with different ledgers
	f := newScoreFixture(t, user.User{Id: 1}, user.User{Id: 2})
	seedHealthyLedger(t, f, 1)
	seedTx(t, f, 2, transaction.Income, "Salary", 1000)
	seedTx(t, f, 2, transaction.Expense, "Leisure", 950)

	// when
	err := f.service.SnapshotAll(context.Background())

	// then: both users get a stored baseline reflecting their own ledger
	assert.NoError(t, err)
	first, found, _ := f.snapshots.Latest(context.Background(), 1)
	assert.True(t, found)
	assert.Equal(t, 100, first.Score)

	second, found, _ := f.snapshots.Latest(context.Background(), 2)
	assert.True(t, found)
	assert.Less(t, second.Score, 50)
}

func TestScoreService_Report_RequiresUser(t *testing.T) {
	f := newScoreFixture(t)

	_, err := f.service.Report(context.Background())

	assert.Error(t, err)
}
