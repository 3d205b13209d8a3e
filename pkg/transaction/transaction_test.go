package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/BrayanU12/BudgetMate/internal/test_utils"
	"github.com/BrayanU12/BudgetMate/pkg/user"
	"github.com/stretchr/testify/assert"
)

func TestNew_RejectsNegativeAmount(t *testing.T) {
	_, err := New("id-1", "Refund gone wrong", -10, Expense, "Groceries", time.Now())
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestNew_RejectsUnknownTypeAndCategory(t *testing.T) {
	_, err := New("id-1", "Mystery", 10, Type("TRANSFER"), "Groceries", time.Now())
	assert.ErrorIs(t, err, ErrUnknownType)

	_, err = New("id-2", "Mislabeled", 10, Expense, "Salary", time.Now())
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestNew_AcceptsZeroAmount(t *testing.T) {
	tx, err := New("id-1", "Free sample", 0, Expense, "Other", time.Now())
	assert.NoError(t, err)
	assert.Equal(t, 0.0, tx.Amount)
}

func TestServiceImpl_Create(t *testing.T) {
	// given
	repo := NewStubTransactionRepo()
	service := NewTransactionService(repo)
	ctx := user.WithUser(context.Background(), user.User{Id: 1})

	// when
	created, err := service.Create(ctx, "Rent", 1200, Expense, "Housing", time.Time{})

	// then
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Date.IsZero())

	stored, err := service.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, stored, 1)
	assert.Equal(t, "Rent", stored[0].Name)
}

func TestServiceImpl_Create_RequiresUser(t *testing.T) {
	service := NewTransactionService(NewStubTransactionRepo())

	_, err := service.Create(context.Background(), "Rent", 1200, Expense, "Housing", time.Now())

	assert.ErrorIs(t, err, user.ErrNoUser)
}

func TestRepoImpl_StoreAndGetAll(t *testing.T) {
	// given
	db := test_utils.SetupTestDB(t)
	userId := test_utils.InsertTestUser(t, db)
	repo := NewTransactionRepo(db)
	ctx := context.Background()

	older, err := New("tx-1", "Salary", 3500, Income, "Salary", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	newer, err := New("tx-2", "Rent", 1200, Expense, "Housing", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)

	// when
	assert.NoError(t, repo.Store(ctx, userId, older))
	assert.NoError(t, repo.Store(ctx, userId, newer))

	// then: newest first
	stored, err := repo.GetAll(ctx, userId)
	assert.NoError(t, err)
	assert.Len(t, stored, 2)
	assert.Equal(t, "tx-2", stored[0].ID)
	assert.Equal(t, "tx-1", stored[1].ID)
}

func TestRepoImpl_Delete_ScopedToOwner(t *testing.T) {
	// given
	db := test_utils.SetupTestDB(t)
	ownerId := test_utils.InsertTestUser(t, db)
	otherId := test_utils.InsertTestUser(t, db)
	repo := NewTransactionRepo(db)
	ctx := context.Background()

	tx, err := New("tx-1", "Rent", 1200, Expense, "Housing", time.Now())
	assert.NoError(t, err)
	assert.NoError(t, repo.Store(ctx, ownerId, tx))

	// when: another user tries to delete it
	deleted, err := repo.Delete(ctx, otherId, "tx-1")
	assert.NoError(t, err)
	assert.False(t, deleted)

	// then: the owner still can
	deleted, err = repo.Delete(ctx, ownerId, "tx-1")
	assert.NoError(t, err)
	assert.True(t, deleted)
}

func TestRepoImpl_GetAll_EmptyLedger(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	userId := test_utils.InsertTestUser(t, db)

	stored, err := NewTransactionRepo(db).GetAll(context.Background(), userId)

	assert.NoError(t, err)
	assert.Empty(t, stored)
}
