package user_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/BrayanU12/BudgetMate/internal/test_utils"
	"github.com/BrayanU12/BudgetMate/pkg/user"
	"github.com/stretchr/testify/assert"
)

func countRows(t *testing.T, db *sql.DB, table string, userId int) int {
	t.Helper()
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM "+table+" WHERE user_id = ?", userId).Scan(&count)
	assert.NoError(t, err)
	return count
}

func TestRepoImpl_DeleteUser_CascadesToOwnedData(t *testing.T) {
	// given: a user owning a transaction, a goal, and a score snapshot
	db := test_utils.SetupTestDB(t)
	repo := user.NewUserRepo(db)
	ctx := context.Background()
	userId := test_utils.InsertTestUser(t, db)

	_, err := db.Exec(
		`INSERT INTO transactions (id, user_id, name, amount, type, category, date) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		"tx-1", userId, "Rent", 1200.0, "EXPENSE", "Housing", time.Now())
	assert.NoError(t, err)
	_, err = db.Exec(
		`INSERT INTO goals (id, user_id, name, target_amount, current_amount, emoji, color) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		"g-1", userId, "Vacation", 5000.0, 1200.0, "🎯", "")
	assert.NoError(t, err)
	_, err = db.Exec(
		`INSERT INTO score_snapshots (user_id, score, created_at) VALUES (?, ?, ?)`,
		userId, 72, time.Now())
	assert.NoError(t, err)

	// when
	assert.NoError(t, repo.DeleteUser(ctx, userId))

	// then: the account and everything it owned are gone
	_, err = repo.GetUser(ctx, userId)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.Equal(t, 0, countRows(t, db, "transactions", userId))
	assert.Equal(t, 0, countRows(t, db, "goals", userId))
	assert.Equal(t, 0, countRows(t, db, "score_snapshots", userId))
}

func TestRepoImpl_DeleteUser_LeavesOtherUsersIntact(t *testing.T) {
	// given
	db := test_utils.SetupTestDB(t)
	repo := user.NewUserRepo(db)
	ctx := context.Background()
	doomedId := test_utils.InsertTestUser(t, db)
	survivorId := test_utils.InsertTestUser(t, db)

	_, err := db.Exec(
		`INSERT INTO transactions (id, user_id, name, amount, type, category, date) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		"tx-1", survivorId, "Salary", 3500.0, "INCOME", "Salary", time.Now())
	assert.NoError(t, err)

	// when
	assert.NoError(t, repo.DeleteUser(ctx, doomedId))

	// then
	_, err = repo.GetUser(ctx, survivorId)
	assert.NoError(t, err)
	assert.Equal(t, 1, countRows(t, db, "transactions", survivorId))
}
