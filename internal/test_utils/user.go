package test_utils

import (
	"context"
	"database/sql"
	"testing"

	"github.com/BrayanU12/BudgetMate/pkg/user"
	"github.com/google/uuid"
)

// TestUser returns a fixed user for wiring test contexts.
func TestUser() user.User {
	return user.User{
		Id:    123,
		Uid:   uuid.NewString(),
		Name:  "Test User",
		Email: "test@example.com",
		Settings: user.Settings{
			Currency:         "USD",
			Locale:           "en-US",
			ColombianMode:    false,
			PaymentFrequency: user.PayMonthly,
		},
	}
}

// InsertTestUser persists a user row so foreign keys on user_id hold in
// repository tests, and returns its id.
func InsertTestUser(t *testing.T, db *sql.DB) int {
	t.Helper()

	result, err := db.ExecContext(context.Background(),
		`INSERT INTO users (uid, name, email, password_hash) VALUES (?, ?, ?, ?)`,
		uuid.NewString(), "Test User", uuid.NewString()+"@example.com", "not-a-real-hash",
	)
	if err != nil {
		t.Fatalf("failed to insert test user: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read test user id: %v", err)
	}
	return int(id)
}
