package transaction

import (
	"errors"
	"fmt"
	"time"
)

type Type string

const (
	Income  Type = "INCOME"
	Expense Type = "EXPENSE"
	Saving  Type = "SAVING"
)

// Categories is the fixed per-type category set offered by the app. The
// needs/wants membership rule lives in configuration, not here; this set
// only constrains what a transaction may be labeled with.
var Categories = map[Type][]string{
	Income:  {"Salary", "Freelance", "Investments", "Gifts", "Other"},
	Expense: {"Housing", "Groceries", "Transport", "Utilities", "Leisure", "Health", "Education", "Debt", "Dining Out", "Other"},
	Saving:  {"Emergency Fund", "Vacation", "Retirement", "Vehicle", "Home Purchase", "Investment"},
}

var (
	ErrNegativeAmount  = errors.New("transaction amount must not be negative")
	ErrUnknownType     = errors.New("unknown transaction type")
	ErrUnknownCategory = errors.New("unknown category for transaction type")
)

// Transaction is immutable once created; the only mutation the ledger
// supports afterwards is deletion.
type Transaction struct {
	ID       string
	Name     string
	Amount   float64
	Type     Type
	Category string
	Date     time.Time
}

// New validates the construction contract: a non-negative amount, a known
// type, and a category from that type's fixed set.
func New(id, name string, amount float64, txType Type, category string, date time.Time) (Transaction, error) {
	if amount < 0 {
		return Transaction{}, ErrNegativeAmount
	}
	categories, ok := Categories[txType]
	if !ok {
		return Transaction{}, fmt.Errorf("%w: %q", ErrUnknownType, txType)
	}
	if !contains(categories, category) {
		return Transaction{}, fmt.Errorf("%w: %q for %s", ErrUnknownCategory, category, txType)
	}
	return Transaction{
		ID:       id,
		Name:     name,
		Amount:   amount,
		Type:     txType,
		Category: category,
		Date:     date,
	}, nil
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
