package goal

import (
	"errors"
	"math"
	"time"
)

var (
	ErrEmptyName         = errors.New("goal name must not be empty")
	ErrNonPositiveTarget = errors.New("goal target amount must be positive")
)

// Goal is a savings target. CurrentAmount stays within [0, TargetAmount];
// deposits clamp rather than overshoot.
type Goal struct {
	ID            string
	Name          string
	TargetAmount  float64
	CurrentAmount float64
	Emoji         string
	Color         string
	Deadline      *time.Time
}

func New(id, name string, targetAmount float64, emoji, color string, deadline *time.Time) (Goal, error) {
	if name == "" {
		return Goal{}, ErrEmptyName
	}
	if targetAmount <= 0 {
		return Goal{}, ErrNonPositiveTarget
	}
	if emoji == "" {
		emoji = "🎯"
	}
	return Goal{
		ID:           id,
		Name:         name,
		TargetAmount: targetAmount,
		Emoji:        emoji,
		Color:        color,
		Deadline:     deadline,
	}, nil
}

// DepositIncrement is the simulated deposit size: a fixed fraction of the
// target, rounded up. Not a user-entered amount.
func DepositIncrement(targetAmount, fraction float64) float64 {
	return math.Ceil(targetAmount * fraction)
}

// Progress is the completion percentage in [0, 100].
func (g Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount * 100
}

func (g Goal) Completed() bool {
	return g.CurrentAmount >= g.TargetAmount
}

// EstimateMonths projects completion time at a synthetic monthly contribution
// rate. A completed goal estimates zero.
func (g Goal) EstimateMonths(monthlyRate float64) int {
	remaining := g.TargetAmount - g.CurrentAmount
	if remaining <= 0 || monthlyRate <= 0 {
		return 0
	}
	return int(math.Ceil(remaining / monthlyRate))
}
