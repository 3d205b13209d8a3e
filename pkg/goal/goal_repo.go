package goal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrGoalNotFound = errors.New("goal not found")

type Repo interface {
	Store(ctx context.Context, userId int, goal Goal) error
	GetAll(ctx context.Context, userId int) ([]Goal, error)
	Get(ctx context.Context, userId int, id string) (Goal, error)
	UpdateCurrentAmount(ctx context.Context, userId int, id string, amount float64) error
	Delete(ctx context.Context, userId int, id string) (bool, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewGoalRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Store(ctx context.Context, userId int, goal Goal) error {
	query := `INSERT INTO goals (id, user_id, name, target_amount, current_amount, emoji, color, deadline)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		goal.ID,
		userId,
		goal.Name,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.Emoji,
		goal.Color,
		goal.Deadline,
	)
	if err != nil {
		err := fmt.Errorf("could not store goal: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepoImpl) GetAll(ctx context.Context, userId int) ([]Goal, error) {
	query := `SELECT id, name, target_amount, current_amount, emoji, color, deadline
				FROM goals WHERE user_id = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query goals: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var goals []Goal
	for rows.Next() {
		goal, err := scanGoal(rows.Scan)
		if err != nil {
			log.Warnf("skipping malformed goal row: %v", err)
			continue
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return goals, nil
}

func (r *RepoImpl) Get(ctx context.Context, userId int, id string) (Goal, error) {
	query := `SELECT id, name, target_amount, current_amount, emoji, color, deadline
				FROM goals WHERE id = ? AND user_id = ?`
	goal, err := scanGoal(r.db.QueryRowContext(ctx, query, id, userId).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Goal{}, ErrGoalNotFound
	} else if err != nil {
		err := fmt.Errorf("could not query goal: %w", err)
		log.Error(err)
		return Goal{}, err
	}
	return goal, nil
}

func (r *RepoImpl) UpdateCurrentAmount(ctx context.Context, userId int, id string, amount float64) error {
	query := `UPDATE goals SET current_amount = ? WHERE id = ? AND user_id = ?`
	result, err := r.db.ExecContext(ctx, query, amount, id, userId)
	if err != nil {
		err := fmt.Errorf("could not update goal amount: %w", err)
		log.Error(err)
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return err
	}
	if rowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *RepoImpl) Delete(ctx context.Context, userId int, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM goals WHERE id = ? AND user_id = ?", id, userId)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func scanGoal(scan func(dest ...any) error) (Goal, error) {
	var goal Goal
	var deadline sql.NullTime
	if err := scan(
		&goal.ID,
		&goal.Name,
		&goal.TargetAmount,
		&goal.CurrentAmount,
		&goal.Emoji,
		&goal.Color,
		&deadline,
	); err != nil {
		return Goal{}, err
	}
	if deadline.Valid {
		goal.Deadline = &deadline.Time
	}
	return goal, nil
}
