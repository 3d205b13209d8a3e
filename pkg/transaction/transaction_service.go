package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/BrayanU12/BudgetMate/pkg/user"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	Create(ctx context.Context, name string, amount float64, txType Type, category string, date time.Time) (Transaction, error)
	List(ctx context.Context) ([]Transaction, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ServiceImpl struct {
	repo Repo
}

func NewTransactionService(repo Repo) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) Create(ctx context.Context, name string, amount float64, txType Type, category string, date time.Time) (Transaction, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Transaction{}, fmt.Errorf("failed to get current user: %w", err)
	}

	if date.IsZero() {
		date = time.Now()
	}
	tx, err := New(uuid.NewString(), name, amount, txType, category, date)
	if err != nil {
		return Transaction{}, err
	}

	if err := s.repo.Store(ctx, userId, tx); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

func (s *ServiceImpl) List(ctx context.Context) ([]Transaction, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId)
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
		log.Warnf("transaction not deleted, probably because it does not exist (%s) or the user (%d) is not the owner", id, userId)
	}
	return deleted, nil
}
