package transaction

import (
	"context"
)

// StubTransactionRepo is an in-memory Repo for tests in this and other packages.
type StubTransactionRepo struct {
	byUser map[int][]Transaction
}

func NewStubTransactionRepo() *StubTransactionRepo {
	return &StubTransactionRepo{byUser: make(map[int][]Transaction)}
}

func (s *StubTransactionRepo) Store(ctx context.Context, userId int, tx Transaction) error {
	s.byUser[userId] = append(s.byUser[userId], tx)
	return nil
}

func (s *StubTransactionRepo) GetAll(ctx context.Context, userId int) ([]Transaction, error) {
	return s.byUser[userId], nil
}

func (s *StubTransactionRepo) Delete(ctx context.Context, userId int, id string) (bool, error) {
	txs := s.byUser[userId]
	for i, tx := range txs {
		if tx.ID == id {
			s.byUser[userId] = append(txs[:i], txs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubTransactionRepo) Reset() {
	s.byUser = make(map[int][]Transaction)
}
