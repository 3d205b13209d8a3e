package score

import (
	"context"
	"time"
)

type StubSnapshotRepo struct {
	byUser map[int]Snapshot
}

func NewStubSnapshotRepo() *StubSnapshotRepo {
	return &StubSnapshotRepo{byUser: make(map[int]Snapshot)}
}

func (s *StubSnapshotRepo) Latest(ctx context.Context, userId int) (Snapshot, bool, error) {
	snapshot, found := s.byUser[userId]
	return snapshot, found, nil
}

func (s *StubSnapshotRepo) Store(ctx context.Context, userId int, score int, at time.Time) error {
	s.byUser[userId] = Snapshot{Score: score, CreatedAt: at}
	return nil
}

func (s *StubSnapshotRepo) Reset() {
	s.byUser = make(map[int]Snapshot)
}
