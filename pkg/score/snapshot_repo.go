package score

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// Snapshot is the single persisted "previous score" per user. It is only
// replaced through Store; reading the live score never touches it.
type Snapshot struct {
	Score     int
	CreatedAt time.Time
}

type SnapshotRepo interface {
	Latest(ctx context.Context, userId int) (Snapshot, bool, error)
	Store(ctx context.Context, userId int, score int, at time.Time) error
}

type SnapshotRepoImpl struct {
	db *sql.DB
}

func NewSnapshotRepo(db *sql.DB) *SnapshotRepoImpl {
	return &SnapshotRepoImpl{db: db}
}

func (r *SnapshotRepoImpl) Latest(ctx context.Context, userId int) (Snapshot, bool, error) {
	query := "SELECT score, created_at FROM score_snapshots WHERE user_id = ?"
	var snapshot Snapshot
	err := r.db.QueryRowContext(ctx, query, userId).Scan(&snapshot.Score, &snapshot.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, false, nil
	} else if err != nil {
		err := fmt.Errorf("could not query score snapshot: %w", err)
		log.Error(err)
		return Snapshot{}, false, err
	}
	return snapshot, true, nil
}

func (r *SnapshotRepoImpl) Store(ctx context.Context, userId int, score int, at time.Time) error {
	query := `INSERT INTO score_snapshots (user_id, score, created_at) VALUES (?, ?, ?)
				ON CONFLICT (user_id) DO UPDATE SET score = excluded.score, created_at = excluded.created_at`
	_, err := r.db.ExecContext(ctx, query, userId, score, at)
	if err != nil {
		err := fmt.Errorf("could not store score snapshot: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
