package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// StoredSnapshot is a row of the ledger_snapshots table.
//
// Fields:
//  ID        – auto-increment key; higher is newer.
//  Version   – ledger mutation counter at save time.
//  Payload   – JSON encoded ledger snapshot.
//  CreatedAt – save time in UTC.
type StoredSnapshot struct {
	ID        int64
	Version   uint64
	Payload   []byte
	CreatedAt time.Time
}

const createSnapshotsTable = `CREATE TABLE IF NOT EXISTS ledger_snapshots (
  id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
  version BIGINT UNSIGNED NOT NULL,
  payload LONGBLOB NOT NULL,
  created_at DATETIME NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// SnapshotRepo reads and writes ledger snapshots.
type SnapshotRepo struct {
	db *sql.DB
}

// NewSnapshotRepo panics if db is nil.
func NewSnapshotRepo(db *sql.DB) *SnapshotRepo {
	if db == nil {
		panic("nil db passed to NewSnapshotRepo")
	}
	return &SnapshotRepo{db: db}
}

// EnsureSchema creates the snapshots table when missing.
func (r *SnapshotRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createSnapshotsTable); err != nil {
		return fmt.Errorf("create ledger_snapshots: %w", err)
	}
	return nil
}

// Save inserts a snapshot and returns its row ID.
func (r *SnapshotRepo) Save(ctx context.Context, version uint64, payload []byte) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO ledger_snapshots (version, payload, created_at) VALUES (?, ?, ?)`,
		version, payload, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("insert snapshot: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("snapshot id: %w", err)
	}
	return id, nil
}

// Latest returns the newest snapshot or ErrNoSnapshot.
func (r *SnapshotRepo) Latest(ctx context.Context) (StoredSnapshot, error) {
	var s StoredSnapshot
	err := r.db.QueryRowContext(ctx,
		`SELECT id, version, payload, created_at FROM ledger_snapshots ORDER BY id DESC LIMIT 1`,
	).Scan(&s.ID, &s.Version, &s.Payload, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return StoredSnapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return StoredSnapshot{}, fmt.Errorf("select latest snapshot: %w", err)
	}
	return s, nil
}

// Prune deletes all but the newest keep snapshots and returns how many
// rows were removed.  keep < 1 is treated as 1.
func (r *SnapshotRepo) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 1 {
		keep = 1
	}
	var cutoff int64
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM ledger_snapshots ORDER BY id DESC LIMIT 1 OFFSET ?`, keep-1,
	).Scan(&cutoff)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("select prune cutoff: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM ledger_snapshots WHERE id < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune snapshots: %w", err)
	}
	return res.RowsAffected()
}
