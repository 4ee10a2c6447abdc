package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ximnasio/gym-booking/internal/ledger"
	"github.com/ximnasio/gym-booking/internal/repository"
)

// SnapshotStore is the persistence the Snapshotter writes to.
// *repository.SnapshotRepo satisfies it.
type SnapshotStore interface {
	Save(ctx context.Context, version uint64, payload []byte) (int64, error)
	Latest(ctx context.Context) (repository.StoredSnapshot, error)
	Prune(ctx context.Context, keep int) (int64, error)
}

// Snapshotter periodically persists the ledger when its version moves.
type Snapshotter struct {
	ledger   *ledger.Ledger
	store    SnapshotStore
	interval time.Duration
	keep     int

	lastSaved uint64
}

// NewSnapshotter panics on nil dependencies.  interval <= 0 defaults to
// 30s.
func NewSnapshotter(l *ledger.Ledger, store SnapshotStore, interval time.Duration, keep int) *Snapshotter {
	if l == nil || store == nil {
		panic("nil dependency passed to NewSnapshotter")
	}
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Snapshotter{ledger: l, store: store, interval: interval, keep: keep}
}

// RestoreLatest loads the newest stored snapshot into the ledger.  It
// reports false when nothing has been stored yet.
func (s *Snapshotter) RestoreLatest(ctx context.Context) (bool, error) {
	stored, err := s.store.Latest(ctx)
	if errors.Is(err, repository.ErrNoSnapshot) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	var snap ledger.Snapshot
	if err := json.Unmarshal(stored.Payload, &snap); err != nil {
		return false, fmt.Errorf("decode snapshot %d: %w", stored.ID, err)
	}
	s.ledger.Restore(snap)
	s.lastSaved = s.ledger.Version()
	slog.Info("snapshot: ledger restored", "id", stored.ID, "saved_at", stored.CreatedAt)
	return true, nil
}

// SaveIfChanged writes a snapshot when the ledger changed since the last
// save.  It reports whether a row was written.
func (s *Snapshotter) SaveIfChanged(ctx context.Context) (bool, error) {
	v := s.ledger.Version()
	if v == s.lastSaved {
		return false, nil
	}
	payload, err := json.Marshal(s.ledger.Snapshot())
	if err != nil {
		return false, fmt.Errorf("encode snapshot: %w", err)
	}
	if _, err := s.store.Save(ctx, v, payload); err != nil {
		return false, err
	}
	s.lastSaved = v
	if s.keep > 0 {
		if n, err := s.store.Prune(ctx, s.keep); err != nil {
			slog.Warn("snapshot: prune failed", "err", err)
		} else if n > 0 {
			slog.Debug("snapshot: pruned", "rows", n)
		}
	}
	return true, nil
}

// Run saves on every tick until ctx is cancelled, then makes one final
// save with a fresh short deadline.
func (s *Snapshotter) Run(ctx context.Context) {
	t := time.NewTicker(s.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			final, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if _, err := s.SaveIfChanged(final); err != nil {
				slog.Error("snapshot: final save failed", "err", err)
			}
			cancel()
			return
		case <-t.C:
			saveCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			if _, err := s.SaveIfChanged(saveCtx); err != nil {
				slog.Error("snapshot: save failed", "err", err)
			}
			cancel()
		}
	}
}
