package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ximnasio/gym-booking/internal/ledger"
	"github.com/ximnasio/gym-booking/internal/repository"
)

type fakeStore struct {
	mu      sync.Mutex
	rows    []repository.StoredSnapshot
	pruned  []int
	saveErr error
}

func (f *fakeStore) Save(_ context.Context, version uint64, payload []byte) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return 0, f.saveErr
	}
	id := int64(len(f.rows) + 1)
	f.rows = append(f.rows, repository.StoredSnapshot{ID: id, Version: version, Payload: payload, CreatedAt: time.Now()})
	return id, nil
}

func (f *fakeStore) Latest(context.Context) (repository.StoredSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.rows) == 0 {
		return repository.StoredSnapshot{}, repository.ErrNoSnapshot
	}
	return f.rows[len(f.rows)-1], nil
}

func (f *fakeStore) Prune(_ context.Context, keep int) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pruned = append(f.pruned, keep)
	return 0, nil
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

func newTestLedger() *ledger.Ledger {
	return ledger.New(ledger.Snapshot{}, ledger.WithBcryptCost(bcrypt.MinCost))
}

func TestSaveIfChanged(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	store := &fakeStore{}
	s := NewSnapshotter(l, store, time.Minute, 3)

	if _, err := l.AddClass(ledger.ClassInput{Name: "Spinning", Instructor: "Ana", DurationMinutes: 45, Capacity: 20, Category: "cardio"}); err != nil {
		t.Fatal(err)
	}
	saved, err := s.SaveIfChanged(ctx)
	if err != nil || !saved {
		t.Fatalf("SaveIfChanged() = %v, %v; want true", saved, err)
	}
	saved, err = s.SaveIfChanged(ctx)
	if err != nil || saved {
		t.Fatalf("second SaveIfChanged() = %v, %v; want false", saved, err)
	}
	if store.count() != 1 || len(store.pruned) != 1 || store.pruned[0] != 3 {
		t.Errorf("rows=%d pruned=%v", store.count(), store.pruned)
	}

	var snap ledger.Snapshot
	if err := json.Unmarshal(store.rows[0].Payload, &snap); err != nil {
		t.Fatal(err)
	}
	if len(snap.Classes) != 1 || snap.Classes[0].Name != "Spinning" {
		t.Errorf("payload classes = %+v", snap.Classes)
	}
}

func TestSaveIfChangedError(t *testing.T) {
	l := newTestLedger()
	boom := errors.New("db down")
	s := NewSnapshotter(l, &fakeStore{saveErr: boom}, time.Minute, 0)
	if _, err := l.AddClass(ledger.ClassInput{Name: "Yoga", Instructor: "Laura", DurationMinutes: 60, Capacity: 15, Category: "flexibilidad"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveIfChanged(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("SaveIfChanged() error = %v, want %v", err, boom)
	}
}

func TestRestoreLatest(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{}
	s := NewSnapshotter(newTestLedger(), store, time.Minute, 0)
	if ok, err := s.RestoreLatest(ctx); ok || err != nil {
		t.Fatalf("RestoreLatest() on empty store = %v, %v", ok, err)
	}

	src := newTestLedger()
	m, err := src.AddMember(ledger.MemberInput{Email: "ana@ejemplo.com", Password: "secret1", FirstName: "Ana"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewSnapshotter(src, store, time.Minute, 0).SaveIfChanged(ctx); err != nil {
		t.Fatal(err)
	}

	dst := newTestLedger()
	restorer := NewSnapshotter(dst, store, time.Minute, 0)
	if ok, err := restorer.RestoreLatest(ctx); !ok || err != nil {
		t.Fatalf("RestoreLatest() = %v, %v", ok, err)
	}
	if _, ok := dst.Authenticate("ana@ejemplo.com", "secret1"); !ok {
		t.Errorf("restored member %s cannot authenticate", m.ID)
	}
	if saved, _ := restorer.SaveIfChanged(ctx); saved {
		t.Errorf("restore alone should not trigger a save")
	}
}

func TestRunFinalSave(t *testing.T) {
	l := newTestLedger()
	store := &fakeStore{}
	s := NewSnapshotter(l, store, time.Hour, 0)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() { s.Run(ctx); close(done) }()

	if _, err := l.AddClass(ledger.ClassInput{Name: "Zumba", Instructor: "Sofía", DurationMinutes: 50, Capacity: 25, Category: "grupal"}); err != nil {
		t.Fatal(err)
	}
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not stop")
	}
	if store.count() != 1 {
		t.Errorf("final save rows = %d, want 1", store.count())
	}
}
