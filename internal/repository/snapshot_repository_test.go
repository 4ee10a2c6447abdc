package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMock(t *testing.T) (*SnapshotRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewSnapshotRepo(db), mock
}

func TestSave(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO ledger_snapshots (version, payload, created_at) VALUES (?, ?, ?)`)).
		WithArgs(uint64(7), []byte(`{"members":[]}`), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := repo.Save(context.Background(), 7, []byte(`{"members":[]}`))
	if err != nil || id != 42 {
		t.Fatalf("Save() = %d, %v", id, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestLatest(t *testing.T) {
	repo, mock := newMock(t)
	query := regexp.QuoteMeta(`SELECT id, version, payload, created_at FROM ledger_snapshots ORDER BY id DESC LIMIT 1`)
	created := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(query).WillReturnRows(
		sqlmock.NewRows([]string{"id", "version", "payload", "created_at"}).AddRow(3, 11, []byte(`{}`), created))
	mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows([]string{"id", "version", "payload", "created_at"}))

	got, err := repo.Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if got.ID != 3 || got.Version != 11 || string(got.Payload) != "{}" || !got.CreatedAt.Equal(created) {
		t.Errorf("Latest() = %+v", got)
	}
	if _, err := repo.Latest(context.Background()); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("Latest() on empty table error = %v, want %v", err, ErrNoSnapshot)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPrune(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM ledger_snapshots ORDER BY id DESC LIMIT 1 OFFSET ?`)).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(20))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM ledger_snapshots WHERE id < ?`)).
		WithArgs(int64(20)).
		WillReturnResult(sqlmock.NewResult(0, 15))

	n, err := repo.Prune(context.Background(), 5)
	if err != nil || n != 15 {
		t.Fatalf("Prune() = %d, %v", n, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPruneNothingToDelete(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM ledger_snapshots ORDER BY id DESC LIMIT 1 OFFSET ?`)).
		WithArgs(0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	n, err := repo.Prune(context.Background(), 0)
	if err != nil || n != 0 {
		t.Fatalf("Prune() = %d, %v", n, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestEnsureSchema(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS ledger_snapshots").WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
