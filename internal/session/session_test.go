package session_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/ximnasio/gym-booking/internal/ledger"
	"github.com/ximnasio/gym-booking/internal/model"
	"github.com/ximnasio/gym-booking/internal/session"
)

func newDirectory(t *testing.T) *ledger.Ledger {
	t.Helper()
	l := ledger.New(ledger.Snapshot{}, ledger.WithBcryptCost(bcrypt.MinCost))
	if _, err := l.AddMember(ledger.MemberInput{Email: "admin@ximnasio.com", Password: "admin123", FirstName: "Carlos", Role: model.RoleAdmin}); err != nil {
		t.Fatalf("AddMember() error = %v", err)
	}
	if _, err := l.AddMember(ledger.MemberInput{Email: "usuario@ejemplo.com", Password: "user123", FirstName: "María"}); err != nil {
		t.Fatalf("AddMember() error = %v", err)
	}
	return l
}

func storages(t *testing.T) map[string]session.Storage {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return map[string]session.Storage{
		"memory": session.NewMemoryStorage(),
		"redis":  session.NewRedisStorage(rdb, time.Hour),
	}
}

func TestLoginPersistsAndRestores(t *testing.T) {
	dir := newDirectory(t)
	for name, store := range storages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := session.New(store, dir, "", 0)
			m, err := s.Login(ctx, "Admin@Ximnasio.com", "admin123")
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if !s.IsAuthenticated() || !s.IsAdmin() {
				t.Fatalf("flags after login: authenticated=%v admin=%v", s.IsAuthenticated(), s.IsAdmin())
			}

			raw, ok, err := store.Get(ctx, session.StorageKey)
			if err != nil || !ok {
				t.Fatalf("persisted record missing: ok=%v err=%v", ok, err)
			}
			if bytes.Contains(raw, []byte("$2a$")) {
				t.Errorf("persisted record contains the password hash")
			}

			reloaded := session.New(store, dir, "", 0)
			if reloaded.IsAuthenticated() {
				t.Fatalf("fresh session should start logged out")
			}
			if err := reloaded.Restore(ctx); err != nil {
				t.Fatalf("Restore() error = %v", err)
			}
			got, ok := reloaded.Identity()
			if !ok || got.Role != m.Role || got.ID != m.ID {
				t.Errorf("restored identity = %+v, want role %s id %s", got, m.Role, m.ID)
			}
		})
	}
}

func TestLoginFailures(t *testing.T) {
	dir := newDirectory(t)
	store := session.NewMemoryStorage()
	tests := []struct {
		name, email, secret string
	}{
		{"unknown email", "nobody@ejemplo.com", "user123"},
		{"wrong secret", "usuario@ejemplo.com", "USER123"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := session.New(store, dir, "", 0)
			if _, err := s.Login(context.Background(), tt.email, tt.secret); !errors.Is(err, session.ErrInvalidCredentials) {
				t.Fatalf("Login() error = %v, want %v", err, session.ErrInvalidCredentials)
			}
			if s.IsAuthenticated() {
				t.Errorf("failed login left an identity")
			}
			if _, ok, _ := store.Get(context.Background(), session.StorageKey); ok {
				t.Errorf("failed login persisted a record")
			}
		})
	}
}

func TestLoginDelayHonorsContext(t *testing.T) {
	s := session.New(session.NewMemoryStorage(), newDirectory(t), "", time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	if _, err := s.Login(ctx, "usuario@ejemplo.com", "user123"); !errors.Is(err, context.Canceled) {
		t.Fatalf("Login() error = %v, want context.Canceled", err)
	}
	if time.Since(start) > time.Second {
		t.Errorf("Login() ignored cancellation")
	}
}

func TestLoginDelayApplies(t *testing.T) {
	s := session.New(session.NewMemoryStorage(), newDirectory(t), "", 50*time.Millisecond)
	start := time.Now()
	if _, err := s.Login(context.Background(), "nobody@ejemplo.com", "x"); !errors.Is(err, session.ErrInvalidCredentials) {
		t.Fatalf("Login() error = %v", err)
	}
	if time.Since(start) < 50*time.Millisecond {
		t.Errorf("Login() returned before the delay")
	}
}

func TestLogoutAndUpdateIdentity(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStorage()
	s := session.New(store, newDirectory(t), "", 0)

	phone := "699000111"
	if _, ok, err := s.UpdateIdentity(ctx, ledger.MemberPatch{Phone: &phone}); ok || err != nil {
		t.Fatalf("UpdateIdentity() while logged out: ok=%v err=%v", ok, err)
	}
	if _, ok, _ := store.Get(ctx, session.StorageKey); ok {
		t.Fatalf("no-op update persisted a record")
	}

	if _, err := s.Login(ctx, "usuario@ejemplo.com", "user123"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	got, ok, err := s.UpdateIdentity(ctx, ledger.MemberPatch{Phone: &phone})
	if !ok || err != nil || got.Phone != phone || got.FirstName != "María" {
		t.Fatalf("UpdateIdentity() = %+v, ok=%v, err=%v", got, ok, err)
	}
	reloaded := session.New(store, newDirectory(t), "", 0)
	if err := reloaded.Restore(ctx); err != nil {
		t.Fatal(err)
	}
	if m, _ := reloaded.Identity(); m.Phone != phone {
		t.Errorf("persisted phone = %q, want %q", m.Phone, phone)
	}

	if err := s.Logout(ctx); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if s.IsAuthenticated() {
		t.Errorf("identity survived logout")
	}
	if _, ok, _ := store.Get(ctx, session.StorageKey); ok {
		t.Errorf("persisted record survived logout")
	}
}

func TestManagerIsolatesSessions(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStorage()
	mgr := session.NewManager(store, newDirectory(t), 0)

	a, b := session.NewID(), session.NewID()
	if _, err := mgr.Open(a).Login(ctx, "admin@ximnasio.com", "admin123"); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.Open(b).Login(ctx, "usuario@ejemplo.com", "user123"); err != nil {
		t.Fatal(err)
	}
	if err := mgr.Open(b).Logout(ctx); err != nil {
		t.Fatal(err)
	}

	sa := mgr.Open(a)
	if err := sa.Restore(ctx); err != nil || !sa.IsAdmin() {
		t.Errorf("session a: admin=%v err=%v", sa.IsAdmin(), err)
	}
	sb := mgr.Open(b)
	if err := sb.Restore(ctx); err != nil || sb.IsAuthenticated() {
		t.Errorf("session b: authenticated=%v err=%v", sb.IsAuthenticated(), err)
	}
	if got := session.Key(a); got != "ximnasio_user:"+a {
		t.Errorf("Key() = %s", got)
	}
}

func TestRedisStorageTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	store := session.NewRedisStorage(rdb, 30*time.Minute)

	if err := store.Set(context.Background(), "k", []byte("v")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if ttl := mr.TTL("k"); ttl != 30*time.Minute {
		t.Errorf("TTL = %v, want 30m", ttl)
	}
	mr.FastForward(31 * time.Minute)
	if _, ok, err := store.Get(context.Background(), "k"); ok || err != nil {
		t.Errorf("expired key: ok=%v err=%v", ok, err)
	}
}
