// Package session holds the identity of a logged-in member.  A Session
// mirrors the identity record into a Storage under a fixed key so it
// survives reloads, and a Manager hands out one Session per client.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ximnasio/gym-booking/internal/ledger"
	"github.com/ximnasio/gym-booking/internal/model"
)

// StorageKey is the key the current identity is persisted under.
const StorageKey = "ximnasio_user"

// DefaultLoginDelay is the pause applied before every credential check.
const DefaultLoginDelay = 500 * time.Millisecond

// ErrInvalidCredentials is the single failure reported by Login.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Directory resolves credentials to a member.  *ledger.Ledger
// implements it.
type Directory interface {
	Authenticate(email, secret string) (model.Member, bool)
}

// Session is one client's identity session.
type Session struct {
	store Storage
	dir   Directory
	key   string
	delay time.Duration

	mu      sync.RWMutex
	current *model.Member
}

// New returns a logged-out session persisting under key.  An empty key
// falls back to StorageKey.
func New(store Storage, dir Directory, key string, delay time.Duration) *Session {
	if store == nil || dir == nil {
		panic("nil dependency passed to session.New")
	}
	if key == "" {
		key = StorageKey
	}
	return &Session{store: store, dir: dir, key: key, delay: delay}
}

// Key returns the storage key of the session.
func (s *Session) Key() string { return s.key }

// Login waits the configured delay, then checks the credentials.  On
// success the member becomes the current identity and is persisted.
func (s *Session) Login(ctx context.Context, email, secret string) (model.Member, error) {
	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return model.Member{}, ctx.Err()
		case <-t.C:
		}
	}
	m, ok := s.dir.Authenticate(email, secret)
	if !ok {
		return model.Member{}, ErrInvalidCredentials
	}
	m.PasswordHash = ""
	if err := s.persist(ctx, m); err != nil {
		return model.Member{}, err
	}
	s.mu.Lock()
	s.current = &m
	s.mu.Unlock()
	return m, nil
}

// Logout clears the identity and removes the persisted copy.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	if err := s.store.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// UpdateIdentity merges patch into the current identity and persists the
// result.  It reports ok=false and does nothing when logged out.
func (s *Session) UpdateIdentity(ctx context.Context, patch ledger.MemberPatch) (model.Member, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return model.Member{}, false, nil
	}
	next := patch.Apply(*s.current)
	if err := s.persist(ctx, next); err != nil {
		return model.Member{}, true, err
	}
	s.current = &next
	return next, true, nil
}

// Restore loads the persisted identity, replacing the in-memory one.  A
// missing record leaves the session logged out.
func (s *Session) Restore(ctx context.Context) error {
	raw, ok, err := s.store.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !ok {
		s.current = nil
		return nil
	}
	var m model.Member
	if err := json.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("decode session: %w", err)
	}
	s.current = &m
	return nil
}

// Identity returns the current identity.
func (s *Session) Identity() (model.Member, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return model.Member{}, false
	}
	return *s.current, true
}

// IsAuthenticated reports whether an identity is present.
func (s *Session) IsAuthenticated() bool {
	_, ok := s.Identity()
	return ok
}

// IsAdmin reports whether the identity has the admin role.
func (s *Session) IsAdmin() bool {
	m, ok := s.Identity()
	return ok && m.IsAdmin()
}

func (s *Session) persist(ctx context.Context, m model.Member) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.store.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
