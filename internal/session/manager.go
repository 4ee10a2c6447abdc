package session

import (
	"time"

	"github.com/google/uuid"
)

// Manager opens sessions sharing one Storage and Directory.  Each
// session ID maps to its own key below StorageKey.
type Manager struct {
	store Storage
	dir   Directory
	delay time.Duration
}

// NewManager panics if store or dir is nil.
func NewManager(store Storage, dir Directory, loginDelay time.Duration) *Manager {
	if store == nil || dir == nil {
		panic("nil dependency passed to session.NewManager")
	}
	return &Manager{store: store, dir: dir, delay: loginDelay}
}

// NewID returns a fresh random session ID.
func NewID() string { return uuid.NewString() }

// Key returns the storage key of session sid.
func Key(sid string) string {
	if sid == "" {
		return StorageKey
	}
	return StorageKey + ":" + sid
}

// Open returns the session for sid.  The caller decides whether to
// Restore it or Login into it.
func (m *Manager) Open(sid string) *Session {
	return New(m.store, m.dir, Key(sid), m.delay)
}
