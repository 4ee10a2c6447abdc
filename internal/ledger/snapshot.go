package ledger

import "github.com/ximnasio/gym-booking/internal/model"

// Snapshot is a full copy of the ledger state.  It is what fixtures
// produce, what New and Restore consume, and what the snapshot
// repository persists.  Member password hashes are excluded from the
// member JSON, so Credentials carries them keyed by member ID.
type Snapshot struct {
	Members      []model.Member       `json:"members"`
	Credentials  map[string]string    `json:"credentials,omitempty"`
	Classes      []model.Class        `json:"classes"`
	Slots        []model.ScheduleSlot `json:"slots"`
	Reservations []model.Reservation  `json:"reservations"`
	Catalog      model.Catalog        `json:"catalog"`
}

// Snapshot returns a deep copy of the current state.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s := Snapshot{
		Members:      append([]model.Member(nil), l.members...),
		Credentials:  make(map[string]string, len(l.members)),
		Classes:      append([]model.Class(nil), l.classes...),
		Slots:        cloneSlots(l.slots),
		Reservations: append([]model.Reservation(nil), l.reservations...),
		Catalog:      cloneCatalog(l.catalog),
	}
	for _, m := range l.members {
		if m.PasswordHash != "" {
			s.Credentials[m.ID] = m.PasswordHash
		}
	}
	return s
}

// Restore replaces the whole state with a copy of s.
func (l *Ledger) Restore(s Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.load(s)
	l.touch()
}

// load copies s into the ledger.  Callers hold the write lock or own l.
func (l *Ledger) load(s Snapshot) {
	l.members = append([]model.Member(nil), s.Members...)
	for i := range l.members {
		if h, ok := s.Credentials[l.members[i].ID]; ok && l.members[i].PasswordHash == "" {
			l.members[i].PasswordHash = h
		}
	}
	l.classes = append([]model.Class(nil), s.Classes...)
	l.slots = cloneSlots(s.Slots)
	l.reservations = append([]model.Reservation(nil), s.Reservations...)
	l.catalog = cloneCatalog(s.Catalog)
}
