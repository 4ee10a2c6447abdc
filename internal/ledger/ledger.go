// Package ledger owns the gym's mutable booking state: members, classes,
// schedule slots and reservations.  A Ledger is an explicit store object;
// callers never touch its collections directly and every read returns a
// copy.  All methods are safe for concurrent use.
package ledger

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ximnasio/gym-booking/internal/model"
)

// ID prefixes per entity.
const (
	memberPrefix      = "u"
	classPrefix       = "c"
	slotPrefix        = "h"
	reservationPrefix = "r"
)

// Ledger is the in-memory booking store.
type Ledger struct {
	mu           sync.RWMutex
	members      []model.Member
	classes      []model.Class
	slots        []model.ScheduleSlot
	reservations []model.Reservation
	catalog      model.Catalog
	version      uint64

	now        func() time.Time
	loc        *time.Location
	bcryptCost int
	newID      func(prefix string) string
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the time source used for dates and penalties.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}

// WithLocation sets the time zone slot dates and times are interpreted in.
func WithLocation(loc *time.Location) Option {
	return func(l *Ledger) {
		if loc != nil {
			l.loc = loc
		}
	}
}

// WithBcryptCost sets the cost used when hashing new member secrets.
func WithBcryptCost(cost int) Option {
	return func(l *Ledger) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			l.bcryptCost = cost
		}
	}
}

// WithIDGenerator replaces the uuid based identifier generator.
func WithIDGenerator(gen func(prefix string) string) Option {
	return func(l *Ledger) {
		if gen != nil {
			l.newID = gen
		}
	}
}

// New builds a ledger holding a copy of the given initial state.
func New(initial Snapshot, opts ...Option) *Ledger {
	l := &Ledger{
		now:        time.Now,
		loc:        time.Local,
		bcryptCost: bcrypt.DefaultCost,
		newID:      uuidID,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.load(initial)
	return l
}

func uuidID(prefix string) string { return prefix + "-" + uuid.NewString() }

// Version returns a counter incremented on every successful mutation.
func (l *Ledger) Version() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.version
}

// Location returns the time zone used to interpret slot times.
func (l *Ledger) Location() *time.Location { return l.loc }

// Catalog returns the read-only public catalog.
func (l *Ledger) Catalog() model.Catalog {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneCatalog(l.catalog)
}

// today returns the current calendar date in the ledger location.
func (l *Ledger) today() string { return model.FormatDate(l.now().In(l.loc)) }

// touch records a mutation.  Callers hold the write lock.
func (l *Ledger) touch() { l.version++ }

func (l *Ledger) memberIndex(id string) int {
	for i := range l.members {
		if l.members[i].ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) memberIndexByEmail(email string) int {
	for i := range l.members {
		if strings.EqualFold(l.members[i].Email, email) {
			return i
		}
	}
	return -1
}

func (l *Ledger) classIndex(id string) int {
	for i := range l.classes {
		if l.classes[i].ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) slotIndex(id string) int {
	for i := range l.slots {
		if l.slots[i].ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) reservationIndex(id string) int {
	for i := range l.reservations {
		if l.reservations[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneSlot(s model.ScheduleSlot) model.ScheduleSlot {
	s.Enrolled = append([]string(nil), s.Enrolled...)
	if s.Enrolled == nil {
		s.Enrolled = []string{}
	}
	return s
}

func cloneSlots(in []model.ScheduleSlot) []model.ScheduleSlot {
	out := make([]model.ScheduleSlot, len(in))
	for i, s := range in {
		out[i] = cloneSlot(s)
	}
	return out
}

func cloneCatalog(c model.Catalog) model.Catalog {
	out := model.Catalog{
		Facilities: make([]model.Facility, len(c.Facilities)),
		Plans:      make([]model.MembershipPlan, len(c.Plans)),
		Pricing:    append([]model.ClassPricing(nil), c.Pricing...),
		Hours:      append([]model.OpeningHours(nil), c.Hours...),
		Contact:    c.Contact,
	}
	for i, f := range c.Facilities {
		f.Features = append([]string(nil), f.Features...)
		out.Facilities[i] = f
	}
	for i, p := range c.Plans {
		p.Features = append([]string(nil), p.Features...)
		out.Plans[i] = p
	}
	return out
}

func removeString(list []string, v string) []string {
	out := list[:0]
	for _, s := range list {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}
