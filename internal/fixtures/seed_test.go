package fixtures_test

import (
	"reflect"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ximnasio/gym-booking/internal/fixtures"
	"github.com/ximnasio/gym-booking/internal/ledger"
	"github.com/ximnasio/gym-booking/internal/model"
)

var day = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func seed(t *testing.T, opts fixtures.Options) ledger.Snapshot {
	t.Helper()
	opts.Location = time.UTC
	opts.BcryptCost = bcrypt.MinCost
	snap, err := fixtures.Seed(day, opts)
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	return snap
}

func TestScheduleShape(t *testing.T) {
	snap := seed(t, fixtures.Options{})
	if len(snap.Slots) != 19*fixtures.ScheduleDays {
		t.Fatalf("slots = %d, want %d", len(snap.Slots), 19*fixtures.ScheduleDays)
	}

	byID := map[string]model.ScheduleSlot{}
	for _, s := range snap.Slots {
		if _, dup := byID[s.ID]; dup {
			t.Fatalf("duplicate slot id %s", s.ID)
		}
		byID[s.ID] = s
	}

	tests := []struct {
		id, class, date, start, end string
		price                       float64
	}{
		{"h1", "1", "2025-03-10", "07:00", "08:00", 8},
		{"h4", "2", "2025-03-10", "11:00", "11:45", 8},
		{"h5", "2", "2025-03-10", "19:00", "19:45", 8},
		{"h11", "5", "2025-03-10", "11:00", "11:45", 12},
		{"h20", "1", "2025-03-11", "07:00", "08:00", 8},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			s, ok := byID[tt.id]
			if !ok {
				t.Fatalf("slot %s missing", tt.id)
			}
			if s.ClassID != tt.class || s.Date != tt.date || s.StartTime != tt.start || s.EndTime != tt.end || s.Price != tt.price {
				t.Errorf("slot = %+v", s)
			}
		})
	}
	last := snap.Slots[len(snap.Slots)-1]
	if last.Date != "2025-03-16" {
		t.Errorf("last slot date = %s, want 2025-03-16", last.Date)
	}
}

func TestSeedReservationsMatchEnrollment(t *testing.T) {
	for _, enroll := range []bool{false, true} {
		snap := seed(t, fixtures.Options{Enroll: enroll, RandomSeed: 42})
		confirmed := map[[2]string]int{}
		for _, r := range snap.Reservations {
			if r.Status == model.StatusConfirmed {
				confirmed[[2]string{r.MemberID, r.SlotID}]++
			}
		}
		enrolled := 0
		for _, s := range snap.Slots {
			for _, m := range s.Enrolled {
				enrolled++
				if confirmed[[2]string{m, s.ID}] != 1 {
					t.Errorf("enroll=%v: member %s in %s has %d confirmed reservations", enroll, m, s.ID, confirmed[[2]string{m, s.ID}])
				}
			}
		}
		if enrolled != len(confirmed) {
			t.Errorf("enroll=%v: %d enrollments vs %d confirmed pairs", enroll, enrolled, len(confirmed))
		}
		if !enroll && len(snap.Reservations) != 2 {
			t.Errorf("fixed reservations = %d, want 2", len(snap.Reservations))
		}
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	a := seed(t, fixtures.Options{Enroll: true, RandomSeed: 7})
	b := seed(t, fixtures.Options{Enroll: true, RandomSeed: 7})
	if !reflect.DeepEqual(a.Slots, b.Slots) || !reflect.DeepEqual(a.Reservations, b.Reservations) {
		t.Errorf("same seed produced different fixtures")
	}
}

func TestSeedCredentials(t *testing.T) {
	l := ledger.New(seed(t, fixtures.Options{}), ledger.WithLocation(time.UTC))
	tests := []struct {
		email, secret, role string
	}{
		{"admin@ximnasio.com", "admin123", model.RoleAdmin},
		{"USUARIO@ejemplo.com", "user123", model.RoleUser},
		{"pedro@ejemplo.com", "pedro123", model.RoleUser},
		{"ana@ejemplo.com", "ana123", model.RoleUser},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			m, ok := l.Authenticate(tt.email, tt.secret)
			if !ok {
				t.Fatalf("Authenticate(%s) failed", tt.email)
			}
			if m.Role != tt.role {
				t.Errorf("role = %s, want %s", m.Role, tt.role)
			}
		})
	}
	if len(l.Catalog().Facilities) != 6 || len(l.Catalog().Plans) != 3 {
		t.Errorf("catalog = %+v", l.Catalog())
	}
}
