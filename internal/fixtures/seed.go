// Package fixtures supplies the static data a fresh ledger starts from:
// the demo members, the class catalog with a rolling week of schedule
// slots, a few reservations and the public gym catalog.
package fixtures

import (
	"fmt"
	"math/rand/v2"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ximnasio/gym-booking/internal/ledger"
	"github.com/ximnasio/gym-booking/internal/model"
	"github.com/ximnasio/gym-booking/internal/utils"
)

// StartTimes are the daily session start times slots are generated from.
var StartTimes = []string{"07:00", "09:00", "11:00", "13:00", "17:00", "19:00", "20:30"}

// ScheduleDays is the length of the generated schedule window.
const ScheduleDays = 7

const (
	standardPrice = 8
	aquaticPrice  = 12
)

// Options tunes Seed.  The zero value seeds an empty schedule in
// time.Local with the default bcrypt cost.
type Options struct {
	Location   *time.Location
	BcryptCost int
	// RandomSeed drives the simulated enrollments.  Equal seeds give
	// equal fixtures.
	RandomSeed uint64
	// Enroll turns on the simulated enrollments.
	Enroll bool
}

// Seed builds the initial ledger state with a schedule starting on now's
// date.
func Seed(now time.Time, opts Options) (ledger.Snapshot, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	members := make([]model.Member, 0, len(seedMembers))
	for _, sm := range seedMembers {
		hash, err := utils.HashPassword(sm.secret, cost)
		if err != nil {
			return ledger.Snapshot{}, fmt.Errorf("hash fixture secret for %s: %w", sm.Email, err)
		}
		m := sm.Member
		m.PasswordHash = hash
		members = append(members, m)
	}

	slots, err := Schedule(now.In(loc), seedClasses)
	if err != nil {
		return ledger.Snapshot{}, err
	}
	reservations := seedReservations(slots)
	if opts.Enroll {
		reservations = enroll(slots, reservations, rand.New(rand.NewPCG(opts.RandomSeed, opts.RandomSeed^0x9e3779b97f4a7c15)), model.FormatDate(now.In(loc)))
	}

	return ledger.Snapshot{
		Members:      members,
		Classes:      append([]model.Class(nil), seedClasses...),
		Slots:        slots,
		Reservations: reservations,
		Catalog:      Catalog(),
	}, nil
}

// Schedule generates ScheduleDays days of slots starting on day's date.
// Class number i gets the start times whose index j satisfies
// (i+j)%3 == 0.  Slot IDs run h1, h2, ... in day, class, time order.
func Schedule(day time.Time, classes []model.Class) ([]model.ScheduleSlot, error) {
	var slots []model.ScheduleSlot
	n := 1
	for d := 0; d < ScheduleDays; d++ {
		date := model.FormatDate(day.AddDate(0, 0, d))
		for i, c := range classes {
			for j, start := range StartTimes {
				if (i+j)%3 != 0 {
					continue
				}
				end, err := ledger.EndTime(start, c.DurationMinutes)
				if err != nil {
					return nil, fmt.Errorf("class %s end time: %w", c.ID, err)
				}
				price := float64(standardPrice)
				if c.Category == model.CategoryAquatic {
					price = aquaticPrice
				}
				slots = append(slots, model.ScheduleSlot{
					ID:        fmt.Sprintf("h%d", n),
					ClassID:   c.ID,
					Date:      date,
					StartTime: start,
					EndTime:   end,
					Enrolled:  []string{},
					Price:     price,
				})
				n++
			}
		}
	}
	return slots, nil
}

// seedReservations books member 2 into h1 and h5.
func seedReservations(slots []model.ScheduleSlot) []model.Reservation {
	fixed := []struct{ id, member, slot string }{
		{"r1", "2", "h1"},
		{"r2", "2", "h5"},
	}
	out := []model.Reservation{}
	for _, f := range fixed {
		for i := range slots {
			if slots[i].ID != f.slot {
				continue
			}
			slots[i].Enrolled = append(slots[i].Enrolled, f.member)
			out = append(out, model.Reservation{
				ID:         f.id,
				MemberID:   f.member,
				SlotID:     f.slot,
				ReservedOn: "2024-11-28",
				Status:     model.StatusConfirmed,
				PricePaid:  slots[i].Price,
			})
		}
	}
	return out
}

// enroll simulates bookings: member 2 joins about half the slots, member
// 3 about 30% and member 4 about 20%.  Every simulated enrollment gets a
// matching confirmed reservation.
func enroll(slots []model.ScheduleSlot, reservations []model.Reservation, rng *rand.Rand, today string) []model.Reservation {
	odds := []struct {
		member    string
		threshold float64
	}{
		{"2", 0.5},
		{"3", 0.7},
		{"4", 0.8},
	}
	n := len(reservations) + 1
	for i := range slots {
		for _, o := range odds {
			if rng.Float64() <= o.threshold || slots[i].IsEnrolled(o.member) {
				continue
			}
			slots[i].Enrolled = append(slots[i].Enrolled, o.member)
			reservations = append(reservations, model.Reservation{
				ID:         fmt.Sprintf("r%d", n),
				MemberID:   o.member,
				SlotID:     slots[i].ID,
				ReservedOn: today,
				Status:     model.StatusConfirmed,
				PricePaid:  slots[i].Price,
			})
			n++
		}
	}
	return reservations
}
