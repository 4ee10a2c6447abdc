package ledger

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/ximnasio/gym-booking/internal/model"
)

// SlotView is a slot joined with its class.
type SlotView struct {
	model.ScheduleSlot
	Class     model.Class `json:"class"`
	Remaining int         `json:"remaining"`
}

// ReservationView is a reservation joined with its slot and class.  Slot
// and Class are nil once the referenced records have been removed.
type ReservationView struct {
	model.Reservation
	Slot  *model.ScheduleSlot `json:"slot,omitempty"`
	Class *model.Class        `json:"class,omitempty"`
}

// AdminSummary holds the figures shown on the admin dashboard.
type AdminSummary struct {
	Members               int            `json:"members"`
	ConfirmedReservations int            `json:"confirmed_reservations"`
	MonthRevenue          float64        `json:"month_revenue"`
	UpcomingSlots         []SlotView     `json:"upcoming_slots"`
	RecentMembers         []model.Member `json:"recent_members"`
}

// MemberSummary holds the figures shown on a member dashboard.
type MemberSummary struct {
	ActiveReservations    int               `json:"active_reservations"`
	CompletedReservations int               `json:"completed_reservations"`
	Upcoming              []ReservationView `json:"upcoming"`
	DaysUntilExpiry       int               `json:"days_until_expiry"`
}

const (
	adminUpcomingLimit  = 5
	adminRecentLimit    = 5
	memberUpcomingLimit = 3
)

func compareSlots(a, b model.ScheduleSlot) int {
	if c := cmp.Compare(a.Date, b.Date); c != 0 {
		return c
	}
	return cmp.Compare(a.StartTime, b.StartTime)
}

// AdminSummary computes dashboard figures as of now: role user member
// count, confirmed reservations, revenue from reservations booked in
// now's month, the next upcoming slots and the latest registrations.
func (l *Ledger) AdminSummary(now time.Time) AdminSummary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	now = now.In(l.loc)
	today := model.FormatDate(now)
	month := now.Format("2006-01")
	out := AdminSummary{UpcomingSlots: []SlotView{}, RecentMembers: []model.Member{}}

	users := []model.Member{}
	for _, m := range l.members {
		if m.Role == model.RoleUser {
			users = append(users, m)
		}
	}
	out.Members = len(users)
	slices.SortStableFunc(users, func(a, b model.Member) int {
		return cmp.Compare(b.RegisteredAt, a.RegisteredAt)
	})
	out.RecentMembers = append(out.RecentMembers, users[:min(adminRecentLimit, len(users))]...)

	for _, r := range l.reservations {
		if r.Active() {
			out.ConfirmedReservations++
		}
		if len(r.ReservedOn) >= 7 && r.ReservedOn[:7] == month {
			out.MonthRevenue += r.PricePaid
		}
	}

	upcoming := []model.ScheduleSlot{}
	for _, s := range l.slots {
		if s.Date >= today {
			upcoming = append(upcoming, s)
		}
	}
	slices.SortStableFunc(upcoming, compareSlots)
	for _, s := range upcoming {
		if len(out.UpcomingSlots) == adminUpcomingLimit {
			break
		}
		ci := l.classIndex(s.ClassID)
		if ci < 0 {
			continue
		}
		out.UpcomingSlots = append(out.UpcomingSlots, SlotView{
			ScheduleSlot: cloneSlot(s),
			Class:        l.classes[ci],
			Remaining:    s.Remaining(l.classes[ci].Capacity),
		})
	}
	return out
}

// MemberSummary computes the dashboard of memberID as of now.
func (l *Ledger) MemberSummary(memberID string, now time.Time) (MemberSummary, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	mi := l.memberIndex(memberID)
	if mi < 0 {
		return MemberSummary{}, ErrMemberNotFound
	}
	now = now.In(l.loc)
	today := model.FormatDate(now)
	out := MemberSummary{Upcoming: []ReservationView{}}

	upcoming := []ReservationView{}
	for _, r := range l.reservations {
		if r.MemberID != memberID {
			continue
		}
		switch r.Status {
		case model.StatusCompleted:
			out.CompletedReservations++
		case model.StatusConfirmed:
			out.ActiveReservations++
			v := l.view(r)
			if v.Slot != nil && v.Class != nil && v.Slot.Date >= today {
				upcoming = append(upcoming, v)
			}
		}
	}
	slices.SortStableFunc(upcoming, func(a, b ReservationView) int {
		return compareSlots(*a.Slot, *b.Slot)
	})
	out.Upcoming = append(out.Upcoming, upcoming[:min(memberUpcomingLimit, len(upcoming))]...)

	if exp, err := time.ParseInLocation(model.DateLayout, l.members[mi].TierExpiresAt, l.loc); err == nil {
		out.DaysUntilExpiry = int(math.Ceil(exp.Sub(now).Hours() / 24))
	}
	return out, nil
}

// MemberHistory returns every reservation of memberID joined with its
// slot and class, latest slot first.  Reservations whose slot is gone
// sort last.
func (l *Ledger) MemberHistory(memberID string) []ReservationView {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := []ReservationView{}
	for _, r := range l.reservations {
		if r.MemberID == memberID {
			out = append(out, l.view(r))
		}
	}
	slices.SortStableFunc(out, func(a, b ReservationView) int {
		switch {
		case a.Slot == nil && b.Slot == nil:
			return 0
		case a.Slot == nil:
			return 1
		case b.Slot == nil:
			return -1
		}
		return compareSlots(*b.Slot, *a.Slot)
	})
	return out
}

// SlotViews joins slots with their classes, dropping slots whose class
// is missing.
func (l *Ledger) SlotViews(slots []model.ScheduleSlot) []SlotView {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		ci := l.classIndex(s.ClassID)
		if ci < 0 {
			continue
		}
		out = append(out, SlotView{ScheduleSlot: s, Class: l.classes[ci], Remaining: s.Remaining(l.classes[ci].Capacity)})
	}
	return out
}

// view joins r with its slot and class.  Callers hold the read lock.
func (l *Ledger) view(r model.Reservation) ReservationView {
	v := ReservationView{Reservation: r}
	if si := l.slotIndex(r.SlotID); si >= 0 {
		s := cloneSlot(l.slots[si])
		v.Slot = &s
		if ci := l.classIndex(s.ClassID); ci >= 0 {
			c := l.classes[ci]
			v.Class = &c
		}
	}
	return v
}
