package ledger

import (
	"fmt"
	"time"

	"github.com/ximnasio/gym-booking/internal/model"
)

// PenaltyWindow is how close to the slot start a cancellation is charged.
const PenaltyWindow = time.Hour

// Cancellation is the outcome of a successful CancelReservation.  Penalty
// is always set (zero when none applies); Warning is an advisory text
// present only when Penalty is positive.
type Cancellation struct {
	Reservation model.Reservation `json:"reservation"`
	Penalty     float64           `json:"penalty"`
	Warning     string            `json:"warning,omitempty"`
}

// CreateReservation books memberID into slotID.  It fails, in this order,
// when the slot or its class is missing, when the slot is full, and when
// the member is already enrolled.  On success exactly one confirmed
// reservation is added and the slot enrollment grows by one.
func (l *Ledger) CreateReservation(memberID, slotID string) (model.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	si := l.slotIndex(slotID)
	if si < 0 {
		return model.Reservation{}, ErrSlotNotFound
	}
	slot := &l.slots[si]
	ci := l.classIndex(slot.ClassID)
	if ci < 0 {
		return model.Reservation{}, ErrSlotNotFound
	}
	if len(slot.Enrolled) >= l.classes[ci].Capacity {
		return model.Reservation{}, ErrClassFull
	}
	if slot.IsEnrolled(memberID) {
		return model.Reservation{}, ErrAlreadyEnrolled
	}
	if l.memberIndex(memberID) < 0 {
		return model.Reservation{}, ErrMemberNotFound
	}

	r := model.Reservation{
		ID:         l.newID(reservationPrefix),
		MemberID:   memberID,
		SlotID:     slotID,
		ReservedOn: l.today(),
		Status:     model.StatusConfirmed,
		PricePaid:  slot.Price,
	}
	l.reservations = append(l.reservations, r)
	slot.Enrolled = append(slot.Enrolled, memberID)
	l.touch()
	return r, nil
}

// CancelReservation cancels a confirmed reservation and frees its place.
// Cancelling less than PenaltyWindow before the slot starts costs half
// the slot price.
func (l *Ledger) CancelReservation(reservationID string) (Cancellation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ri := l.reservationIndex(reservationID)
	if ri < 0 {
		return Cancellation{}, ErrReservationNotFound
	}
	r := &l.reservations[ri]
	si := l.slotIndex(r.SlotID)
	if si < 0 {
		return Cancellation{}, ErrSlotNotFound
	}
	if !r.Active() {
		return Cancellation{}, ErrReservationNotActive
	}
	slot := &l.slots[si]
	start, err := slot.StartsAt(l.loc)
	if err != nil {
		return Cancellation{}, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}

	out := Cancellation{Penalty: Penalty(slot.Price, start.Sub(l.now()))}
	if out.Penalty > 0 {
		out.Warning = fmt.Sprintf("late cancellation (under 1 hour): penalty %.2f€", out.Penalty)
	}
	r.Status = model.StatusCancelled
	slot.Enrolled = removeString(slot.Enrolled, r.MemberID)
	out.Reservation = *r
	l.touch()
	return out, nil
}

// Penalty returns the charge for cancelling with remaining time left
// before the slot starts: half the price inside PenaltyWindow, else zero.
func Penalty(price float64, remaining time.Duration) float64 {
	if remaining < PenaltyWindow {
		return price / 2
	}
	return 0
}

// Reservation returns the reservation with the given ID.
func (l *Ledger) Reservation(id string) (model.Reservation, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i := l.reservationIndex(id); i >= 0 {
		return l.reservations[i], true
	}
	return model.Reservation{}, false
}

// Reservations returns every reservation.
func (l *Ledger) Reservations() []model.Reservation {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]model.Reservation(nil), l.reservations...)
}

// ReservationsForMember returns the reservations made by memberID.
func (l *Ledger) ReservationsForMember(memberID string) []model.Reservation {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := []model.Reservation{}
	for _, r := range l.reservations {
		if r.MemberID == memberID {
			out = append(out, r)
		}
	}
	return out
}
