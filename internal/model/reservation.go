package model

// Reservation statuses.  No operation moves a reservation to
// StatusCompleted; the value exists for records imported from fixtures
// or snapshots.
const (
	StatusConfirmed = "confirmada"
	StatusCancelled = "cancelada"
	StatusCompleted = "completada"
)

// Reservation records a member's booking of a schedule slot.  At most
// one confirmed reservation exists per (MemberID, SlotID) pair.
//
// Fields:
//  ID         – unique identifier.
//  MemberID   – member who booked.
//  SlotID     – booked schedule slot.
//  ReservedOn – date the booking was made (YYYY-MM-DD).
//  Status     – confirmada, cancelada or completada.
//  PricePaid  – slot price at booking time.
type Reservation struct {
	ID         string  `json:"id"`
	MemberID   string  `json:"member_id"`
	SlotID     string  `json:"slot_id"`
	ReservedOn string  `json:"reserved_on"`
	Status     string  `json:"status"`
	PricePaid  float64 `json:"price_paid"`
}

// Active reports whether the reservation still holds a place.
func (r Reservation) Active() bool { return r.Status == StatusConfirmed }
