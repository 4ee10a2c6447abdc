// Package queue defines message payloads exchanged over the message broker.
package queue

// Event types carried in ReservationEvent.Type.
const (
	EventReservationConfirmed = "reservation.confirmed"
	EventReservationCancelled = "reservation.cancelled"
)

// ReservationEvent is published whenever a reservation is confirmed or
// cancelled.  It carries enough of the slot and class to be logged
// without reading the ledger.
type ReservationEvent struct {
	Type          string  `json:"type"`
	ReservationID string  `json:"reservation_id"`
	MemberID      string  `json:"member_id"`
	SlotID        string  `json:"slot_id"`
	ClassID       string  `json:"class_id"`
	ClassName     string  `json:"class_name"`
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	Price         float64 `json:"price"`
	Penalty       float64 `json:"penalty,omitempty"`
	OccurredAt    string  `json:"occurred_at"`
}
