package ledger

import "errors"

// Sentinel errors returned by ledger operations.  Handlers compare them
// with errors.Is and translate them into HTTP responses.  Every failing
// operation leaves the ledger unchanged.
var (
	ErrMemberNotFound       = errors.New("member not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidMember        = errors.New("invalid member data")
	ErrClassNotFound        = errors.New("class not found")
	ErrInvalidClass         = errors.New("invalid class data")
	ErrInvalidCapacity      = errors.New("capacity must be greater than zero")
	ErrCapacityTooLow       = errors.New("capacity below current enrollment")
	ErrSlotNotFound         = errors.New("schedule slot not found")
	ErrInvalidSlot          = errors.New("invalid schedule slot data")
	ErrClassFull            = errors.New("class is full")
	ErrAlreadyEnrolled      = errors.New("already enrolled in this class")
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrReservationNotActive = errors.New("reservation is not active")
)
