package model

import (
	"fmt"
	"time"
)

// ScheduleSlot is a single occurrence of a class on a date and time range.
// Enrolled holds the IDs of members currently booked into the slot and
// never grows past the class capacity nor contains duplicates.
//
// Fields:
//  ID        – unique identifier.
//  ClassID   – class this slot belongs to.
//  Date      – calendar date (YYYY-MM-DD).
//  StartTime – local start time (HH:MM).
//  EndTime   – local end time (HH:MM).
//  Enrolled  – member IDs booked into this slot.
//  Price     – price in euros charged per booking.
type ScheduleSlot struct {
	ID        string   `json:"id"`
	ClassID   string   `json:"class_id"`
	Date      string   `json:"date"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Enrolled  []string `json:"enrolled"`
	Price     float64  `json:"price"`
}

// StartsAt combines Date and StartTime into an instant in loc.
func (s ScheduleSlot) StartsAt(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, s.Date+" "+s.StartTime, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("slot %s start: %w", s.ID, err)
	}
	return t, nil
}

// IsEnrolled reports whether memberID is booked into the slot.
func (s ScheduleSlot) IsEnrolled(memberID string) bool {
	for _, id := range s.Enrolled {
		if id == memberID {
			return true
		}
	}
	return false
}

// Remaining returns the free places left given the class capacity.
func (s ScheduleSlot) Remaining(capacity int) int {
	n := capacity - len(s.Enrolled)
	if n < 0 {
		return 0
	}
	return n
}
