package ledger

import (
	"fmt"
	"time"

	"github.com/ximnasio/gym-booking/internal/model"
)

// SlotInput carries the fields of a new schedule slot.  EndTime may be
// left empty; it is then derived from the class duration.
type SlotInput struct {
	ClassID   string  `json:"class_id"`
	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Price     float64 `json:"price"`
}

// SlotPatch lists the slot fields to change.  Nil fields are kept.  The
// enrolled list is owned by the reservation operations and cannot be
// patched.
type SlotPatch struct {
	ClassID   *string  `json:"class_id"`
	Date      *string  `json:"date"`
	StartTime *string  `json:"start_time"`
	EndTime   *string  `json:"end_time"`
	Price     *float64 `json:"price"`
}

func validateSlot(s model.ScheduleSlot) error {
	if _, err := time.Parse(model.DateLayout, s.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidSlot)
	}
	start, err := time.Parse(model.TimeLayout, s.StartTime)
	if err != nil {
		return fmt.Errorf("%w: start time must be HH:MM", ErrInvalidSlot)
	}
	end, err := time.Parse(model.TimeLayout, s.EndTime)
	if err != nil {
		return fmt.Errorf("%w: end time must be HH:MM", ErrInvalidSlot)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: end time must be after start time", ErrInvalidSlot)
	}
	if s.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidSlot)
	}
	return nil
}

// EndTime returns start plus the given number of minutes as HH:MM.  A
// slot may not run past midnight.
func EndTime(start string, minutes int) (string, error) {
	t, err := time.Parse(model.TimeLayout, start)
	if err != nil {
		return "", fmt.Errorf("%w: start time must be HH:MM", ErrInvalidSlot)
	}
	if t.Hour()*60+t.Minute()+minutes >= 24*60 {
		return "", fmt.Errorf("%w: slot must end on its start date", ErrInvalidSlot)
	}
	return t.Add(time.Duration(minutes) * time.Minute).Format(model.TimeLayout), nil
}

// AddScheduleSlot schedules a new occurrence of an existing class with an
// empty enrollment list.
func (l *Ledger) AddScheduleSlot(in SlotInput) (model.ScheduleSlot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ci := l.classIndex(in.ClassID)
	if ci < 0 {
		return model.ScheduleSlot{}, ErrClassNotFound
	}
	s := model.ScheduleSlot{
		ClassID:   in.ClassID,
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Enrolled:  []string{},
		Price:     in.Price,
	}
	if s.EndTime == "" {
		end, err := EndTime(s.StartTime, l.classes[ci].DurationMinutes)
		if err != nil {
			return model.ScheduleSlot{}, err
		}
		s.EndTime = end
	}
	if err := validateSlot(s); err != nil {
		return model.ScheduleSlot{}, err
	}
	s.ID = l.newID(slotPrefix)
	l.slots = append(l.slots, s)
	l.touch()
	return cloneSlot(s), nil
}

// UpdateScheduleSlot merges patch into the slot with the given ID.  Moving
// a slot to another class requires that class to exist and to fit the
// current enrollment.
func (l *Ledger) UpdateScheduleSlot(id string, patch SlotPatch) (model.ScheduleSlot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.slotIndex(id)
	if i < 0 {
		return model.ScheduleSlot{}, ErrSlotNotFound
	}
	s := cloneSlot(l.slots[i])
	if patch.ClassID != nil {
		ci := l.classIndex(*patch.ClassID)
		if ci < 0 {
			return model.ScheduleSlot{}, ErrClassNotFound
		}
		if len(s.Enrolled) > l.classes[ci].Capacity {
			return model.ScheduleSlot{}, ErrCapacityTooLow
		}
		s.ClassID = *patch.ClassID
	}
	if patch.Date != nil {
		s.Date = *patch.Date
	}
	if patch.StartTime != nil {
		s.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		s.EndTime = *patch.EndTime
	}
	if patch.Price != nil {
		s.Price = *patch.Price
	}
	if err := validateSlot(s); err != nil {
		return model.ScheduleSlot{}, err
	}
	l.slots[i] = s
	l.touch()
	return cloneSlot(s), nil
}

// RemoveScheduleSlot deletes the slot.  Active reservations referencing
// it are kept and marked cancelled; completed ones are left as they are.
func (l *Ledger) RemoveScheduleSlot(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.slotIndex(id)
	if i < 0 {
		return ErrSlotNotFound
	}
	l.slots = append(l.slots[:i], l.slots[i+1:]...)
	for j := range l.reservations {
		if l.reservations[j].SlotID == id && l.reservations[j].Active() {
			l.reservations[j].Status = model.StatusCancelled
		}
	}
	l.touch()
	return nil
}

// Slot returns the slot with the given ID.
func (l *Ledger) Slot(id string) (model.ScheduleSlot, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i := l.slotIndex(id); i >= 0 {
		return cloneSlot(l.slots[i]), true
	}
	return model.ScheduleSlot{}, false
}

// Slots returns every schedule slot.
func (l *Ledger) Slots() []model.ScheduleSlot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneSlots(l.slots)
}

// SlotsForClass returns the slots scheduled for classID.
func (l *Ledger) SlotsForClass(classID string) []model.ScheduleSlot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := []model.ScheduleSlot{}
	for _, s := range l.slots {
		if s.ClassID == classID {
			out = append(out, cloneSlot(s))
		}
	}
	return out
}

// SlotsOnDate returns the slots scheduled on date (YYYY-MM-DD).
func (l *Ledger) SlotsOnDate(date string) []model.ScheduleSlot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := []model.ScheduleSlot{}
	for _, s := range l.slots {
		if s.Date == date {
			out = append(out, cloneSlot(s))
		}
	}
	return out
}
