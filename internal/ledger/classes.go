package ledger

import (
	"fmt"
	"strings"

	"github.com/ximnasio/gym-booking/internal/model"
)

// ClassInput carries the fields of a new class.
type ClassInput struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Instructor      string `json:"instructor"`
	DurationMinutes int    `json:"duration_minutes"`
	Capacity        int    `json:"capacity"`
	ImageURL        string `json:"image_url"`
	Category        string `json:"category"`
}

// ClassPatch lists the class fields to change.  Nil fields are kept.
type ClassPatch struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	Instructor      *string `json:"instructor"`
	DurationMinutes *int    `json:"duration_minutes"`
	Capacity        *int    `json:"capacity"`
	ImageURL        *string `json:"image_url"`
	Category        *string `json:"category"`
}

func validateClass(c model.Class) error {
	if c.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidClass)
	}
	if c.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidClass)
	}
	if !model.ValidCategory(c.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidClass, c.Category)
	}
	return nil
}

// AddClass stores a new class under a fresh ID.
func (l *Ledger) AddClass(in ClassInput) (model.Class, error) {
	c := model.Class{
		Name:            strings.TrimSpace(in.Name),
		Description:     in.Description,
		Instructor:      strings.TrimSpace(in.Instructor),
		DurationMinutes: in.DurationMinutes,
		Capacity:        in.Capacity,
		ImageURL:        in.ImageURL,
		Category:        in.Category,
	}
	if err := validateClass(c); err != nil {
		return model.Class{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	c.ID = l.newID(classPrefix)
	l.classes = append(l.classes, c)
	l.touch()
	return c, nil
}

// UpdateClass merges patch into the class with the given ID.  Capacity
// may not drop below the enrollment of any of the class's slots.
func (l *Ledger) UpdateClass(id string, patch ClassPatch) (model.Class, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.classIndex(id)
	if i < 0 {
		return model.Class{}, ErrClassNotFound
	}
	c := l.classes[i]
	if patch.Name != nil {
		c.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.Instructor != nil {
		c.Instructor = strings.TrimSpace(*patch.Instructor)
	}
	if patch.DurationMinutes != nil {
		c.DurationMinutes = *patch.DurationMinutes
	}
	if patch.Capacity != nil {
		c.Capacity = *patch.Capacity
	}
	if patch.ImageURL != nil {
		c.ImageURL = *patch.ImageURL
	}
	if patch.Category != nil {
		c.Category = *patch.Category
	}
	if err := validateClass(c); err != nil {
		return model.Class{}, err
	}
	for _, s := range l.slots {
		if s.ClassID == id && len(s.Enrolled) > c.Capacity {
			return model.Class{}, ErrCapacityTooLow
		}
	}
	l.classes[i] = c
	l.touch()
	return c, nil
}

// RemoveClass deletes the class and every slot scheduled for it.
// Active reservations on those slots are marked cancelled and kept, the same
// way RemoveScheduleSlot treats them.
func (l *Ledger) RemoveClass(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.classIndex(id)
	if i < 0 {
		return ErrClassNotFound
	}
	l.classes = append(l.classes[:i], l.classes[i+1:]...)

	removed := make(map[string]struct{})
	kept := l.slots[:0]
	for _, s := range l.slots {
		if s.ClassID == id {
			removed[s.ID] = struct{}{}
			continue
		}
		kept = append(kept, s)
	}
	l.slots = kept

	for j := range l.reservations {
		if _, ok := removed[l.reservations[j].SlotID]; ok && l.reservations[j].Active() {
			l.reservations[j].Status = model.StatusCancelled
		}
	}
	l.touch()
	return nil
}

// Class returns the class with the given ID.
func (l *Ledger) Class(id string) (model.Class, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i := l.classIndex(id); i >= 0 {
		return l.classes[i], true
	}
	return model.Class{}, false
}

// Classes returns every class.
func (l *Ledger) Classes() []model.Class {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]model.Class(nil), l.classes...)
}

// ClassesByCategory returns the classes in category, or all classes when
// category is empty.
func (l *Ledger) ClassesByCategory(category string) []model.Class {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := []model.Class{}
	for _, c := range l.classes {
		if category == "" || c.Category == category {
			out = append(out, c)
		}
	}
	return out
}
