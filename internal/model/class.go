package model

// Class categories.
const (
	CategoryCardio      = "cardio"
	CategoryStrength    = "fuerza"
	CategoryFlexibility = "flexibilidad"
	CategoryAquatic     = "acuatico"
	CategoryGroup       = "grupal"
)

// Class describes a kind of session offered by the gym.  Concrete
// occurrences are ScheduleSlots referencing the class by ID.
//
// Fields:
//  ID              – unique identifier.
//  Name            – display name (e.g. Yoga).
//  Description     – marketing text.
//  Instructor      – instructor name.
//  DurationMinutes – length of one session.
//  Capacity        – maximum enrolled members per slot, always > 0.
//  ImageURL        – cover image.
//  Category        – one of the Category constants.
type Class struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Instructor      string `json:"instructor"`
	DurationMinutes int    `json:"duration_minutes"`
	Capacity        int    `json:"capacity"`
	ImageURL        string `json:"image_url"`
	Category        string `json:"category"`
}

// ValidCategory reports whether c is a known class category.
func ValidCategory(c string) bool {
	switch c {
	case CategoryCardio, CategoryStrength, CategoryFlexibility, CategoryAquatic, CategoryGroup:
		return true
	}
	return false
}
