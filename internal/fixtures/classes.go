package fixtures

import "github.com/ximnasio/gym-booking/internal/model"

var seedClasses = []model.Class{
	{
		ID:              "1",
		Name:            "Yoga",
		Description:     "Clase de yoga para mejorar flexibilidad, equilibrio y bienestar mental. Apta para todos los niveles.",
		Instructor:      "Laura Sánchez",
		DurationMinutes: 60,
		Capacity:        20,
		ImageURL:        "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=800",
		Category:        model.CategoryFlexibility,
	},
	{
		ID:              "2",
		Name:            "CrossFit",
		Description:     "Entrenamiento funcional de alta intensidad que combina ejercicios de fuerza, resistencia y cardio.",
		Instructor:      "Miguel Torres",
		DurationMinutes: 45,
		Capacity:        15,
		ImageURL:        "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?w=800",
		Category:        model.CategoryStrength,
	},
	{
		ID:              "3",
		Name:            "Spinning",
		Description:     "Clase de ciclismo indoor con música motivadora. Quema calorías y mejora tu resistencia cardiovascular.",
		Instructor:      "Elena Rodríguez",
		DurationMinutes: 50,
		Capacity:        25,
		ImageURL:        "https://images.unsplash.com/photo-1534787238916-9ba6764efd4f?w=800",
		Category:        model.CategoryCardio,
	},
	{
		ID:              "4",
		Name:            "Pilates",
		Description:     "Fortalece tu core y mejora tu postura con ejercicios controlados y precisos.",
		Instructor:      "Carmen Díaz",
		DurationMinutes: 55,
		Capacity:        18,
		ImageURL:        "https://images.unsplash.com/photo-1518611012118-696072aa579a?w=800",
		Category:        model.CategoryFlexibility,
	},
	{
		ID:              "5",
		Name:            "Aquagym",
		Description:     "Ejercicio aeróbico en el agua. Ideal para personas con problemas articulares o que buscan bajo impacto.",
		Instructor:      "Roberto Navarro",
		DurationMinutes: 45,
		Capacity:        20,
		ImageURL:        "https://images.unsplash.com/photo-1576013551627-0cc20b96c2a7?w=800",
		Category:        model.CategoryAquatic,
	},
	{
		ID:              "6",
		Name:            "Zumba",
		Description:     "Baila al ritmo de música latina mientras quemas calorías y te diviertes.",
		Instructor:      "Patricia Molina",
		DurationMinutes: 60,
		Capacity:        30,
		ImageURL:        "https://images.unsplash.com/photo-1524594152303-9fd13543fe6e?w=800",
		Category:        model.CategoryGroup,
	},
	{
		ID:              "7",
		Name:            "HIIT",
		Description:     "Entrenamiento de intervalos de alta intensidad para maximizar la quema de grasa.",
		Instructor:      "Diego Hernández",
		DurationMinutes: 30,
		Capacity:        20,
		ImageURL:        "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=800",
		Category:        model.CategoryCardio,
	},
	{
		ID:              "8",
		Name:            "Boxeo Fitness",
		Description:     "Aprende técnicas de boxeo mientras mejoras tu condición física y liberas estrés.",
		Instructor:      "Javier Ruiz",
		DurationMinutes: 60,
		Capacity:        16,
		ImageURL:        "https://images.unsplash.com/photo-1549719386-74dfcbf7dbed?w=800",
		Category:        model.CategoryStrength,
	},
}
