package fixtures

import "github.com/ximnasio/gym-booking/internal/model"

// Catalog returns the public catalog: facilities, plans, class pricing,
// opening hours and contact details.
func Catalog() model.Catalog {
	return model.Catalog{
		Facilities: []model.Facility{
			{
				ID:          "1",
				Name:        "Sala de Musculación",
				Description: "Equipada con las últimas máquinas de fuerza y peso libre. Más de 50 estaciones de entrenamiento.",
				ImageURL:    "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?w=800",
				Features:    []string{"Máquinas Technogym", "Peso libre", "Espejos de pared completa", "Aire acondicionado"},
			},
			{
				ID:          "2",
				Name:        "Zona Cardio",
				Description: "Cintas de correr, elípticas, bicicletas y máquinas de remo con pantallas individuales.",
				ImageURL:    "https://images.unsplash.com/photo-1540497077202-7c8a3999166f?w=800",
				Features:    []string{"30+ máquinas cardio", "Pantallas HD individuales", "Ventilación premium", "Vista panorámica"},
			},
			{
				ID:          "3",
				Name:        "Piscina Climatizada",
				Description: "Piscina de 25 metros con carriles para natación y zona de aquagym.",
				ImageURL:    "https://images.unsplash.com/photo-1576013551627-0cc20b96c2a7?w=800",
				Features:    []string{"25 metros", "6 carriles", "Agua climatizada 28°C", "Socorrista permanente"},
			},
			{
				ID:          "4",
				Name:        "Sauna y Spa",
				Description: "Zona de relax con sauna finlandesa, baño turco y jacuzzi.",
				ImageURL:    "https://images.unsplash.com/photo-1540555700478-4be289fbecef?w=800",
				Features:    []string{"Sauna finlandesa", "Baño turco", "Jacuzzi 8 personas", "Duchas de contraste"},
			},
			{
				ID:          "5",
				Name:        "Salas de Clases Grupales",
				Description: "Tres salas polivalentes equipadas para todo tipo de clases dirigidas.",
				ImageURL:    "https://images.unsplash.com/photo-1571902943202-507ec2618e8f?w=800",
				Features:    []string{"Suelo flotante", "Espejos", "Equipo de sonido", "Material incluido"},
			},
			{
				ID:          "6",
				Name:        "Zona de Entrenamiento Funcional",
				Description: "Espacio dedicado al entrenamiento funcional y CrossFit con todo el equipamiento necesario.",
				ImageURL:    "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=800",
				Features:    []string{"Racks de sentadillas", "Barras olímpicas", "Kettlebells", "Cuerdas y TRX"},
			},
		},
		Plans: []model.MembershipPlan{
			{
				ID:             "1",
				Name:           "Básico",
				Price:          29.99,
				DurationMonths: 1,
				Features:       []string{"Acceso a sala de musculación", "Acceso a zona cardio", "Horario: 8:00 - 15:00", "Taquilla compartida"},
			},
			{
				ID:             "2",
				Name:           "Premium",
				Price:          49.99,
				DurationMonths: 1,
				Features:       []string{"Acceso a todas las instalaciones", "Horario completo", "2 clases grupales incluidas/semana", "Taquilla individual", "Acceso a sauna y spa"},
				Featured:       true,
			},
			{
				ID:             "3",
				Name:           "VIP",
				Price:          79.99,
				DurationMonths: 1,
				Features: []string{
					"Acceso ilimitado total",
					"Clases grupales ilimitadas",
					"Acceso 24/7",
					"Taquilla premium con carga",
					"Sauna y spa ilimitado",
					"1 sesión de entrenador personal/mes",
					"Parking gratuito",
					"Invitados: 2/mes gratis",
				},
			},
		},
		Pricing: []model.ClassPricing{
			{ClassID: "1", Single: 8, Pack5: 35, Pack10: 60},
			{ClassID: "2", Single: 10, Pack5: 45, Pack10: 80},
			{ClassID: "3", Single: 8, Pack5: 35, Pack10: 60},
			{ClassID: "4", Single: 8, Pack5: 35, Pack10: 60},
			{ClassID: "5", Single: 12, Pack5: 55, Pack10: 100},
			{ClassID: "6", Single: 8, Pack5: 35, Pack10: 60},
			{ClassID: "7", Single: 8, Pack5: 35, Pack10: 60},
			{ClassID: "8", Single: 10, Pack5: 45, Pack10: 80},
		},
		Hours: []model.OpeningHours{
			{Day: "Lunes", Opens: "06:00", Closes: "23:00"},
			{Day: "Martes", Opens: "06:00", Closes: "23:00"},
			{Day: "Miércoles", Opens: "06:00", Closes: "23:00"},
			{Day: "Jueves", Opens: "06:00", Closes: "23:00"},
			{Day: "Viernes", Opens: "06:00", Closes: "23:00"},
			{Day: "Sábado", Opens: "08:00", Closes: "21:00"},
			{Day: "Domingo", Opens: "08:00", Closes: "14:00"},
		},
		Contact: model.ContactInfo{
			Address:     "Calle Fitness 123, 28001 Madrid",
			Phone:       "912 345 678",
			Email:       "info@ximnasio.com",
			Coordinates: model.Coordinates{Lat: 40.4168, Lng: -3.7038},
		},
	}
}
