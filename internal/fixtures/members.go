package fixtures

import "github.com/ximnasio/gym-booking/internal/model"

// seedMember pairs a member record with its plain secret.
type seedMember struct {
	model.Member
	secret string
}

var seedMembers = []seedMember{
	{
		Member: model.Member{
			ID:            "1",
			Email:         "admin@ximnasio.com",
			FirstName:     "Carlos",
			LastName:      "García López",
			Phone:         "612345678",
			Tier:          model.TierVIP,
			TierExpiresAt: "2026-12-31",
			Goals:         "Mantener el gimnasio funcionando perfectamente",
			Role:          model.RoleAdmin,
			RegisteredAt:  "2020-01-01",
		},
		secret: "admin123",
	},
	{
		Member: model.Member{
			ID:            "2",
			Email:         "usuario@ejemplo.com",
			FirstName:     "María",
			LastName:      "Fernández Ruiz",
			Phone:         "623456789",
			PhotoURL:      "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=150",
			Tier:          model.TierPremium,
			TierExpiresAt: "2025-06-30",
			Goals:         "Perder peso y ganar flexibilidad",
			Role:          model.RoleUser,
			RegisteredAt:  "2024-01-15",
		},
		secret: "user123",
	},
	{
		Member: model.Member{
			ID:            "3",
			Email:         "pedro@ejemplo.com",
			FirstName:     "Pedro",
			LastName:      "Martínez Soto",
			Phone:         "634567890",
			PhotoURL:      "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150",
			Tier:          model.TierBasic,
			TierExpiresAt: "2025-03-31",
			Goals:         "Ganar masa muscular",
			Role:          model.RoleUser,
			RegisteredAt:  "2024-06-01",
		},
		secret: "pedro123",
	},
	{
		Member: model.Member{
			ID:            "4",
			Email:         "ana@ejemplo.com",
			FirstName:     "Ana",
			LastName:      "López Vega",
			Phone:         "645678901",
			Tier:          model.TierVIP,
			TierExpiresAt: "2026-01-31",
			Goals:         "Preparación para triatlón",
			Role:          model.RoleUser,
			RegisteredAt:  "2023-09-10",
		},
		secret: "ana123",
	},
}
