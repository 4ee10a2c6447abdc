package model

// Facility is a gym area shown in the public catalog.
type Facility struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Features    []string `json:"features"`
}

// MembershipPlan is a purchasable membership offer.
type MembershipPlan struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Price          float64  `json:"price"`
	DurationMonths int      `json:"duration_months"`
	Features       []string `json:"features"`
	Featured       bool     `json:"featured"`
}

// ClassPricing lists drop-in and pack prices for a class.
type ClassPricing struct {
	ClassID string  `json:"class_id"`
	Single  float64 `json:"single"`
	Pack5   float64 `json:"pack_5"`
	Pack10  float64 `json:"pack_10"`
}

// OpeningHours is the opening window of one weekday.
type OpeningHours struct {
	Day    string `json:"day"`
	Opens  string `json:"opens"`
	Closes string `json:"closes"`
}

// Coordinates is a WGS84 position.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ContactInfo holds the gym's public contact details.
type ContactInfo struct {
	Address     string      `json:"address"`
	Phone       string      `json:"phone"`
	Email       string      `json:"email"`
	Coordinates Coordinates `json:"coordinates"`
}

// Catalog groups the read-only data served on public pages.
type Catalog struct {
	Facilities []Facility       `json:"facilities"`
	Plans      []MembershipPlan `json:"plans"`
	Pricing    []ClassPricing   `json:"pricing"`
	Hours      []OpeningHours   `json:"opening_hours"`
	Contact    ContactInfo      `json:"contact"`
}
