package model

import "time"

// Role values stored on Member.Role.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Membership tiers.
const (
	TierBasic   = "basico"
	TierPremium = "premium"
	TierVIP     = "vip"
)

// Member represents a gym member or administrator.  The password hash
// never leaves the process: it is skipped by JSON encoding so that the
// record can be handed to clients and to session storage as is.
//
// Fields:
//  ID            – unique identifier.
//  Email         – login email, unique ignoring case.
//  PasswordHash  – bcrypt hash of the member secret.
//  FirstName     – given name.
//  LastName      – surnames.
//  Phone         – contact phone.
//  PhotoURL      – optional avatar URL.
//  Tier          – membership tier (basico, premium, vip).
//  TierExpiresAt – date on which the membership expires (YYYY-MM-DD).
//  Goals         – optional free text.
//  Role          – user or admin.
//  RegisteredAt  – registration date (YYYY-MM-DD).
type Member struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	PasswordHash  string `json:"-"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Phone         string `json:"phone"`
	PhotoURL      string `json:"photo_url,omitempty"`
	Tier          string `json:"tier"`
	TierExpiresAt string `json:"tier_expires_at"`
	Goals         string `json:"goals,omitempty"`
	Role          string `json:"role"`
	RegisteredAt  string `json:"registered_at"`
}

// FullName joins first and last name.
func (m Member) FullName() string {
	if m.LastName == "" {
		return m.FirstName
	}
	return m.FirstName + " " + m.LastName
}

// IsAdmin reports whether the member has the admin role.
func (m Member) IsAdmin() bool { return m.Role == RoleAdmin }

// ValidTier reports whether t is a known membership tier.
func ValidTier(t string) bool {
	switch t {
	case TierBasic, TierPremium, TierVIP:
		return true
	}
	return false
}

// ValidRole reports whether r is a known role.
func ValidRole(r string) bool { return r == RoleUser || r == RoleAdmin }

// DateLayout is the layout used for every calendar date in the model.
const DateLayout = "2006-01-02"

// TimeLayout is the layout used for slot start and end times.
const TimeLayout = "15:04"

// FormatDate renders t as a model date.
func FormatDate(t time.Time) string { return t.Format(DateLayout) }
