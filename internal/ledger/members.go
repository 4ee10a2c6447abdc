package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/ximnasio/gym-booking/internal/model"
	"github.com/ximnasio/gym-booking/internal/utils"
)

// MemberInput carries the fields of a new member.  Password is the plain
// secret; it is hashed before being stored.
type MemberInput struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Phone         string `json:"phone"`
	PhotoURL      string `json:"photo_url"`
	Tier          string `json:"tier"`
	TierExpiresAt string `json:"tier_expires_at"`
	Goals         string `json:"goals"`
	Role          string `json:"role"`
}

// MemberPatch lists the member fields to change.  Nil fields are kept.
type MemberPatch struct {
	Email         *string `json:"email"`
	Password      *string `json:"password"`
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	Phone         *string `json:"phone"`
	PhotoURL      *string `json:"photo_url"`
	Tier          *string `json:"tier"`
	TierExpiresAt *string `json:"tier_expires_at"`
	Goals         *string `json:"goals"`
	Role          *string `json:"role"`
}

// Apply merges the non-nil fields of p into m.  Password is ignored here
// because hashing is the ledger's job.
func (p MemberPatch) Apply(m model.Member) model.Member {
	if p.Email != nil {
		m.Email = strings.TrimSpace(*p.Email)
	}
	if p.FirstName != nil {
		m.FirstName = strings.TrimSpace(*p.FirstName)
	}
	if p.LastName != nil {
		m.LastName = strings.TrimSpace(*p.LastName)
	}
	if p.Phone != nil {
		m.Phone = strings.TrimSpace(*p.Phone)
	}
	if p.PhotoURL != nil {
		m.PhotoURL = strings.TrimSpace(*p.PhotoURL)
	}
	if p.Tier != nil {
		m.Tier = *p.Tier
	}
	if p.TierExpiresAt != nil {
		m.TierExpiresAt = *p.TierExpiresAt
	}
	if p.Goals != nil {
		m.Goals = *p.Goals
	}
	if p.Role != nil {
		m.Role = *p.Role
	}
	return m
}

// validateMember checks the fields every stored member must satisfy.
func validateMember(m model.Member) error {
	if m.Email == "" || !strings.Contains(m.Email, "@") {
		return fmt.Errorf("%w: email is required", ErrInvalidMember)
	}
	if m.FirstName == "" {
		return fmt.Errorf("%w: first name is required", ErrInvalidMember)
	}
	if !model.ValidTier(m.Tier) {
		return fmt.Errorf("%w: unknown tier %q", ErrInvalidMember, m.Tier)
	}
	if !model.ValidRole(m.Role) {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidMember, m.Role)
	}
	if m.TierExpiresAt != "" {
		if _, err := time.Parse(model.DateLayout, m.TierExpiresAt); err != nil {
			return fmt.Errorf("%w: tier expiration must be YYYY-MM-DD", ErrInvalidMember)
		}
	}
	return nil
}

// AddMember registers a new member with a fresh ID and today's
// registration date.  Tier defaults to basico, role to user, and the
// membership expiration to one month from today.
func (l *Ledger) AddMember(in MemberInput) (model.Member, error) {
	if in.Password == "" {
		return model.Member{}, fmt.Errorf("%w: password is required", ErrInvalidMember)
	}
	m := model.Member{
		Email:         strings.TrimSpace(in.Email),
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		Phone:         strings.TrimSpace(in.Phone),
		PhotoURL:      strings.TrimSpace(in.PhotoURL),
		Tier:          in.Tier,
		TierExpiresAt: in.TierExpiresAt,
		Goals:         in.Goals,
		Role:          in.Role,
	}
	if m.Tier == "" {
		m.Tier = model.TierBasic
	}
	if m.Role == "" {
		m.Role = model.RoleUser
	}
	if m.TierExpiresAt == "" {
		m.TierExpiresAt = model.FormatDate(l.now().In(l.loc).AddDate(0, 1, 0))
	}
	if err := validateMember(m); err != nil {
		return model.Member{}, err
	}
	hash, err := utils.HashPassword(in.Password, l.bcryptCost)
	if err != nil {
		return model.Member{}, fmt.Errorf("hash password: %w", err)
	}
	m.PasswordHash = hash

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.memberIndexByEmail(m.Email) >= 0 {
		return model.Member{}, ErrEmailTaken
	}
	m.ID = l.newID(memberPrefix)
	m.RegisteredAt = l.today()
	l.members = append(l.members, m)
	l.touch()
	return m, nil
}

// UpdateMember merges patch into the member with the given ID.
func (l *Ledger) UpdateMember(id string, patch MemberPatch) (model.Member, error) {
	var hash string
	if patch.Password != nil {
		if *patch.Password == "" {
			return model.Member{}, fmt.Errorf("%w: password cannot be empty", ErrInvalidMember)
		}
		h, err := utils.HashPassword(*patch.Password, l.bcryptCost)
		if err != nil {
			return model.Member{}, fmt.Errorf("hash password: %w", err)
		}
		hash = h
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.memberIndex(id)
	if i < 0 {
		return model.Member{}, ErrMemberNotFound
	}
	next := patch.Apply(l.members[i])
	if err := validateMember(next); err != nil {
		return model.Member{}, err
	}
	if j := l.memberIndexByEmail(next.Email); j >= 0 && j != i {
		return model.Member{}, ErrEmailTaken
	}
	if hash != "" {
		next.PasswordHash = hash
	}
	l.members[i] = next
	l.touch()
	return next, nil
}

// RemoveMember deletes the member together with all of its reservations
// and frees any place it still held in a schedule slot.
func (l *Ledger) RemoveMember(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.memberIndex(id)
	if i < 0 {
		return ErrMemberNotFound
	}
	l.members = append(l.members[:i], l.members[i+1:]...)

	kept := l.reservations[:0]
	for _, r := range l.reservations {
		if r.MemberID != id {
			kept = append(kept, r)
		}
	}
	l.reservations = kept

	for j := range l.slots {
		l.slots[j].Enrolled = removeString(l.slots[j].Enrolled, id)
	}
	l.touch()
	return nil
}

// Member returns the member with the given ID.
func (l *Ledger) Member(id string) (model.Member, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i := l.memberIndex(id); i >= 0 {
		return l.members[i], true
	}
	return model.Member{}, false
}

// Members returns every member in registration order.
func (l *Ledger) Members() []model.Member {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]model.Member(nil), l.members...)
}

// Authenticate matches email ignoring case and secret exactly.  It does
// not tell an unknown email apart from a wrong secret.
func (l *Ledger) Authenticate(email, secret string) (model.Member, bool) {
	l.mu.RLock()
	i := l.memberIndexByEmail(strings.TrimSpace(email))
	var m model.Member
	if i >= 0 {
		m = l.members[i]
	}
	l.mu.RUnlock()
	if i < 0 || m.PasswordHash == "" {
		return model.Member{}, false
	}
	if !utils.VerifyPassword(m.PasswordHash, secret) {
		return model.Member{}, false
	}
	return m, true
}

// SearchMembers returns members with the user role whose first name,
// last name or email contains term, ignoring case.  An empty term
// matches every such member.
func (l *Ledger) SearchMembers(term string) []model.Member {
	term = strings.ToLower(strings.TrimSpace(term))
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := []model.Member{}
	for _, m := range l.members {
		if m.Role != model.RoleUser {
			continue
		}
		if term == "" ||
			strings.Contains(strings.ToLower(m.FirstName), term) ||
			strings.Contains(strings.ToLower(m.LastName), term) ||
			strings.Contains(strings.ToLower(m.Email), term) {
			out = append(out, m)
		}
	}
	return out
}
