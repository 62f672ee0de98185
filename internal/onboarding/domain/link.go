package domain

import "time"

// Link types determine the role a registrant receives.
const (
	LinkTypeSupervisor = "supervisor"
	LinkTypePrincipal  = "principal"
)

// InvitationLink is a shareable registration link. Only the token fingerprint
// is stored; the raw token is returned once at issuance.
//
// Invariants: UsesCount never decreases; when MaxUses is set,
// UsesCount <= MaxUses holds even under concurrent redemption (the store
// increments conditionally and reports lost races via rows-affected).
type InvitationLink struct {
	ID        string
	TokenHash string
	LinkType  string
	OrgID     string
	OrgName   string // denormalized for display without a join
	CreatedBy string
	ExpiresAt *time.Time // nil = never expires
	MaxUses   *int       // nil = unlimited
	UsesCount int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoleForLinkType maps a link type to the role its registrants receive.
func RoleForLinkType(linkType string) (string, bool) {
	switch linkType {
	case LinkTypeSupervisor:
		return RoleSupervisor, true
	case LinkTypePrincipal:
		return RolePrincipal, true
	}
	return "", false
}

// Expired reports whether the link is past its expiry at the given time.
func (l *InvitationLink) Expired(now time.Time) bool {
	return l.ExpiresAt != nil && now.After(*l.ExpiresAt)
}

// Exhausted reports whether the usage budget is spent.
func (l *InvitationLink) Exhausted() bool {
	return l.MaxUses != nil && l.UsesCount >= *l.MaxUses
}
