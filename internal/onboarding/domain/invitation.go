package domain

import "time"

// Invitation statuses.
const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationRejected = "rejected"
	InvitationExpired  = "expired"
)

// Invitation is an email-targeted invite. At most one live pending invitation
// exists per (issuer, invitee email) pair.
type Invitation struct {
	ID            string
	IssuerID      string
	OrgID         string
	OrgName       string
	InviteeName   string
	InviteeEmail  string
	TokenHash     string
	Status        string
	ExpiresAt     time.Time
	AcceptedAt    *time.Time
	Message       *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Expired reports whether the invitation is past its expiry.
func (i *Invitation) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
