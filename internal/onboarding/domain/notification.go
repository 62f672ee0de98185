package domain

import "time"

// Notification types emitted by the onboarding flows.
const (
	NotificationRegistrationPending = "registration_pending"
	NotificationAccountApproved     = "account_approved"
	NotificationAccountRejected     = "account_rejected"
	NotificationInvitationAccepted  = "invitation_accepted"
)

// Notification is an in-app notice. Creation is a best-effort side effect:
// it never mutates or rolls back the operation that triggered it.
type Notification struct {
	ID          string
	RecipientID string
	Type        string
	Title       string
	Content     string
	Link        *string
	IsRead      bool
	CreatedAt   time.Time
}
