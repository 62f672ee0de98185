package domain

import "time"

// Account roles. Supervisors and principals register through invitation
// links; teachers register through named invitations; admins are created at
// bootstrap.
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RolePrincipal  = "principal"
	RoleTeacher    = "teacher"
)

// Account statuses. pending → active or pending → rejected happens exactly
// once via the approval flow; there are no automatic transitions afterwards.
const (
	AccountPending   = "pending"
	AccountActive    = "active"
	AccountRejected  = "rejected"
	AccountSuspended = "suspended"
)

type Account struct {
	ID           string
	Email        string
	Name         string
	Role         string
	Status       string
	ApproverID   string // account that must act on a pending registration
	OrgID        string
	PasswordHash string // argon2id encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ScopesForRole returns the session scopes granted to each role.
func ScopesForRole(role string) []string {
	switch role {
	case RoleAdmin:
		return []string{"admin:write", "links:write", "invites:write", "approvals:write", "notifications:read"}
	case RoleSupervisor:
		return []string{"links:write", "invites:write", "approvals:write", "notifications:read"}
	case RolePrincipal:
		return []string{"invites:write", "approvals:write", "notifications:read"}
	case RoleTeacher:
		return []string{"notifications:read"}
	default:
		return nil
	}
}

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSupervisor, RolePrincipal, RoleTeacher:
		return true
	}
	return false
}
