package onboardsdk

import "time"

// BootstrapRequest seeds an empty deployment with its first admin and
// organization.
type BootstrapRequest struct {
	SetupToken       string `json:"setup_token,omitempty"`
	AdminName        string `json:"admin_name"`
	AdminEmail       string `json:"admin_email"`
	AdminPassword    string `json:"admin_password"`
	OrganizationName string `json:"organization_name"`
}

type BootstrapResponse struct {
	AdminID        string `json:"admin_id"`
	OrganizationID string `json:"organization_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int64    `json:"expires_in"`
	AccountID   string   `json:"account_id"`
	Role        string   `json:"role"`
	Scopes      []string `json:"scopes,omitempty"`
}

// IssueLinkRequest mints a shareable registration link.
type IssueLinkRequest struct {
	LinkType       string     `json:"link_type"`
	OrganizationID string     `json:"organization_id"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	MaxUses        *int       `json:"max_uses,omitempty"`
}

// LinkResponse carries the raw token exactly once, at issuance. Subsequent
// reads only ever see metadata.
type LinkResponse struct {
	LinkID    string     `json:"link_id"`
	Token     string     `json:"token,omitempty"`
	LinkType  string     `json:"link_type"`
	OrgID     string     `json:"org_id"`
	OrgName   string     `json:"org_name"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	MaxUses   *int       `json:"max_uses,omitempty"`
	UsesCount int        `json:"uses_count"`
	IsActive  bool       `json:"is_active"`
}

// ValidateTokenResponse previews what a registration token grants.
type ValidateTokenResponse struct {
	Kind         string `json:"kind"`
	OrgID        string `json:"org_id"`
	OrgName      string `json:"org_name"`
	ApproverID   string `json:"approver_id"`
	ApproverName string `json:"approver_name,omitempty"`
	InviteeEmail string `json:"invitee_email,omitempty"`
}

// IssueInvitationRequest mints a single-use invitation bound to an email.
type IssueInvitationRequest struct {
	InviteeName  string     `json:"invitee_name"`
	InviteeEmail string     `json:"invitee_email"`
	Message      *string    `json:"message,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}

type InvitationResponse struct {
	InvitationID string    `json:"invitation_id"`
	Token        string    `json:"token,omitempty"`
	InviteeName  string    `json:"invitee_name"`
	InviteeEmail string    `json:"invitee_email"`
	OrgID        string    `json:"org_id"`
	OrgName      string    `json:"org_name"`
	Status       string    `json:"status"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// RegisterRequest creates a pending account from a link or invitation token.
type RegisterRequest struct {
	Token    string `json:"token"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	AccountID  string `json:"account_id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Status     string `json:"status"`
	ApproverID string `json:"approver_id"`
	OrgID      string `json:"org_id"`
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetResponse is deliberately uniform: it never confirms whether
// the email has an account.
type PasswordResetResponse struct {
	Message string `json:"message"`
}

type ConsumeResetRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Link      *string   `json:"link,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateOrganizationRequest struct {
	Name    string `json:"name"`
	OwnerID string `json:"owner_id,omitempty"`
}

type OrganizationResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	OwnerID string `json:"owner_id"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
