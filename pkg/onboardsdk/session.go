package onboardsdk

import (
	"context"
	"net/http"
)

// Session is an authenticated view of the service, bound to the access token
// from a successful login. Tokens are short-lived; create a fresh session via
// Client.Login when one expires.
type Session struct {
	client *Client
	token  string

	// Login is the response that created this session.
	Login LoginResponse
}

// AccessToken exposes the raw bearer token, e.g. for passing to another
// client.
func (s *Session) AccessToken() string { return s.token }

// IssueLink mints a shareable registration link. Requires links:write.
func (s *Session) IssueLink(ctx context.Context, req IssueLinkRequest) (*LinkResponse, error) {
	var out LinkResponse
	if err := s.client.doJSON(ctx, http.MethodPost, "/v1/links", req, s.token, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeactivateLink turns a link off. Requires links:write.
func (s *Session) DeactivateLink(ctx context.Context, linkID string) error {
	return s.client.doJSON(ctx, http.MethodPost, "/v1/links/"+linkID+"/deactivate",
		nil, s.token, nil, http.StatusNoContent)
}

// IssueInvitation mints a single-use invitation bound to an email. Requires
// invites:write.
func (s *Session) IssueInvitation(ctx context.Context, req IssueInvitationRequest) (*InvitationResponse, error) {
	var out InvitationResponse
	if err := s.client.doJSON(ctx, http.MethodPost, "/v1/invitations", req, s.token, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// RevokeInvitation withdraws a pending invitation. Requires invites:write.
func (s *Session) RevokeInvitation(ctx context.Context, invitationID string) error {
	return s.client.doJSON(ctx, http.MethodPost, "/v1/invitations/"+invitationID+"/revoke",
		nil, s.token, nil, http.StatusNoContent)
}

// ApproveAccount activates a pending registration. Requires approvals:write
// and being the account's assigned approver.
func (s *Session) ApproveAccount(ctx context.Context, accountID string) error {
	return s.client.doJSON(ctx, http.MethodPost, "/v1/accounts/"+accountID+"/approve",
		nil, s.token, nil, http.StatusNoContent)
}

// RejectAccount permanently rejects a pending registration. Requires
// approvals:write and being the account's assigned approver.
func (s *Session) RejectAccount(ctx context.Context, accountID string) error {
	return s.client.doJSON(ctx, http.MethodPost, "/v1/accounts/"+accountID+"/reject",
		nil, s.token, nil, http.StatusNoContent)
}

// Notifications lists the caller's unread notices, newest first. Requires
// notifications:read.
func (s *Session) Notifications(ctx context.Context) ([]NotificationResponse, error) {
	var out []NotificationResponse
	if err := s.client.doJSON(ctx, http.MethodGet, "/v1/notifications", nil, s.token, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkNotificationRead acknowledges one notification.
func (s *Session) MarkNotificationRead(ctx context.Context, notificationID string) error {
	return s.client.doJSON(ctx, http.MethodPost, "/v1/notifications/"+notificationID+"/read",
		nil, s.token, nil, http.StatusNoContent)
}

// CreateOrganization adds an organization. Requires admin:write.
func (s *Session) CreateOrganization(ctx context.Context, req CreateOrganizationRequest) (*OrganizationResponse, error) {
	var out OrganizationResponse
	if err := s.client.doJSON(ctx, http.MethodPost, "/v1/organizations", req, s.token, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}
