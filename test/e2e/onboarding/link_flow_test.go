package onboarding_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/classtrackhq/classtrack/pkg/onboardsdk"
)

// TestLinkRegistrationFlow walks the full lifecycle: issue a link, validate
// it, register through it, approve the registration, and log in.
func TestLinkRegistrationFlow(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := onboardsdk.NewClient(baseURL)
	adminID, orgID := bootstrapService(t, client)
	admin := loginAdmin(t, client)

	maxUses := 2
	link, err := admin.IssueLink(t.Context(), onboardsdk.IssueLinkRequest{
		LinkType:       "principal",
		OrganizationID: orgID,
		MaxUses:        &maxUses,
	})
	require.NoError(t, err)
	require.NotEmpty(t, link.Token)

	// Anyone holding the token can preview what it grants.
	preview, err := client.ValidateToken(t.Context(), link.Token)
	require.NoError(t, err)
	require.Equal(t, "principal", preview.Kind)
	require.Equal(t, orgID, preview.OrgID)
	require.Equal(t, adminID, preview.ApproverID)

	reg, err := client.Register(t.Context(), onboardsdk.RegisterRequest{
		Token:    link.Token,
		Name:     "Pat Principal",
		Email:    "pat@classtrack.test",
		Password: "Principal123!",
	})
	require.NoError(t, err)
	require.Equal(t, "principal", reg.Role)
	require.Equal(t, "pending", reg.Status)
	require.Equal(t, adminID, reg.ApproverID)

	// Pending accounts cannot log in.
	_, err = client.Login(t.Context(), "pat@classtrack.test", "Principal123!")
	requireAPIError(t, err, http.StatusForbidden)

	// The approver was notified and can approve.
	notices, err := admin.Notifications(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, notices)
	require.Equal(t, "registration_pending", notices[0].Type)

	require.NoError(t, admin.ApproveAccount(t.Context(), reg.AccountID))

	// Approving twice reports a conflict.
	err = admin.ApproveAccount(t.Context(), reg.AccountID)
	requireAPIError(t, err, http.StatusConflict)

	// The approved principal can now log in and sees their approval notice.
	principal, err := client.Login(t.Context(), "pat@classtrack.test", "Principal123!")
	require.NoError(t, err)
	require.Equal(t, "principal", principal.Login.Role)

	principalNotices, err := principal.Notifications(t.Context())
	require.NoError(t, err)
	require.Len(t, principalNotices, 1)
	require.Equal(t, "account_approved", principalNotices[0].Type)

	require.NoError(t, principal.MarkNotificationRead(t.Context(), principalNotices[0].ID))
}

// TestLinkBudgetAndDeactivation verifies exhaustion and deactivation over
// the HTTP surface.
func TestLinkBudgetAndDeactivation(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := onboardsdk.NewClient(baseURL)
	_, orgID := bootstrapService(t, client)
	admin := loginAdmin(t, client)

	maxUses := 1
	link, err := admin.IssueLink(t.Context(), onboardsdk.IssueLinkRequest{
		LinkType:       "supervisor",
		OrganizationID: orgID,
		MaxUses:        &maxUses,
	})
	require.NoError(t, err)

	_, err = client.Register(t.Context(), onboardsdk.RegisterRequest{
		Token:    link.Token,
		Name:     "Sam Supervisor",
		Email:    "sam@classtrack.test",
		Password: "Supervisor123!",
	})
	require.NoError(t, err)

	// The budget is spent; both validation and registration report 410.
	_, err = client.ValidateToken(t.Context(), link.Token)
	requireAPIError(t, err, http.StatusGone)

	_, err = client.Register(t.Context(), onboardsdk.RegisterRequest{
		Token:    link.Token,
		Name:     "Late Larry",
		Email:    "larry@classtrack.test",
		Password: "Whatever123!",
	})
	requireAPIError(t, err, http.StatusGone)

	// Deactivation on a fresh link.
	fresh, err := admin.IssueLink(t.Context(), onboardsdk.IssueLinkRequest{
		LinkType:       "supervisor",
		OrganizationID: orgID,
	})
	require.NoError(t, err)
	require.NoError(t, admin.DeactivateLink(t.Context(), fresh.LinkID))

	_, err = client.ValidateToken(t.Context(), fresh.Token)
	requireAPIError(t, err, http.StatusGone)
}

// TestUnknownTokenIs404 verifies random tokens report not found, not gone.
func TestUnknownTokenIs404(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := onboardsdk.NewClient(baseURL)
	bootstrapService(t, client)

	_, err := client.ValidateToken(t.Context(), "not-a-real-token")
	requireAPIError(t, err, http.StatusNotFound)
}
