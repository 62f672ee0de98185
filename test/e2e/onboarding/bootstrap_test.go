package onboarding_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/classtrackhq/classtrack/pkg/onboardsdk"
)

// TestBootstrapAndLogin verifies bootstrap seeds a working admin account.
func TestBootstrapAndLogin(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := onboardsdk.NewClient(baseURL)

	adminID, orgID := bootstrapService(t, client)
	t.Logf("Admin ID: %s, Org ID: %s", adminID, orgID)

	session := loginAdmin(t, client)
	require.Equal(t, adminID, session.Login.AccountID)
	require.Equal(t, "admin", session.Login.Role)
	require.Contains(t, session.Login.Scopes, "links:write")
}

// TestBootstrapWorksOnlyOnce verifies a second bootstrap is rejected.
func TestBootstrapWorksOnlyOnce(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := onboardsdk.NewClient(baseURL)
	bootstrapService(t, client)

	_, err := client.Bootstrap(t.Context(), onboardsdk.BootstrapRequest{
		SetupToken:       setupToken,
		AdminName:        "Another Admin",
		AdminEmail:       "admin2@classtrack.test",
		AdminPassword:    "AnotherPassword123!",
		OrganizationName: "Another District",
	})
	requireAPIError(t, err, http.StatusConflict)
}

// TestBootstrapRequiresSetupToken verifies the setup token gate.
func TestBootstrapRequiresSetupToken(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := onboardsdk.NewClient(baseURL)

	_, err := client.Bootstrap(t.Context(), onboardsdk.BootstrapRequest{
		SetupToken:       "wrong-token",
		AdminName:        adminName,
		AdminEmail:       adminEmail,
		AdminPassword:    adminPassword,
		OrganizationName: orgName,
	})
	requireAPIError(t, err, http.StatusForbidden)
}
