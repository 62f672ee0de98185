package onboarding_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/classtrackhq/classtrack/pkg/onboardsdk"
)

// TestPasswordResetRequestIsUniform verifies the endpoint never reveals
// whether an email has an account.
func TestPasswordResetRequestIsUniform(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := onboardsdk.NewClient(baseURL)
	bootstrapService(t, client)

	// Known and unknown emails both get the same 200.
	require.NoError(t, client.RequestPasswordReset(t.Context(), adminEmail))
	require.NoError(t, client.RequestPasswordReset(t.Context(), "nobody@classtrack.test"))
}

// TestPasswordResetConsumeRejectsBadTokens verifies malformed and forged
// tokens are refused without changing credentials.
func TestPasswordResetConsumeRejectsBadTokens(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := onboardsdk.NewClient(baseURL)
	bootstrapService(t, client)

	err := client.ConsumePasswordReset(t.Context(), "not-a-token", "NewPassword123!")
	requireAPIError(t, err, http.StatusBadRequest)

	err = client.ConsumePasswordReset(t.Context(), "selector.verifier", "NewPassword123!")
	requireAPIError(t, err, http.StatusBadRequest)

	// The admin's original password still works.
	loginAdmin(t, client)
}
