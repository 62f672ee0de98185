package onboarding_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/classtrackhq/classtrack/pkg/onboardsdk"
)

// TestHealthEndpoints verifies the liveness and readiness probes.
func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := onboardsdk.NewClient(baseURL)

	require.NoError(t, client.Livez(t.Context()))
	require.NoError(t, client.Readyz(t.Context()))
}
