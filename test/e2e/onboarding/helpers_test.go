package onboarding_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/classtrackhq/classtrack/pkg/onboardsdk"
)

/*
 * Common constants and helper functions for onboarding service end-to-end
 * tests: container setup, bootstrap, and login helpers.
 */

const (
	testImageName = "classtrack-onboarding-test:latest"

	setupToken    = "test-setup-token-12345"
	adminName     = "Administrator"
	adminEmail    = "admin@classtrack.test"
	adminPassword = "Admin123!"
	orgName       = "Test District"
)

// TestMain builds the Docker image once before all tests and cleans it up
// after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Onboarding Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Onboarding Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/onboarding/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupContainer starts the onboarding service in a container and returns the
// base URL. Rate limits are raised well above anything the tests can hit.
func setupContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"SETUP_TOKEN":               setupToken,
			"ONBOARDING_DATABASE_FILE":  "/onboarding.db",
			"ONBOARDING_PEPPER_FILE":    "/pepper",
			"ONBOARDING_ISSUER":         "classtrack-onboarding",
			"ENV":                       "test",
			"LOG_LEVEL":                 "info",
			"LOG_FORMAT":                "json",
			"RATELIMIT_STRICT_REQUESTS": "1000",
			"RATELIMIT_STRICT_BURST":    "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// bootstrapService seeds the deployment and returns the admin and org IDs.
func bootstrapService(t *testing.T, client *onboardsdk.Client) (adminID, orgID string) {
	t.Helper()

	res, err := client.Bootstrap(t.Context(), onboardsdk.BootstrapRequest{
		SetupToken:       setupToken,
		AdminName:        adminName,
		AdminEmail:       adminEmail,
		AdminPassword:    adminPassword,
		OrganizationName: orgName,
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.AdminID)
	require.NotEmpty(t, res.OrganizationID)

	return res.AdminID, res.OrganizationID
}

// loginAdmin returns an authenticated admin session.
func loginAdmin(t *testing.T, client *onboardsdk.Client) *onboardsdk.Session {
	t.Helper()

	session, err := client.Login(t.Context(), adminEmail, adminPassword)
	require.NoError(t, err)
	require.NotEmpty(t, session.AccessToken())

	return session
}

// requireAPIError asserts err is an APIError with the given HTTP status.
func requireAPIError(t *testing.T, err error, status int) *onboardsdk.APIError {
	t.Helper()

	require.Error(t, err)
	apiErr, ok := err.(*onboardsdk.APIError)
	require.True(t, ok, "expected *onboardsdk.APIError, got %T: %v", err, err)
	require.Equal(t, status, apiErr.StatusCode)
	return apiErr
}
