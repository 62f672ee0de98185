// Package onboardsdk is a typed client for the ClassTrack onboarding
// service. The Client covers the public surface (registration, validation,
// password resets); a Session obtained from Login covers the authenticated
// surface (links, invitations, approvals, notifications).
package onboardsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the onboarding service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// doJSON performs a request with an optional JSON body and optional bearer
// token, decoding the response into target when it is non-nil.
func (c *Client) doJSON(
	ctx context.Context,
	method, path string,
	body any,
	bearer string,
	target any,
	expectedStatus int,
) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, payload)
	}
	if target == nil {
		return nil
	}
	if err := json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Bootstrap seeds an empty deployment. Public, but guarded by the setup
// token when the server has one configured.
func (c *Client) Bootstrap(ctx context.Context, req BootstrapRequest) (*BootstrapResponse, error) {
	var out BootstrapResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/bootstrap", req, "", &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a Session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var out LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/sessions",
		LoginRequest{Email: email, Password: password}, "", &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &Session{client: c, token: out.AccessToken, Login: out}, nil
}

// ValidateToken previews what a registration token grants without consuming
// anything. Public.
func (c *Client) ValidateToken(ctx context.Context, token string) (*ValidateTokenResponse, error) {
	var out ValidateTokenResponse
	path := "/v1/tokens/validate?token=" + token
	if err := c.doJSON(ctx, http.MethodGet, path, nil, "", &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a pending account from a link or invitation token. Public.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var out RegisterResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/registrations", req, "", &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestPasswordReset asks for a reset token to be delivered out of band.
// The response is uniform whether or not the email has an account.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/password-resets",
		PasswordResetRequest{Email: email}, "", nil, http.StatusOK)
}

// ConsumePasswordReset redeems a reset token for a new password. Public.
func (c *Client) ConsumePasswordReset(ctx context.Context, token, newPassword string) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/password-resets/consume",
		ConsumeResetRequest{Token: token, NewPassword: newPassword}, "", nil, http.StatusNoContent)
}

// Livez reports whether the service is up.
func (c *Client) Livez(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/livez", nil, "", nil, http.StatusOK)
}

// Readyz reports whether the service can reach its database.
func (c *Client) Readyz(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/readyz", nil, "", nil, http.StatusOK)
}
