package jwtx

import (
	"errors"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/classtrackhq/classtrack/pkg/idx"
)

// DefaultSessionTTL is the default lifetime for session access tokens.
const DefaultSessionTTL = 30 * time.Minute

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// Claims are the session-token claims shared across the service. Scopes gate
// endpoint access; Role and Name are carried for display and auditing.
type Claims struct {
	jwt.RegisteredClaims

	// Scopes like "links:write approvals:write", kept as a list.
	Scopes []string `json:"scopes,omitempty"`

	// Role is the account role ("admin", "supervisor", ...).
	Role string `json:"role,omitempty"`

	// Name is the account display name.
	Name string `json:"name,omitempty"`
}

// NewSessionClaims builds minimally-correct claims for an account session.
func NewSessionClaims(
	subject, role, name string,
	scopes []string,
	issuer string,
	ttl time.Duration,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        idx.New().String(),
		},
		Scopes: scopes,
		Role:   role,
		Name:   name,
	}
}

// HasScope reports whether the claims carry the given scope.
func (c *Claims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}

// ValidateIssuer checks the issuer when an expected value is configured.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token is inside its exp/nbf window.
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
