package jwtx_test

import (
	"testing"
	"time"

	"github.com/classtrackhq/classtrack/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	keys, err := jwtx.NewKeyPair("classtrack-onboarding")
	require.NoError(t, err)

	claims := jwtx.NewSessionClaims(
		"account-123",
		"supervisor",
		"Dana",
		[]string{"links:write", "approvals:write"},
		"classtrack-onboarding",
		time.Minute,
		time.Now().UTC(),
	)

	token, err := keys.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := keys.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "account-123", got.Subject)
	require.Equal(t, "supervisor", got.Role)
	require.True(t, got.HasScope("links:write"))
	require.False(t, got.HasScope("admin:write"))
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	keys, err := jwtx.NewKeyPair("classtrack-onboarding")
	require.NoError(t, err)

	claims := jwtx.NewSessionClaims(
		"account-123", "teacher", "T", nil,
		"classtrack-onboarding",
		time.Minute,
		time.Now().UTC().Add(-time.Hour),
	)

	token, err := keys.Sign(claims)
	require.NoError(t, err)

	_, err = keys.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	t.Parallel()

	ours, err := jwtx.NewKeyPair("classtrack-onboarding")
	require.NoError(t, err)
	theirs, err := jwtx.NewKeyPair("classtrack-onboarding")
	require.NoError(t, err)

	claims := jwtx.NewSessionClaims(
		"account-123", "teacher", "T", nil,
		"classtrack-onboarding",
		time.Minute,
		time.Now().UTC(),
	)
	token, err := theirs.Sign(claims)
	require.NoError(t, err)

	_, err = ours.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	keys, err := jwtx.NewKeyPair("expected-issuer")
	require.NoError(t, err)

	claims := jwtx.NewSessionClaims(
		"account-123", "teacher", "T", nil,
		"other-issuer",
		time.Minute,
		time.Now().UTC(),
	)
	token, err := keys.Sign(claims)
	require.NoError(t, err)

	_, err = keys.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	keys, err := jwtx.NewKeyPair("classtrack-onboarding")
	require.NoError(t, err)

	_, err = keys.Verify("definitely.not.a-jwt")
	require.Error(t, err)
}
