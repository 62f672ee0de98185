package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/classtrackhq/classtrack/internal/onboarding/domain"
)

func TestIssueInvitation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	_, org := seedOrg(t, s, "Riverbend")
	issuer := seedAccount(t, s, org, domain.RolePrincipal, domain.AccountActive, "issuer@example.com")
	svc := &InvitationService{Store: s}

	t.Run("rejects blank invitee fields", func(t *testing.T) {
		_, _, err := svc.Issue(ctx, issuer.ID, "", "someone@example.com", nil, nil)
		require.ErrorIs(t, err, ErrInvalidInvitationRequest)

		_, _, err = svc.Issue(ctx, issuer.ID, "Someone", "  ", nil, nil)
		require.ErrorIs(t, err, ErrInvalidInvitationRequest)
	})

	t.Run("issues a pending invitation with the issuer's org", func(t *testing.T) {
		msg := "Welcome aboard"
		token, inv, err := svc.Issue(ctx, issuer.ID, "New Teacher", "NT@Example.com", &msg, nil)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		require.Equal(t, domain.InvitationPending, inv.Status)
		require.Equal(t, org.ID, inv.OrgID)
		require.Equal(t, org.Name, inv.OrgName)
		require.Equal(t, "nt@example.com", inv.InviteeEmail)
		require.NotEqual(t, token, inv.TokenHash)
		require.WithinDuration(t, time.Now().UTC().Add(DefaultInvitationTTL), inv.ExpiresAt, time.Minute)
	})

	t.Run("refuses a second pending invitation for the same invitee", func(t *testing.T) {
		_, _, err := svc.Issue(ctx, issuer.ID, "New Teacher", "nt@example.com", nil, nil)
		require.ErrorIs(t, err, ErrDuplicatePendingInvitation)
	})

	t.Run("another issuer may invite the same email", func(t *testing.T) {
		other := seedAccount(t, s, org, domain.RolePrincipal, domain.AccountActive, "other-issuer@example.com")
		_, _, err := svc.Issue(ctx, other.ID, "New Teacher", "nt@example.com", nil, nil)
		require.NoError(t, err)
	})
}

func TestRevokeInvitation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	_, org := seedOrg(t, s, "Oakwood")
	issuer := seedAccount(t, s, org, domain.RolePrincipal, domain.AccountActive, "rev-issuer@example.com")
	svc := &InvitationService{Store: s}

	token, inv, err := svc.Issue(ctx, issuer.ID, "Target", "target@example.com", nil, nil)
	require.NoError(t, err)

	t.Run("only the issuer may revoke", func(t *testing.T) {
		stranger := seedAccount(t, s, org, domain.RolePrincipal, domain.AccountActive, "stranger2@example.com")
		require.ErrorIs(t, svc.Revoke(ctx, stranger.ID, inv.ID), ErrForbidden)
	})

	t.Run("revocation makes the token unusable", func(t *testing.T) {
		require.NoError(t, svc.Revoke(ctx, issuer.ID, inv.ID))

		reg := &RegistrationService{Store: s}
		_, err := reg.Register(ctx, token, Registrant{
			Name: "Target", Email: "target@example.com", Password: "pw",
		})
		require.ErrorIs(t, err, ErrTokenNotFound)
	})

	t.Run("revoking twice reports already processed", func(t *testing.T) {
		require.ErrorIs(t, svc.Revoke(ctx, issuer.ID, inv.ID), ErrAlreadyProcessed)
	})

	t.Run("a revoked invitation frees the invitee for reissue", func(t *testing.T) {
		_, _, err := svc.Issue(ctx, issuer.ID, "Target", "target@example.com", nil, nil)
		require.NoError(t, err)
	})

	t.Run("unknown invitation is not found", func(t *testing.T) {
		require.ErrorIs(t, svc.Revoke(ctx, issuer.ID, "no-such-invitation"), ErrInvitationNotFound)
	})
}
