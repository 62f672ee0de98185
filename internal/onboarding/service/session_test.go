package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/classtrackhq/classtrack/internal/onboarding/domain"
	"github.com/classtrackhq/classtrack/internal/onboarding/store"
	"github.com/classtrackhq/classtrack/pkg/cryptox"
	"github.com/classtrackhq/classtrack/pkg/jwtx"
)

func seedCredentialedAccount(t *testing.T, s store.Store, org domain.Organization, status, email, password string) domain.Account {
	t.Helper()

	account := seedAccount(t, s, org, domain.RoleTeacher, status, email)
	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)
	require.NoError(t, s.Accounts().UpdatePasswordHash(context.Background(), account.ID, hash, time.Now().UTC()))
	account.PasswordHash = hash
	return account
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	_, org := seedOrg(t, s, "Clearwater")

	keys, err := jwtx.NewKeyPair("classtrack-test")
	require.NoError(t, err)
	svc := &SessionService{Store: s, Keys: keys}

	active := seedCredentialedAccount(t, s, org, domain.AccountActive, "active@example.com", "hunter2hunter2")

	t.Run("unknown email yields invalid credentials", func(t *testing.T) {
		_, err := svc.Login(ctx, "ghost@example.com", "whatever")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password yields invalid credentials", func(t *testing.T) {
		_, err := svc.Login(ctx, "active@example.com", "wrong-password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("pending account cannot log in", func(t *testing.T) {
		seedCredentialedAccount(t, s, org, domain.AccountPending, "pending-login@example.com", "hunter2hunter2")
		_, err := svc.Login(ctx, "pending-login@example.com", "hunter2hunter2")
		require.ErrorIs(t, err, ErrAccountNotActive)
	})

	t.Run("rejected account cannot log in", func(t *testing.T) {
		seedCredentialedAccount(t, s, org, domain.AccountRejected, "rejected-login@example.com", "hunter2hunter2")
		_, err := svc.Login(ctx, "rejected-login@example.com", "hunter2hunter2")
		require.ErrorIs(t, err, ErrAccountNotActive)
	})

	t.Run("active account receives a verifiable token with role scopes", func(t *testing.T) {
		session, err := svc.Login(ctx, "Active@Example.com", "hunter2hunter2")
		require.NoError(t, err)
		require.Equal(t, active.ID, session.AccountID)
		require.Equal(t, "Bearer", session.TokenType)
		require.Equal(t, domain.RoleTeacher, session.Role)

		claims, err := keys.Verify(session.AccessToken)
		require.NoError(t, err)
		require.Equal(t, active.ID, claims.Subject)
		require.Equal(t, domain.ScopesForRole(domain.RoleTeacher), claims.Scopes)
		require.True(t, claims.HasScope("notifications:read"))
		require.False(t, claims.HasScope("approvals:write"))
	})
}
