package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/classtrackhq/classtrack/internal/onboarding/domain"
)

func TestBootstrap(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &BootstrapService{Store: s, Token: "secret-setup-token"}

	t.Run("wrong token is refused", func(t *testing.T) {
		_, err := svc.Bootstrap(ctx, "nope", "Admin", "admin@example.com", "pw", "District One")
		require.ErrorIs(t, err, ErrInvalidBootstrapToken)
	})

	t.Run("seeds the admin and organization", func(t *testing.T) {
		res, err := svc.Bootstrap(ctx, "secret-setup-token", "Admin", "admin@example.com", "pw", "District One")
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, res.Admin.Role)
		require.Equal(t, domain.AccountActive, res.Admin.Status)
		require.Equal(t, res.Admin.ID, res.Organization.OwnerID)
		require.Equal(t, res.Organization.ID, res.Admin.OrgID)

		stored, err := s.Accounts().GetAccountByEmail(ctx, "admin@example.com")
		require.NoError(t, err)
		require.Equal(t, res.Admin.ID, stored.ID)
	})

	t.Run("works only once", func(t *testing.T) {
		_, err := svc.Bootstrap(ctx, "secret-setup-token", "Admin Two", "admin2@example.com", "pw", "District Two")
		require.ErrorIs(t, err, ErrAlreadyBootstrapped)
	})
}

func TestCreateOrganization(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &BootstrapService{Store: s}

	res, err := svc.Bootstrap(ctx, "", "Admin", "admin@example.com", "pw", "District One")
	require.NoError(t, err)
	admin := res.Admin

	t.Run("admin creates an organization for another owner", func(t *testing.T) {
		owner := seedAccount(t, s, res.Organization, domain.RoleSupervisor, domain.AccountActive, "region@example.com")

		org, err := svc.CreateOrganization(ctx, admin.ID, "Northern Region", owner.ID)
		require.NoError(t, err)
		require.Equal(t, owner.ID, org.OwnerID)
	})

	t.Run("owner defaults to the actor", func(t *testing.T) {
		org, err := svc.CreateOrganization(ctx, admin.ID, "Default Owner Org", "")
		require.NoError(t, err)
		require.Equal(t, admin.ID, org.OwnerID)
	})

	t.Run("non-admin is refused", func(t *testing.T) {
		sup := seedAccount(t, s, res.Organization, domain.RoleSupervisor, domain.AccountActive, "sup@example.com")
		_, err := svc.CreateOrganization(ctx, sup.ID, "Rogue Org", "")
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown owner is not found", func(t *testing.T) {
		_, err := svc.CreateOrganization(ctx, admin.ID, "Ghost Org", "no-such-owner")
		require.ErrorIs(t, err, ErrAccountNotFound)
	})
}
