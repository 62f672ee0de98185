package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/classtrackhq/classtrack/internal/onboarding/domain"
	"github.com/classtrackhq/classtrack/internal/onboarding/store"
	"github.com/classtrackhq/classtrack/internal/onboarding/store/drivers/sqlite"
	"github.com/classtrackhq/classtrack/pkg/cryptox"
	"github.com/classtrackhq/classtrack/pkg/idx"
)

func TestMain(m *testing.M) {
	// Use a throwaway pepper so tests never touch a real pepper file.
	dir, err := os.MkdirTemp("", "service-test-*")
	if err != nil {
		panic(err)
	}

	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// newTestStore returns a migrated in-memory sqlite store.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

// seedOrg creates an active supervisor account and an organization owned by
// it, the usual precondition for link and invitation flows.
func seedOrg(t *testing.T, s store.Store, name string) (domain.Account, domain.Organization) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	owner := domain.Account{
		ID:           idx.New().String(),
		Email:        name + "-owner@example.com",
		Name:         name + " Owner",
		Role:         domain.RoleSupervisor,
		Status:       domain.AccountActive,
		PasswordHash: "unused",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	owner.ApproverID = owner.ID

	org := domain.Organization{
		ID:        idx.New().String(),
		Name:      name,
		OwnerID:   owner.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	owner.OrgID = org.ID

	require.NoError(t, s.Accounts().CreateAccount(ctx, owner))
	require.NoError(t, s.Organizations().CreateOrganization(ctx, org))
	return owner, org
}

// seedAccount inserts an account with the given role and status into the org.
func seedAccount(t *testing.T, s store.Store, org domain.Organization, role, status, email string) domain.Account {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	a := domain.Account{
		ID:           idx.New().String(),
		Email:        email,
		Name:         "Seeded " + role,
		Role:         role,
		Status:       status,
		ApproverID:   org.OwnerID,
		OrgID:        org.ID,
		PasswordHash: "unused",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Accounts().CreateAccount(ctx, a))
	return a
}

func intPtr(n int) *int              { return &n }
func timePtr(t time.Time) *time.Time { return &t }
