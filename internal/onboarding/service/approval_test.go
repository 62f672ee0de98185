package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/classtrackhq/classtrack/internal/onboarding/domain"
)

func TestApprovalOwnership(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	owner, org := seedOrg(t, s, "Brookside")
	pending := seedAccount(t, s, org, domain.RoleTeacher, domain.AccountPending, "pending@example.com")

	notifier := &NotificationService{Store: s}
	svc := &ApprovalService{Store: s, Notifier: notifier}

	t.Run("unknown account is not found", func(t *testing.T) {
		require.ErrorIs(t, svc.Approve(ctx, owner.ID, "no-such-account"), ErrAccountNotFound)
	})

	t.Run("non-approver is refused before any state change", func(t *testing.T) {
		other := seedAccount(t, s, org, domain.RoleSupervisor, domain.AccountActive, "not-approver@example.com")
		require.ErrorIs(t, svc.Approve(ctx, other.ID, pending.ID), ErrForbidden)
		require.ErrorIs(t, svc.Reject(ctx, other.ID, pending.ID), ErrForbidden)

		stored, err := s.Accounts().GetAccountByID(ctx, pending.ID)
		require.NoError(t, err)
		require.Equal(t, domain.AccountPending, stored.Status)
	})

	t.Run("approver activates the account and the registrant is notified", func(t *testing.T) {
		require.NoError(t, svc.Approve(ctx, owner.ID, pending.ID))

		stored, err := s.Accounts().GetAccountByID(ctx, pending.ID)
		require.NoError(t, err)
		require.Equal(t, domain.AccountActive, stored.Status)

		notices, err := notifier.ListUnread(ctx, pending.ID)
		require.NoError(t, err)
		require.Len(t, notices, 1)
		require.Equal(t, domain.NotificationAccountApproved, notices[0].Type)
	})

	t.Run("a settled account cannot be settled again", func(t *testing.T) {
		require.ErrorIs(t, svc.Approve(ctx, owner.ID, pending.ID), ErrAlreadyProcessed)
		require.ErrorIs(t, svc.Reject(ctx, owner.ID, pending.ID), ErrAlreadyProcessed)

		stored, err := s.Accounts().GetAccountByID(ctx, pending.ID)
		require.NoError(t, err)
		require.Equal(t, domain.AccountActive, stored.Status)
	})
}

func TestRejectIsTerminal(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	owner, org := seedOrg(t, s, "Fairview")
	pending := seedAccount(t, s, org, domain.RoleTeacher, domain.AccountPending, "doomed@example.com")

	notifier := &NotificationService{Store: s}
	svc := &ApprovalService{Store: s, Notifier: notifier}

	require.NoError(t, svc.Reject(ctx, owner.ID, pending.ID))

	stored, err := s.Accounts().GetAccountByID(ctx, pending.ID)
	require.NoError(t, err)
	require.Equal(t, domain.AccountRejected, stored.Status)

	// No way back, in either direction.
	require.ErrorIs(t, svc.Approve(ctx, owner.ID, pending.ID), ErrAlreadyProcessed)
	require.ErrorIs(t, svc.Reject(ctx, owner.ID, pending.ID), ErrAlreadyProcessed)

	notices, err := notifier.ListUnread(ctx, pending.ID)
	require.NoError(t, err)
	require.Len(t, notices, 1)
	require.Equal(t, domain.NotificationAccountRejected, notices[0].Type)
}

func TestConcurrentDecisionsAdmitOne(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	owner, org := seedOrg(t, s, "Midtown")
	pending := seedAccount(t, s, org, domain.RoleTeacher, domain.AccountPending, "contested@example.com")

	svc := &ApprovalService{Store: s}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	decide := func(fn func(context.Context, string, string) error) {
		defer wg.Done()
		err := fn(ctx, owner.ID, pending.ID)

		mu.Lock()
		defer mu.Unlock()
		switch {
		case err == nil:
			succeeded++
		case err == ErrAlreadyProcessed:
			conflicts++
		default:
			t.Errorf("unexpected settle error: %v", err)
		}
	}

	for i := 0; i < 4; i++ {
		wg.Add(2)
		go decide(svc.Approve)
		go decide(svc.Reject)
	}
	wg.Wait()

	require.Equal(t, 1, succeeded)
	require.Equal(t, 7, conflicts)

	stored, err := s.Accounts().GetAccountByID(ctx, pending.ID)
	require.NoError(t, err)
	require.Contains(t, []string{domain.AccountActive, domain.AccountRejected}, stored.Status)
}
