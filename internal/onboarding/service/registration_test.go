package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/classtrackhq/classtrack/internal/onboarding/domain"
)

func TestRegisterViaLink(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	owner, org := seedOrg(t, s, "Hillcrest")

	notifier := &NotificationService{Store: s}
	links := &LinkService{Store: s}
	svc := &RegistrationService{Store: s, Notifier: notifier}

	t.Run("rejects incomplete forms", func(t *testing.T) {
		_, err := svc.Register(ctx, "whatever", Registrant{Name: "X", Email: "", Password: "pw"})
		require.ErrorIs(t, err, ErrInvalidRegistration)
	})

	t.Run("unknown token is not found", func(t *testing.T) {
		_, err := svc.Register(ctx, "bogus-token", Registrant{Name: "X", Email: "x@example.com", Password: "pw"})
		require.ErrorIs(t, err, ErrTokenNotFound)
	})

	t.Run("creates a pending account with role and approver from the link", func(t *testing.T) {
		token, _, err := links.IssueLink(ctx, owner.ID, domain.LinkTypePrincipal, org.ID, nil, intPtr(3))
		require.NoError(t, err)

		account, err := svc.Register(ctx, token, Registrant{
			Name:     "Pat Jones",
			Email:    "Pat.Jones@Example.com",
			Password: "correct horse battery staple",
		})
		require.NoError(t, err)
		require.Equal(t, domain.RolePrincipal, account.Role)
		require.Equal(t, domain.AccountPending, account.Status)
		require.Equal(t, owner.ID, account.ApproverID)
		require.Equal(t, org.ID, account.OrgID)
		require.Equal(t, "pat.jones@example.com", account.Email)

		// The approver gets a pending-registration notice.
		notices, err := notifier.ListUnread(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, notices, 1)
		require.Equal(t, domain.NotificationRegistrationPending, notices[0].Type)
	})

	t.Run("duplicate email fails and the consumed use stays consumed", func(t *testing.T) {
		token, link, err := links.IssueLink(ctx, owner.ID, domain.LinkTypeSupervisor, org.ID, nil, intPtr(2))
		require.NoError(t, err)

		_, err = svc.Register(ctx, token, Registrant{
			Name:     "First In",
			Email:    "taken@example.com",
			Password: "pw-one",
		})
		require.NoError(t, err)

		_, err = svc.Register(ctx, token, Registrant{
			Name:     "Second In",
			Email:    "taken@example.com",
			Password: "pw-two",
		})
		require.ErrorIs(t, err, ErrDuplicateAccount)

		stored, err := s.Links().GetLinkByID(ctx, link.ID)
		require.NoError(t, err)
		require.Equal(t, 2, stored.UsesCount)

		_, err = links.Redeem(ctx, token)
		require.ErrorIs(t, err, ErrLinkExhausted)
	})

	t.Run("exhausted link refuses registration", func(t *testing.T) {
		token, _, err := links.IssueLink(ctx, owner.ID, domain.LinkTypePrincipal, org.ID, nil, intPtr(1))
		require.NoError(t, err)

		_, err = svc.Register(ctx, token, Registrant{
			Name: "Lucky", Email: "lucky@example.com", Password: "pw",
		})
		require.NoError(t, err)

		_, err = svc.Register(ctx, token, Registrant{
			Name: "Unlucky", Email: "unlucky@example.com", Password: "pw",
		})
		require.ErrorIs(t, err, ErrLinkExhausted)
	})

	t.Run("deactivated link refuses registration", func(t *testing.T) {
		token, link, err := links.IssueLink(ctx, owner.ID, domain.LinkTypePrincipal, org.ID, nil, nil)
		require.NoError(t, err)
		require.NoError(t, links.Deactivate(ctx, owner.ID, link.ID))

		_, err = svc.Register(ctx, token, Registrant{
			Name: "Late", Email: "late@example.com", Password: "pw",
		})
		require.ErrorIs(t, err, ErrLinkInactive)
	})
}

func TestRegisterViaInvitation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	_, org := seedOrg(t, s, "Lakeview")
	principal := seedAccount(t, s, org, domain.RolePrincipal, domain.AccountActive, "principal@example.com")

	notifier := &NotificationService{Store: s}
	invites := &InvitationService{Store: s}
	svc := &RegistrationService{Store: s, Notifier: notifier}

	t.Run("email must match the invitation", func(t *testing.T) {
		token, _, err := invites.Issue(ctx, principal.ID, "Sam Lee", "sam.lee@example.com", nil, nil)
		require.NoError(t, err)

		_, err = svc.Register(ctx, token, Registrant{
			Name: "Sam Lee", Email: "other@example.com", Password: "pw",
		})
		require.ErrorIs(t, err, ErrEmailMismatch)

		// The mismatch does not consume the invitation.
		account, err := svc.Register(ctx, token, Registrant{
			Name: "Sam Lee", Email: "Sam.Lee@example.com", Password: "pw",
		})
		require.NoError(t, err)
		require.Equal(t, domain.RoleTeacher, account.Role)
		require.Equal(t, domain.AccountPending, account.Status)
		require.Equal(t, principal.ID, account.ApproverID)
		require.Equal(t, org.ID, account.OrgID)
	})

	t.Run("invitation is single use", func(t *testing.T) {
		token, _, err := invites.Issue(ctx, principal.ID, "Kim Cho", "kim.cho@example.com", nil, nil)
		require.NoError(t, err)

		_, err = svc.Register(ctx, token, Registrant{
			Name: "Kim Cho", Email: "kim.cho@example.com", Password: "pw",
		})
		require.NoError(t, err)

		_, err = svc.Register(ctx, token, Registrant{
			Name: "Kim Cho", Email: "kim.cho@example.com", Password: "pw",
		})
		require.ErrorIs(t, err, ErrTokenNotFound)
	})

	t.Run("expired invitation is refused", func(t *testing.T) {
		soon := time.Now().UTC().Add(50 * time.Millisecond)
		token, _, err := invites.Issue(ctx, principal.ID, "Slow Poke", "slow@example.com", nil, timePtr(soon))
		require.NoError(t, err)

		time.Sleep(60 * time.Millisecond)

		_, err = svc.Register(ctx, token, Registrant{
			Name: "Slow Poke", Email: "slow@example.com", Password: "pw",
		})
		require.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("issuer is notified of acceptance and the pending registration", func(t *testing.T) {
		token, _, err := invites.Issue(ctx, principal.ID, "Ana Ruiz", "ana.ruiz@example.com", nil, nil)
		require.NoError(t, err)

		before, err := notifier.ListUnread(ctx, principal.ID)
		require.NoError(t, err)

		_, err = svc.Register(ctx, token, Registrant{
			Name: "Ana Ruiz", Email: "ana.ruiz@example.com", Password: "pw",
		})
		require.NoError(t, err)

		after, err := notifier.ListUnread(ctx, principal.ID)
		require.NoError(t, err)
		require.Len(t, after, len(before)+2)

		types := map[string]bool{}
		for _, n := range after {
			types[n.Type] = true
		}
		require.True(t, types[domain.NotificationInvitationAccepted])
		require.True(t, types[domain.NotificationRegistrationPending])
	})
}
