package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/classtrackhq/classtrack/internal/onboarding/domain"
	"github.com/classtrackhq/classtrack/internal/onboarding/store"
	"github.com/classtrackhq/classtrack/pkg/cryptox"
	"github.com/classtrackhq/classtrack/pkg/idx"
	"github.com/classtrackhq/classtrack/pkg/slogx"
)

var (
	ErrInvalidRegistration = errors.New("invalid registration request")
	ErrDuplicateAccount    = errors.New("an account with this email already exists")
	ErrEmailMismatch       = errors.New("email does not match the invitation")
)

// Registrant carries the self-service registration form.
type Registrant struct {
	Name     string
	Email    string
	Password string
}

// RegistrationService turns a valid token plus registrant details into a
// pending account awaiting approval.
type RegistrationService struct {
	Store    store.Store
	Notifier *NotificationService
}

// Register resolves the token (link first, then named invitation), consumes
// it, and creates the account in the pending state.
//
// Consumption happens before account creation, and a failure afterwards does
// not refund the consumed use or reopen the invitation. Refunding would let a
// duplicate-email probe farm unlimited capacity out of a bounded link; the
// issuer can mint a fresh link if budget is genuinely lost.
func (s *RegistrationService) Register(ctx context.Context, token string, reg Registrant) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	reg.Email = NormalizeEmail(reg.Email)
	if reg.Name == "" || reg.Email == "" || reg.Password == "" {
		return domain.Account{}, ErrInvalidRegistration
	}

	// Hash up front: argon2id is deliberately slow and must not run inside
	// any store transaction.
	hash, err := cryptox.HashPassword(reg.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Account{}, err
	}

	now := time.Now().UTC()
	fingerprint := cryptox.FingerprintToken(token)

	link, err := s.Store.Links().GetLinkByTokenHash(ctx, fingerprint)
	if err == nil {
		return s.registerViaLink(ctx, &link, reg, hash, now)
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Account{}, err
	}

	inv, err := s.Store.Invitations().GetInvitationByTokenHash(ctx, fingerprint)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrTokenNotFound
		}
		return domain.Account{}, err
	}
	return s.registerViaInvitation(ctx, &inv, reg, hash, now)
}

func (s *RegistrationService) registerViaLink(
	ctx context.Context,
	link *domain.InvitationLink,
	reg Registrant,
	passwordHash string,
	now time.Time,
) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	// 1. Classify before consuming so the registrant sees the precise failure.
	if err := classifyLink(link, now); err != nil {
		return domain.Account{}, err
	}

	role, ok := domain.RoleForLinkType(link.LinkType)
	if !ok {
		log.Error("link has unknown type", slog.String("link_type", link.LinkType))
		return domain.Account{}, ErrTokenNotFound
	}

	// The organization owner approves registrations that arrive via links.
	org, err := s.Store.Organizations().GetOrganizationByID(ctx, link.OrgID)
	if err != nil {
		return domain.Account{}, err
	}

	// 2. Consume one use. Zero rows affected means a concurrent registration
	// took the remaining budget.
	redeemed, err := s.Store.Links().RedeemLink(ctx, link.TokenHash, now)
	if err != nil {
		return domain.Account{}, err
	}
	if !redeemed {
		log.Warn("registration lost the race for the final link use",
			slog.String("link_id", link.ID),
		)
		return domain.Account{}, ErrLinkExhausted
	}

	// 3. Create the pending account.
	account := domain.Account{
		ID:           idx.New().String(),
		Email:        reg.Email,
		Name:         reg.Name,
		Role:         role,
		Status:       domain.AccountPending,
		ApproverID:   org.OwnerID,
		OrgID:        org.ID,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Accounts().CreateAccount(ctx, account); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("registration with duplicate email consumed a link use",
				slog.String("link_id", link.ID),
			)
			return domain.Account{}, ErrDuplicateAccount
		}
		return domain.Account{}, err
	}

	log.Info("registration created via link",
		slog.String("account_id", account.ID),
		slog.String("link_id", link.ID),
		slog.String("role", role),
	)

	s.notifyApprover(ctx, org.OwnerID, &account)
	return account, nil
}

func (s *RegistrationService) registerViaInvitation(
	ctx context.Context,
	inv *domain.Invitation,
	reg Registrant,
	passwordHash string,
	now time.Time,
) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	if err := classifyInvitation(inv, now); err != nil {
		return domain.Account{}, err
	}

	// The invitation is bound to one address; the registrant must use it.
	if NormalizeEmail(inv.InviteeEmail) != reg.Email {
		log.Warn("registration email does not match invitation",
			slog.String("invitation_id", inv.ID),
		)
		return domain.Account{}, ErrEmailMismatch
	}

	// Conditional accept: losing this write means someone else consumed the
	// invitation between our read and now.
	ok, err := s.Store.Invitations().TransitionStatus(ctx,
		inv.ID, domain.InvitationPending, domain.InvitationAccepted, now)
	if err != nil {
		return domain.Account{}, err
	}
	if !ok {
		return domain.Account{}, ErrTokenNotFound
	}

	// Invited registrants come in as teachers, approved by whoever invited
	// them.
	account := domain.Account{
		ID:           idx.New().String(),
		Email:        reg.Email,
		Name:         reg.Name,
		Role:         domain.RoleTeacher,
		Status:       domain.AccountPending,
		ApproverID:   inv.IssuerID,
		OrgID:        inv.OrgID,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Accounts().CreateAccount(ctx, account); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("registration with duplicate email consumed an invitation",
				slog.String("invitation_id", inv.ID),
			)
			return domain.Account{}, ErrDuplicateAccount
		}
		return domain.Account{}, err
	}

	log.Info("registration created via invitation",
		slog.String("account_id", account.ID),
		slog.String("invitation_id", inv.ID),
	)

	if s.Notifier != nil {
		s.Notifier.Dispatch(ctx, inv.IssuerID, domain.NotificationInvitationAccepted,
			"Invitation accepted",
			fmt.Sprintf("%s accepted your invitation.", account.Name),
			nil,
		)
	}
	s.notifyApprover(ctx, inv.IssuerID, &account)
	return account, nil
}

func (s *RegistrationService) notifyApprover(ctx context.Context, approverID string, account *domain.Account) {
	if s.Notifier == nil {
		return
	}
	link := "/approvals/" + account.ID
	s.Notifier.Dispatch(ctx, approverID, domain.NotificationRegistrationPending,
		"Registration awaiting approval",
		fmt.Sprintf("%s (%s) registered as %s and is waiting for your approval.",
			account.Name, account.Email, account.Role),
		&link,
	)
}
