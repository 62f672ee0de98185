package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/classtrackhq/classtrack/internal/onboarding/domain"
	"github.com/classtrackhq/classtrack/internal/onboarding/store"
	"github.com/classtrackhq/classtrack/pkg/slogx"
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrForbidden        = errors.New("actor is not allowed to perform this action")
	ErrAlreadyProcessed = errors.New("already processed")
)

// ApprovalService settles pending registrations. Each account names exactly
// one approver, assigned at registration time, and only that approver may act.
type ApprovalService struct {
	Store    store.Store
	Notifier *NotificationService
}

// Approve transitions a pending account to active.
func (s *ApprovalService) Approve(ctx context.Context, actorID, accountID string) error {
	return s.settle(ctx, actorID, accountID, domain.AccountActive)
}

// Reject transitions a pending account to rejected. Rejected accounts cannot
// log in and are never reconsidered.
func (s *ApprovalService) Reject(ctx context.Context, actorID, accountID string) error {
	return s.settle(ctx, actorID, accountID, domain.AccountRejected)
}

func (s *ApprovalService) settle(ctx context.Context, actorID, accountID, to string) error {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	account, err := s.Store.Accounts().GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	}

	// Ownership is checked before any state inspection or mutation: a wrong
	// actor learns nothing about the account's current status.
	if account.ApproverID != actorID {
		log.Warn("approval attempted by non-approver",
			slog.String("account_id", accountID),
			slog.String("actor_id", actorID),
		)
		return ErrForbidden
	}

	// Conditional pending→to write. Zero rows affected means another decision
	// landed first; the first writer wins and this attempt reports a conflict
	// regardless of direction.
	ok, err := s.Store.Accounts().TransitionStatus(ctx,
		accountID, domain.AccountPending, to, now)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAlreadyProcessed
	}

	log.Info("registration settled",
		slog.String("account_id", accountID),
		slog.String("actor_id", actorID),
		slog.String("status", to),
	)

	s.notifyRegistrant(ctx, &account, to)
	return nil
}

func (s *ApprovalService) notifyRegistrant(ctx context.Context, account *domain.Account, status string) {
	if s.Notifier == nil {
		return
	}
	if status == domain.AccountActive {
		link := "/login"
		s.Notifier.Dispatch(ctx, account.ID, domain.NotificationAccountApproved,
			"Registration approved",
			fmt.Sprintf("Your %s account was approved. You can now log in.", account.Role),
			&link,
		)
		return
	}
	s.Notifier.Dispatch(ctx, account.ID, domain.NotificationAccountRejected,
		"Registration rejected",
		"Your registration was rejected. Contact your administrator for details.",
		nil,
	)
}
