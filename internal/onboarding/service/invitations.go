package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/classtrackhq/classtrack/internal/onboarding/domain"
	"github.com/classtrackhq/classtrack/internal/onboarding/store"
	"github.com/classtrackhq/classtrack/pkg/cryptox"
	"github.com/classtrackhq/classtrack/pkg/idx"
	"github.com/classtrackhq/classtrack/pkg/slogx"
)

var (
	ErrInvalidInvitationRequest   = errors.New("invalid invitation request")
	ErrDuplicatePendingInvitation = errors.New("a pending invitation for this email already exists")
	ErrInvitationNotFound         = errors.New("invitation not found")
)

// DefaultInvitationTTL applies when an issuer does not pick an expiry.
const DefaultInvitationTTL = 30 * 24 * time.Hour

// InvitationService issues and revokes email-targeted invitations. Acceptance
// happens inside registration, not here.
type InvitationService struct {
	Store store.Store
}

// Issue mints a single-use invitation addressed to an email. At most one
// pending invitation may exist per (issuer, invitee email) pair; reissuing
// requires revoking the old one or letting it expire.
func (s *InvitationService) Issue(
	ctx context.Context,
	issuerID string,
	inviteeName string,
	inviteeEmail string,
	message *string,
	expiresAt *time.Time,
) (string, domain.Invitation, error) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	inviteeEmail = NormalizeEmail(inviteeEmail)
	if inviteeEmail == "" || inviteeName == "" {
		return "", domain.Invitation{}, ErrInvalidInvitationRequest
	}
	if expiresAt != nil && expiresAt.Before(now) {
		return "", domain.Invitation{}, ErrInvalidInvitationRequest
	}

	issuer, err := s.Store.Accounts().GetAccountByID(ctx, issuerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.Invitation{}, ErrForbidden
		}
		return "", domain.Invitation{}, err
	}

	org, err := s.Store.Organizations().GetOrganizationByID(ctx, issuer.OrgID)
	if err != nil {
		log.Error("failed to fetch issuer organization", slog.Any("error", err))
		return "", domain.Invitation{}, err
	}

	// Pre-check keeps the common duplicate path cheap; the conditional-write
	// semantics of acceptance make a racing double-issue harmless anyway, each
	// token stays independently single-use.
	dup, err := s.Store.Invitations().HasPendingInvitation(ctx, issuerID, inviteeEmail, now)
	if err != nil {
		return "", domain.Invitation{}, err
	}
	if dup {
		log.Warn("duplicate pending invitation refused",
			slog.String("issuer_id", issuerID),
			slog.String("invitee_email", inviteeEmail),
		)
		return "", domain.Invitation{}, ErrDuplicatePendingInvitation
	}

	expiry := now.Add(DefaultInvitationTTL)
	if expiresAt != nil {
		expiry = expiresAt.UTC()
	}

	for attempt := 0; attempt < issueAttempts; attempt++ {
		token, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			log.Error("failed to generate invitation token", slog.Any("error", err))
			return "", domain.Invitation{}, err
		}

		inv := domain.Invitation{
			ID:           idx.New().String(),
			IssuerID:     issuerID,
			OrgID:        org.ID,
			OrgName:      org.Name,
			InviteeName:  inviteeName,
			InviteeEmail: inviteeEmail,
			TokenHash:    cryptox.FingerprintToken(token),
			Status:       domain.InvitationPending,
			ExpiresAt:    expiry,
			Message:      message,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		err = s.Store.Invitations().CreateInvitation(ctx, inv)
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("invitation token fingerprint collision, regenerating",
				slog.Int("attempt", attempt+1),
			)
			continue
		}
		if err != nil {
			log.Error("failed to create invitation", slog.Any("error", err))
			return "", domain.Invitation{}, err
		}

		log.Info("invitation issued",
			slog.String("invitation_id", inv.ID),
			slog.String("issuer_id", issuerID),
			slog.String("invitee_email", inviteeEmail),
		)
		return token, inv, nil
	}

	log.Error("exhausted token generation attempts", slog.Int("attempts", issueAttempts))
	return "", domain.Invitation{}, ErrIssuanceFailed
}

// Revoke withdraws a pending invitation. Only the issuer may revoke it; an
// invitation that already left the pending state stays as it is.
func (s *InvitationService) Revoke(ctx context.Context, actorID, invitationID string) error {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	inv, err := s.Store.Invitations().GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return err
	}
	if inv.IssuerID != actorID {
		return ErrForbidden
	}

	ok, err := s.Store.Invitations().TransitionStatus(ctx,
		invitationID, domain.InvitationPending, domain.InvitationRejected, now)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAlreadyProcessed
	}

	log.Info("invitation revoked",
		slog.String("invitation_id", invitationID),
		slog.String("actor_id", actorID),
	)
	return nil
}

// NormalizeEmail canonicalizes an email for storage and comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
