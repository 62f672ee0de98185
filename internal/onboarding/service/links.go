package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/classtrackhq/classtrack/internal/onboarding/domain"
	"github.com/classtrackhq/classtrack/internal/onboarding/store"
	"github.com/classtrackhq/classtrack/pkg/cryptox"
	"github.com/classtrackhq/classtrack/pkg/idx"
	"github.com/classtrackhq/classtrack/pkg/slogx"
)

var (
	ErrInvalidLinkRequest   = errors.New("invalid link request")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrNotOrganizationOwner = errors.New("actor does not own the organization")
	ErrIssuanceFailed       = errors.New("failed to issue a unique token")

	ErrTokenNotFound = errors.New("token not found")
	ErrTokenExpired  = errors.New("token expired")
	ErrLinkExhausted = errors.New("link usage budget exhausted")
	ErrLinkInactive  = errors.New("link deactivated")
)

// issueAttempts bounds token regeneration on fingerprint collisions. A
// collision on 256-bit tokens is astronomically rare; hitting the bound
// means something is wrong with the entropy source.
const issueAttempts = 3

// TokenPreview is what a registrant learns about a token before committing
// to registration.
type TokenPreview struct {
	Kind         string // "supervisor", "principal", or "invitation"
	OrgID        string
	OrgName      string
	ApproverID   string
	ApproverName string
	InviteeEmail string // only for named invitations
}

// LinkService issues, validates, and redeems invitation links.
type LinkService struct {
	Store store.Store
}

// IssueLink creates a shareable registration link for an organization.
// Tokens are generated optimistically; the store's unique constraint on the
// fingerprint catches collisions and issuance retries a bounded number of
// times.
func (s *LinkService) IssueLink(
	ctx context.Context,
	actorID string,
	linkType string,
	orgID string,
	expiresAt *time.Time,
	maxUses *int,
) (string, domain.InvitationLink, error) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	// 1. Validate parameters before touching the store.
	if _, ok := domain.RoleForLinkType(linkType); !ok {
		log.Warn("attempted to issue link with unknown type", slog.String("link_type", linkType))
		return "", domain.InvitationLink{}, ErrInvalidLinkRequest
	}
	if expiresAt != nil && expiresAt.Before(now) {
		log.Warn("attempted to issue link with past expiry", slog.Time("expires_at", *expiresAt))
		return "", domain.InvitationLink{}, ErrInvalidLinkRequest
	}
	if maxUses != nil && *maxUses < 1 {
		return "", domain.InvitationLink{}, ErrInvalidLinkRequest
	}

	// 2. The organization must exist; its name is denormalized onto the link.
	org, err := s.Store.Organizations().GetOrganizationByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.InvitationLink{}, ErrOrganizationNotFound
		}
		log.Error("failed to fetch organization", slog.Any("error", err))
		return "", domain.InvitationLink{}, err
	}

	// 3. Only the organization owner (or an admin) may issue links for it.
	if err := s.requireOwnerOrAdmin(ctx, actorID, org); err != nil {
		return "", domain.InvitationLink{}, err
	}

	// 4. Generate, fingerprint, store; retry on the rare collision.
	for attempt := 0; attempt < issueAttempts; attempt++ {
		token, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			log.Error("failed to generate link token", slog.Any("error", err))
			return "", domain.InvitationLink{}, err
		}

		link := domain.InvitationLink{
			ID:        idx.New().String(),
			TokenHash: cryptox.FingerprintToken(token),
			LinkType:  linkType,
			OrgID:     org.ID,
			OrgName:   org.Name,
			CreatedBy: actorID,
			ExpiresAt: expiresAt,
			MaxUses:   maxUses,
			UsesCount: 0,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}

		err = s.Store.Links().CreateLink(ctx, link)
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("link token fingerprint collision, regenerating",
				slog.Int("attempt", attempt+1),
			)
			continue
		}
		if err != nil {
			log.Error("failed to create link", slog.Any("error", err))
			return "", domain.InvitationLink{}, err
		}

		log.Info("invitation link issued",
			slog.String("link_id", link.ID),
			slog.String("link_type", linkType),
			slog.String("org_id", org.ID),
			slog.String("created_by", actorID),
		)
		return token, link, nil
	}

	log.Error("exhausted token generation attempts", slog.Int("attempts", issueAttempts))
	return "", domain.InvitationLink{}, ErrIssuanceFailed
}

// Validate reports what a token grants without consuming anything. Failure
// conditions are evaluated in a fixed order: not found, expired, exhausted,
// inactive.
func (s *LinkService) Validate(ctx context.Context, token string) (TokenPreview, error) {
	now := time.Now().UTC()
	hash := cryptox.FingerprintToken(token)

	link, err := s.Store.Links().GetLinkByTokenHash(ctx, hash)
	if err == nil {
		if err := classifyLink(&link, now); err != nil {
			return TokenPreview{}, err
		}
		return s.linkPreview(ctx, &link)
	}
	if !errors.Is(err, store.ErrNotFound) {
		return TokenPreview{}, err
	}

	// Not a link; it may be a named invitation token.
	inv, err := s.Store.Invitations().GetInvitationByTokenHash(ctx, hash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TokenPreview{}, ErrTokenNotFound
		}
		return TokenPreview{}, err
	}
	if err := classifyInvitation(&inv, now); err != nil {
		return TokenPreview{}, err
	}

	preview := TokenPreview{
		Kind:         "invitation",
		OrgID:        inv.OrgID,
		OrgName:      inv.OrgName,
		ApproverID:   inv.IssuerID,
		InviteeEmail: inv.InviteeEmail,
	}
	if approver, err := s.Store.Accounts().GetAccountByID(ctx, inv.IssuerID); err == nil {
		preview.ApproverName = approver.Name
	}
	return preview, nil
}

// Redeem consumes one use of an invitation link. The increment happens as a
// single conditional update; zero rows affected is the authoritative signal
// that the remaining budget was lost to a concurrent redemption, reported as
// exhaustion regardless of what an earlier read suggested.
func (s *LinkService) Redeem(ctx context.Context, token string) (domain.InvitationLink, error) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()
	hash := cryptox.FingerprintToken(token)

	link, err := s.Store.Links().GetLinkByTokenHash(ctx, hash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.InvitationLink{}, ErrTokenNotFound
		}
		return domain.InvitationLink{}, err
	}
	if err := classifyLink(&link, now); err != nil {
		return domain.InvitationLink{}, err
	}

	ok, err := s.Store.Links().RedeemLink(ctx, hash, now)
	if err != nil {
		log.Error("failed to redeem link", slog.String("link_id", link.ID), slog.Any("error", err))
		return domain.InvitationLink{}, err
	}
	if !ok {
		log.Warn("link redemption lost the race for the final use",
			slog.String("link_id", link.ID),
		)
		return domain.InvitationLink{}, ErrLinkExhausted
	}

	link.UsesCount++
	link.UpdatedAt = now
	return link, nil
}

// Deactivate turns a link off. Only the issuer or the organization owner
// (or an admin) may do so.
func (s *LinkService) Deactivate(ctx context.Context, actorID, linkID string) error {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	link, err := s.Store.Links().GetLinkByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTokenNotFound
		}
		return err
	}

	if link.CreatedBy != actorID {
		org, err := s.Store.Organizations().GetOrganizationByID(ctx, link.OrgID)
		if err != nil {
			return err
		}
		if err := s.requireOwnerOrAdmin(ctx, actorID, org); err != nil {
			return err
		}
	}

	if err := s.Store.Links().DeactivateLink(ctx, linkID, now); err != nil {
		log.Error("failed to deactivate link", slog.String("link_id", linkID), slog.Any("error", err))
		return err
	}

	log.Info("invitation link deactivated",
		slog.String("link_id", linkID),
		slog.String("actor_id", actorID),
	)
	return nil
}

func (s *LinkService) requireOwnerOrAdmin(ctx context.Context, actorID string, org domain.Organization) error {
	if actorID == org.OwnerID {
		return nil
	}
	actor, err := s.Store.Accounts().GetAccountByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotOrganizationOwner
		}
		return err
	}
	if actor.Role != domain.RoleAdmin {
		return ErrNotOrganizationOwner
	}
	return nil
}

func (s *LinkService) linkPreview(ctx context.Context, link *domain.InvitationLink) (TokenPreview, error) {
	org, err := s.Store.Organizations().GetOrganizationByID(ctx, link.OrgID)
	if err != nil {
		return TokenPreview{}, err
	}

	preview := TokenPreview{
		Kind:       link.LinkType,
		OrgID:      link.OrgID,
		OrgName:    link.OrgName,
		ApproverID: org.OwnerID,
	}
	if approver, err := s.Store.Accounts().GetAccountByID(ctx, org.OwnerID); err == nil {
		preview.ApproverName = approver.Name
	}
	return preview, nil
}

// classifyLink reports the first failing condition in the documented order.
func classifyLink(link *domain.InvitationLink, now time.Time) error {
	switch {
	case link.Expired(now):
		return ErrTokenExpired
	case link.Exhausted():
		return ErrLinkExhausted
	case !link.IsActive:
		return ErrLinkInactive
	}
	return nil
}

// classifyInvitation mirrors classifyLink for named invitations. A non-pending
// invitation behaves like an unknown token so its history is not revealed.
func classifyInvitation(inv *domain.Invitation, now time.Time) error {
	switch {
	case inv.Status == domain.InvitationExpired || (inv.Status == domain.InvitationPending && inv.Expired(now)):
		return ErrTokenExpired
	case inv.Status != domain.InvitationPending:
		return ErrTokenNotFound
	}
	return nil
}
