package service

import (
	"context"
	"crypto/subtle"
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
	ErrAlreadyBootstrapped   = errors.New("deployment is already bootstrapped")
	ErrInvalidBootstrapToken = errors.New("invalid bootstrap token")
	ErrInvalidBootstrap      = errors.New("invalid bootstrap request")
)

// BootstrapService seeds an empty deployment with its first admin account and
// organization. Everything afterwards flows through links and invitations.
type BootstrapService struct {
	Store store.Store

	// Token guards the endpoint when set; an empty token allows bootstrap of
	// an empty database without one (local development).
	Token string
}

// BootstrapResult reports what was created.
type BootstrapResult struct {
	Admin        domain.Account
	Organization domain.Organization
}

// Bootstrap creates the admin and their organization in one transaction. It
// only works once: any existing account makes it fail.
func (s *BootstrapService) Bootstrap(
	ctx context.Context,
	token string,
	adminName, adminEmail, adminPassword string,
	orgName string,
) (BootstrapResult, error) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	if s.Token != "" && subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) != 1 {
		log.Warn("bootstrap attempted with wrong token")
		return BootstrapResult{}, ErrInvalidBootstrapToken
	}

	adminEmail = NormalizeEmail(adminEmail)
	if adminName == "" || adminEmail == "" || adminPassword == "" || orgName == "" {
		return BootstrapResult{}, ErrInvalidBootstrap
	}

	n, err := s.Store.Accounts().CountAccounts(ctx)
	if err != nil {
		return BootstrapResult{}, err
	}
	if n > 0 {
		return BootstrapResult{}, ErrAlreadyBootstrapped
	}

	hash, err := cryptox.HashPassword(adminPassword)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return BootstrapResult{}, err
	}

	admin := domain.Account{
		ID:           idx.New().String(),
		Email:        adminEmail,
		Name:         adminName,
		Role:         domain.RoleAdmin,
		Status:       domain.AccountActive,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// The first admin answers to no one.
	admin.ApproverID = admin.ID

	org := domain.Organization{
		ID:        idx.New().String(),
		Name:      orgName,
		OwnerID:   admin.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	admin.OrgID = org.ID

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// Re-check inside the tx so two racing bootstraps cannot both land.
		n, err := tx.Accounts().CountAccounts(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrAlreadyBootstrapped
		}
		if err := tx.Accounts().CreateAccount(ctx, admin); err != nil {
			return err
		}
		return tx.Organizations().CreateOrganization(ctx, org)
	})
	if err != nil {
		return BootstrapResult{}, err
	}

	log.Info("deployment bootstrapped",
		slog.String("admin_id", admin.ID),
		slog.String("org_id", org.ID),
	)
	return BootstrapResult{Admin: admin, Organization: org}, nil
}

// CreateOrganization adds another organization owned by an existing active
// account. Admin-only.
func (s *BootstrapService) CreateOrganization(ctx context.Context, actorID, name, ownerID string) (domain.Organization, error) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	if name == "" {
		return domain.Organization{}, ErrInvalidBootstrap
	}

	actor, err := s.Store.Accounts().GetAccountByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Organization{}, ErrForbidden
		}
		return domain.Organization{}, err
	}
	if actor.Role != domain.RoleAdmin {
		return domain.Organization{}, ErrForbidden
	}

	if ownerID == "" {
		ownerID = actorID
	}
	if _, err := s.Store.Accounts().GetAccountByID(ctx, ownerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Organization{}, ErrAccountNotFound
		}
		return domain.Organization{}, err
	}

	org := domain.Organization{
		ID:        idx.New().String(),
		Name:      name,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Organizations().CreateOrganization(ctx, org); err != nil {
		return domain.Organization{}, err
	}

	log.Info("organization created",
		slog.String("org_id", org.ID),
		slog.String("owner_id", ownerID),
	)
	return org, nil
}
