package store

import (
	"context"
	"errors"
	"time"

	"github.com/classtrackhq/classtrack/internal/onboarding/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Sub-repositories keep concerns tidy and let services depend
// only on what they touch.
type Store interface {
	Organizations() Organizations
	Accounts() Accounts
	Links() Links
	Invitations() Invitations
	PasswordResets() PasswordResets
	Notifications() Notifications

	ApplyMigrations() error

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Tx starts a read/write transaction. The caller MUST Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store: the same repositories plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Organizations interface {
	CreateOrganization(ctx context.Context, org domain.Organization) error

	GetOrganizationByID(ctx context.Context, id string) (domain.Organization, error)
}

type Accounts interface {
	// CreateAccount inserts a new account. A duplicate email maps to
	// ErrAlreadyExists.
	CreateAccount(ctx context.Context, a domain.Account) error

	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	// TransitionStatus flips an account from one status to another as a single
	// conditional update and reports whether a row changed. Zero rows means
	// the account was not in the expected status anymore.
	TransitionStatus(ctx context.Context, id, from, to string, now time.Time) (bool, error)

	// UpdatePasswordHash sets the credential hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, id, newHash string, now time.Time) error

	// CountAccounts is used by bootstrap to detect an empty deployment.
	CountAccounts(ctx context.Context) (int64, error)
}

type Links interface {
	// CreateLink writes a new invitation link. A token fingerprint collision
	// maps to ErrAlreadyExists so issuance can regenerate and retry.
	CreateLink(ctx context.Context, l domain.InvitationLink) error

	GetLinkByTokenHash(ctx context.Context, hash string) (domain.InvitationLink, error)

	GetLinkByID(ctx context.Context, id string) (domain.InvitationLink, error)

	// RedeemLink consumes one use as a single conditional update: the
	// increment applies only while the link is active, unexpired, and under
	// its usage budget. Returns false when zero rows were affected, the
	// authoritative signal that the race for the last use was lost.
	RedeemLink(ctx context.Context, hash string, now time.Time) (bool, error)

	// DeactivateLink clears is_active.
	DeactivateLink(ctx context.Context, id string, now time.Time) error

	// DeleteExpiredInactiveLinks is housekeeping for links that can never be
	// redeemed again.
	DeleteExpiredInactiveLinks(ctx context.Context, now time.Time) error
}

type Invitations interface {
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error)

	GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error)

	// HasPendingInvitation reports whether a live (pending, unexpired)
	// invitation exists for the issuer and invitee email.
	HasPendingInvitation(ctx context.Context, issuerID, email string, now time.Time) (bool, error)

	// TransitionStatus performs the pending→accepted/rejected/expired change
	// as a conditional update, reporting whether a row changed. Accepting
	// stamps accepted_at.
	TransitionStatus(ctx context.Context, id, from, to string, now time.Time) (bool, error)

	// MarkExpiredInvitations flips overdue pending invitations to expired.
	MarkExpiredInvitations(ctx context.Context, now time.Time) error
}

type PasswordResets interface {
	// UpsertResetToken replaces any existing row for the email, invalidating
	// a previously issued token for the same account.
	UpsertResetToken(ctx context.Context, t domain.PasswordResetToken) error

	GetResetTokenBySelector(ctx context.Context, selector string) (domain.PasswordResetToken, error)

	// DeleteResetTokenBySelector removes the row and reports whether one was
	// deleted. Zero rows means a concurrent consume already claimed it.
	DeleteResetTokenBySelector(ctx context.Context, selector string) (bool, error)

	// DeleteExpiredResetTokens is housekeeping for rows past the TTL.
	DeleteExpiredResetTokens(ctx context.Context, cutoff time.Time) error
}

type Notifications interface {
	CreateNotification(ctx context.Context, n domain.Notification) error

	ListUnreadNotifications(ctx context.Context, recipientID string) ([]domain.Notification, error)

	// MarkNotificationRead scopes the update to the recipient so one account
	// cannot acknowledge another's notices.
	MarkNotificationRead(ctx context.Context, recipientID, id string) error
}
