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
	"github.com/classtrackhq/classtrack/pkg/slogx"
)

var ErrInvalidResetToken = errors.New("invalid or expired reset token")

// PasswordResetService issues and consumes one-time password reset tokens.
//
// The wire token is "selector.verifier". The selector is stored as-is for an
// indexed lookup; the verifier is stored only as a fingerprint, so a leaked
// table cannot be replayed into working tokens.
type PasswordResetService struct {
	Store store.Store
}

// RequestReset mints a reset token for the account behind the email. The raw
// token is returned for out-of-band delivery; at most one token per email is
// live, a new request silently replaces the previous one.
//
// Callers facing untrusted clients should hide ErrAccountNotFound behind a
// uniform success response to avoid confirming which emails have accounts.
func (s *PasswordResetService) RequestReset(ctx context.Context, email string) (string, error) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	email = NormalizeEmail(email)
	if email == "" {
		return "", ErrAccountNotFound
	}

	if _, err := s.Store.Accounts().GetAccountByEmail(ctx, email); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrAccountNotFound
		}
		return "", err
	}

	selector, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		log.Error("failed to generate reset selector", slog.Any("error", err))
		return "", err
	}
	verifier, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate reset verifier", slog.Any("error", err))
		return "", err
	}

	token := domain.PasswordResetToken{
		Email:        email,
		Selector:     selector,
		VerifierHash: cryptox.FingerprintToken(verifier),
		CreatedAt:    now,
	}
	if err := s.Store.PasswordResets().UpsertResetToken(ctx, token); err != nil {
		log.Error("failed to store reset token", slog.Any("error", err))
		return "", err
	}

	log.Info("password reset requested", slog.String("selector", selector))
	return selector + "." + verifier, nil
}

// ConsumeReset validates a reset token and, exactly once, replaces the
// account's password. Any defect (malformed, unknown selector, wrong
// verifier, expired, already consumed) reports the same error.
func (s *PasswordResetService) ConsumeReset(ctx context.Context, rawToken, newPassword string) error {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	if newPassword == "" {
		return ErrInvalidResetToken
	}
	selector, verifier, ok := strings.Cut(rawToken, ".")
	if !ok || selector == "" || verifier == "" {
		return ErrInvalidResetToken
	}

	token, err := s.Store.PasswordResets().GetResetTokenBySelector(ctx, selector)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}
	if token.Expired(now) {
		return ErrInvalidResetToken
	}
	if !cryptox.VerifyFingerprint(verifier, token.VerifierHash) {
		log.Warn("reset token verifier mismatch", slog.String("selector", selector))
		return ErrInvalidResetToken
	}

	account, err := s.Store.Accounts().GetAccountByEmail(ctx, token.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	// Hash outside the transaction: argon2id takes tens of milliseconds and
	// sqlite holds the write lock for the duration of the tx.
	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return err
	}

	// Delete-then-update inside one transaction. The conditional delete is the
	// single-use gate: zero rows deleted means a concurrent consume already
	// claimed the token, and the password update must not happen.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		deleted, err := tx.PasswordResets().DeleteResetTokenBySelector(ctx, selector)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrInvalidResetToken
		}
		return tx.Accounts().UpdatePasswordHash(ctx, account.ID, hash, now)
	})
	if err != nil {
		return err
	}

	log.Info("password reset consumed", slog.String("account_id", account.ID))
	return nil
}
