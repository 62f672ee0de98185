package sqlite

import (
	"context"
	"time"

	"github.com/classtrackhq/classtrack/internal/onboarding/domain"
)

type passwordResetsRepo struct {
	db dbtx
}

// UpsertResetToken keeps at most one live row per email: a new request
// replaces the previous selector and verifier, invalidating the old token.
func (r *passwordResetsRepo) UpsertResetToken(ctx context.Context, t domain.PasswordResetToken) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO password_reset_tokens (email, selector, verifier_hash, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (email) DO UPDATE SET
			selector = excluded.selector,
			verifier_hash = excluded.verifier_hash,
			created_at = excluded.created_at`,
		t.Email, t.Selector, t.VerifierHash, t.CreatedAt,
	)
	return err
}

func (r *passwordResetsRepo) GetResetTokenBySelector(ctx context.Context, selector string) (domain.PasswordResetToken, error) {
	var t domain.PasswordResetToken
	err := r.db.QueryRowContext(ctx, `
		SELECT email, selector, verifier_hash, created_at
		FROM password_reset_tokens
		WHERE selector = ?`, selector,
	).Scan(&t.Email, &t.Selector, &t.VerifierHash, &t.CreatedAt)
	if err != nil {
		return domain.PasswordResetToken{}, mapNotFound(err)
	}
	return t, nil
}

func (r *passwordResetsRepo) DeleteResetTokenBySelector(ctx context.Context, selector string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM password_reset_tokens WHERE selector = ?`, selector)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *passwordResetsRepo) DeleteExpiredResetTokens(ctx context.Context, cutoff time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM password_reset_tokens WHERE created_at <= ?`, cutoff)
	return err
}
