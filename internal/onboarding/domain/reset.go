package domain

import "time"

// ResetTokenTTL is the window after which a password reset token is
// unconditionally invalid, regardless of other state.
const ResetTokenTTL = 60 * time.Minute

// PasswordResetToken is keyed by email: a new request replaces the prior row,
// implicitly invalidating any earlier outstanding token for that email.
//
// The wire token is "selector.verifier". The selector is a public random
// lookup id; only the verifier's hash is stored, so the table never contains
// enough to reconstruct a usable token.
type PasswordResetToken struct {
	Email        string
	Selector     string
	VerifierHash string
	CreatedAt    time.Time
}

// Expired reports whether the token is outside its TTL at the given time.
func (t *PasswordResetToken) Expired(now time.Time) bool {
	return now.Sub(t.CreatedAt) > ResetTokenTTL
}
