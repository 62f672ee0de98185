package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/classtrackhq/classtrack/internal/onboarding/domain"
	"github.com/classtrackhq/classtrack/internal/onboarding/store"
	"github.com/classtrackhq/classtrack/pkg/cryptox"
	"github.com/classtrackhq/classtrack/pkg/jwtx"
	"github.com/classtrackhq/classtrack/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotActive   = errors.New("account is not active")
)

// SessionService exchanges credentials for a short-lived session token.
type SessionService struct {
	Store store.Store
	Keys  *jwtx.KeyPair
	TTL   time.Duration
}

// Session is a successful login result.
type Session struct {
	AccountID   string
	AccessToken string
	TokenType   string
	ExpiresIn   int64
	Role        string
	Scopes      []string
}

// Login verifies the credentials and issues an EdDSA session token. Only
// active accounts may log in: pending and rejected accounts are refused with
// a status error so the client can explain what is going on, suspended ones
// too.
func (s *SessionService) Login(ctx context.Context, email, password string) (Session, error) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	account, err := s.Store.Accounts().GetAccountByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn comparable time so unknown emails are not distinguishable
			// by response latency.
			_, _ = cryptox.HashPassword(password)
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}

	if err := cryptox.VerifyPassword(password, account.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("login with wrong password", slog.String("account_id", account.ID))
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}

	if account.Status != domain.AccountActive {
		log.Warn("login refused for non-active account",
			slog.String("account_id", account.ID),
			slog.String("status", account.Status),
		)
		return Session{}, ErrAccountNotActive
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	scopes := domain.ScopesForRole(account.Role)
	claims := jwtx.NewSessionClaims(account.ID, account.Role, account.Name, scopes, s.Keys.Issuer, ttl, now)

	token, err := s.Keys.Sign(claims)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return Session{}, err
	}

	log.Info("session issued",
		slog.String("account_id", account.ID),
		slog.String("role", account.Role),
	)
	return Session{
		AccountID:   account.ID,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(ttl.Seconds()),
		Role:        account.Role,
		Scopes:      scopes,
	}, nil
}
