package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/classtrackhq/classtrack/internal/onboarding/domain"
	"github.com/classtrackhq/classtrack/internal/onboarding/store"
	"github.com/classtrackhq/classtrack/pkg/slogx"
)

// DefaultSweepInterval is how often housekeeping runs unless configured
// otherwise.
const DefaultSweepInterval = 15 * time.Minute

// HousekeepingService sweeps rows that can no longer do anything useful:
// reset tokens past their TTL, links that expired or were deactivated, and
// pending invitations past their expiry (flipped to expired, not deleted, so
// issuers keep their history).
type HousekeepingService struct {
	Store    store.Store
	Interval time.Duration
}

// Run sweeps on a ticker until the context is cancelled. Meant to be launched
// as a goroutine from the app.
func (s *HousekeepingService) Run(ctx context.Context) {
	log := slogx.FromContext(ctx)

	interval := s.Interval
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("housekeeping started", slog.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			log.Info("housekeeping stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep performs one housekeeping pass. Each step is independent; a failure
// in one is logged and does not stop the others.
func (s *HousekeepingService) Sweep(ctx context.Context) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	if err := s.Store.PasswordResets().DeleteExpiredResetTokens(ctx, now.Add(-domain.ResetTokenTTL)); err != nil {
		log.Error("failed to sweep expired reset tokens", slog.Any("error", err))
	}
	if err := s.Store.Invitations().MarkExpiredInvitations(ctx, now); err != nil {
		log.Error("failed to sweep expired invitations", slog.Any("error", err))
	}
	if err := s.Store.Links().DeleteExpiredInactiveLinks(ctx, now); err != nil {
		log.Error("failed to sweep dead links", slog.Any("error", err))
	}
}
