package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/classtrackhq/classtrack/internal/onboarding/domain"
	"github.com/classtrackhq/classtrack/internal/onboarding/store"
	"github.com/classtrackhq/classtrack/pkg/idx"
	"github.com/classtrackhq/classtrack/pkg/slogx"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationService persists and serves in-app notices.
type NotificationService struct {
	Store store.Store
}

// Dispatch records a notification for a recipient. It is a best-effort side
// effect of the onboarding flows: failures are logged and swallowed so they
// never fail or roll back the operation that triggered them.
func (s *NotificationService) Dispatch(ctx context.Context, recipientID, kind, title, content string, link *string) {
	log := slogx.FromContext(ctx)

	n := domain.Notification{
		ID:          idx.New().String(),
		RecipientID: recipientID,
		Type:        kind,
		Title:       title,
		Content:     content,
		Link:        link,
		IsRead:      false,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.Store.Notifications().CreateNotification(ctx, n); err != nil {
		log.Warn("failed to dispatch notification",
			slog.String("recipient_id", recipientID),
			slog.String("type", kind),
			slog.Any("error", err),
		)
		return
	}

	log.Debug("notification dispatched",
		slog.String("notification_id", n.ID),
		slog.String("recipient_id", recipientID),
		slog.String("type", kind),
	)
}

// ListUnread returns the recipient's unread notices, newest first.
func (s *NotificationService) ListUnread(ctx context.Context, recipientID string) ([]domain.Notification, error) {
	return s.Store.Notifications().ListUnreadNotifications(ctx, recipientID)
}

// MarkRead acknowledges a single notification. The recipient scope is part of
// the update, so acting on another account's notice reads as not found.
func (s *NotificationService) MarkRead(ctx context.Context, recipientID, id string) error {
	err := s.Store.Notifications().MarkNotificationRead(ctx, recipientID, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotificationNotFound
	}
	return err
}
