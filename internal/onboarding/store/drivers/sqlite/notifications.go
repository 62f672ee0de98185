package sqlite

import (
	"context"
	"database/sql"

	"github.com/classtrackhq/classtrack/internal/onboarding/domain"
	"github.com/classtrackhq/classtrack/internal/onboarding/store"
)

type notificationsRepo struct {
	db dbtx
}

func (r *notificationsRepo) CreateNotification(ctx context.Context, n domain.Notification) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notifications (id, recipient_id, type, title, content, link, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.RecipientID, n.Type, n.Title, n.Content,
		mapOptionalString(n.Link), n.IsRead, n.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *notificationsRepo) ListUnreadNotifications(ctx context.Context, recipientID string) ([]domain.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, recipient_id, type, title, content, link, is_read, created_at
		FROM notifications
		WHERE recipient_id = ? AND is_read = 0
		ORDER BY created_at DESC`, recipientID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Notification
	for rows.Next() {
		var (
			n    domain.Notification
			link sql.NullString
		)
		if err := rows.Scan(
			&n.ID, &n.RecipientID, &n.Type, &n.Title, &n.Content,
			&link, &n.IsRead, &n.CreatedAt,
		); err != nil {
			return nil, err
		}
		n.Link = mapNullStringPtr(link)
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *notificationsRepo) MarkNotificationRead(ctx context.Context, recipientID, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE notifications SET is_read = 1
		WHERE id = ? AND recipient_id = ?`,
		id, recipientID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
