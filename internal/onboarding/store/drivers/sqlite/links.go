package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/classtrackhq/classtrack/internal/onboarding/domain"
	"github.com/classtrackhq/classtrack/internal/onboarding/store"
)

type linksRepo struct {
	db dbtx
}

const linkColumns = `id, token_hash, link_type, org_id, org_name, created_by,
	expires_at, max_uses, uses_count, is_active, created_at, updated_at`

func (r *linksRepo) CreateLink(ctx context.Context, l domain.InvitationLink) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invitation_links (`+linkColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.TokenHash, l.LinkType, l.OrgID, l.OrgName, l.CreatedBy,
		mapOptionalTime(l.ExpiresAt), mapOptionalInt(l.MaxUses),
		l.UsesCount, l.IsActive, l.CreatedAt, l.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *linksRepo) GetLinkByTokenHash(ctx context.Context, hash string) (domain.InvitationLink, error) {
	return scanLink(r.db.QueryRowContext(ctx, `
		SELECT `+linkColumns+` FROM invitation_links WHERE token_hash = ?`, hash))
}

func (r *linksRepo) GetLinkByID(ctx context.Context, id string) (domain.InvitationLink, error) {
	return scanLink(r.db.QueryRowContext(ctx, `
		SELECT `+linkColumns+` FROM invitation_links WHERE id = ?`, id))
}

// RedeemLink performs the check-and-increment as one conditional write. The
// WHERE clause re-validates activity, expiry, and remaining budget at write
// time, so a stale earlier read can never over-consume the link.
func (r *linksRepo) RedeemLink(ctx context.Context, hash string, now time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invitation_links
		SET uses_count = uses_count + 1, updated_at = ?
		WHERE token_hash = ?
		  AND is_active = 1
		  AND (expires_at IS NULL OR expires_at > ?)
		  AND (max_uses IS NULL OR uses_count < max_uses)`,
		now, hash, now,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *linksRepo) DeactivateLink(ctx context.Context, id string, now time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invitation_links SET is_active = 0, updated_at = ? WHERE id = ?`,
		now, id,
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

func (r *linksRepo) DeleteExpiredInactiveLinks(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM invitation_links
		WHERE is_active = 0
		   OR (expires_at IS NOT NULL AND expires_at <= ?)`,
		now,
	)
	return err
}

func scanLink(row rowScanner) (domain.InvitationLink, error) {
	var (
		l         domain.InvitationLink
		expiresAt sql.NullTime
		maxUses   sql.NullInt64
	)
	err := row.Scan(
		&l.ID, &l.TokenHash, &l.LinkType, &l.OrgID, &l.OrgName, &l.CreatedBy,
		&expiresAt, &maxUses, &l.UsesCount, &l.IsActive, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return domain.InvitationLink{}, mapNotFound(err)
	}
	l.ExpiresAt = mapNullTimePtr(expiresAt)
	l.MaxUses = mapNullIntPtr(maxUses)
	return l, nil
}
