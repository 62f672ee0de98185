package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/classtrackhq/classtrack/internal/onboarding/domain"
)

type invitationsRepo struct {
	db dbtx
}

const invitationColumns = `id, issuer_id, org_id, org_name, invitee_name, invitee_email,
	token_hash, status, expires_at, accepted_at, message, created_at, updated_at`

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invitations (`+invitationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.IssuerID, inv.OrgID, inv.OrgName, inv.InviteeName, inv.InviteeEmail,
		inv.TokenHash, inv.Status, inv.ExpiresAt, mapOptionalTime(inv.AcceptedAt),
		mapOptionalString(inv.Message), inv.CreatedAt, inv.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *invitationsRepo) GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error) {
	return scanInvitation(r.db.QueryRowContext(ctx, `
		SELECT `+invitationColumns+` FROM invitations WHERE token_hash = ?`, hash))
}

func (r *invitationsRepo) GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error) {
	return scanInvitation(r.db.QueryRowContext(ctx, `
		SELECT `+invitationColumns+` FROM invitations WHERE id = ?`, id))
}

func (r *invitationsRepo) HasPendingInvitation(ctx context.Context, issuerID, email string, now time.Time) (bool, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(1) FROM invitations
		WHERE issuer_id = ? AND invitee_email = ? AND status = ? AND expires_at > ?`,
		issuerID, email, domain.InvitationPending, now,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *invitationsRepo) TransitionStatus(ctx context.Context, id, from, to string, now time.Time) (bool, error) {
	var (
		res sql.Result
		err error
	)
	if to == domain.InvitationAccepted {
		res, err = r.db.ExecContext(ctx, `
			UPDATE invitations
			SET status = ?, accepted_at = ?, updated_at = ?
			WHERE id = ? AND status = ?`,
			to, now, now, id, from,
		)
	} else {
		res, err = r.db.ExecContext(ctx, `
			UPDATE invitations
			SET status = ?, updated_at = ?
			WHERE id = ? AND status = ?`,
			to, now, id, from,
		)
	}
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *invitationsRepo) MarkExpiredInvitations(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE invitations
		SET status = ?, updated_at = ?
		WHERE status = ? AND expires_at <= ?`,
		domain.InvitationExpired, now, domain.InvitationPending, now,
	)
	return err
}

func scanInvitation(row rowScanner) (domain.Invitation, error) {
	var (
		inv        domain.Invitation
		acceptedAt sql.NullTime
		message    sql.NullString
	)
	err := row.Scan(
		&inv.ID, &inv.IssuerID, &inv.OrgID, &inv.OrgName, &inv.InviteeName, &inv.InviteeEmail,
		&inv.TokenHash, &inv.Status, &inv.ExpiresAt, &acceptedAt, &message,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	inv.AcceptedAt = mapNullTimePtr(acceptedAt)
	inv.Message = mapNullStringPtr(message)
	return inv, nil
}
