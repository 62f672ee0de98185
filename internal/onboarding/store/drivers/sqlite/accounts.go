package sqlite

import (
	"context"
	"time"

	"github.com/classtrackhq/classtrack/internal/onboarding/domain"
)

type accountsRepo struct {
	db dbtx
}

const accountColumns = `id, email, name, role, status, approver_id, org_id, password_hash, created_at, updated_at`

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Email, a.Name, a.Role, a.Status,
		a.ApproverID, a.OrgID, a.PasswordHash, a.CreatedAt, a.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id))
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT `+accountColumns+` FROM accounts WHERE email = ?`, email))
}

func (r *accountsRepo) TransitionStatus(ctx context.Context, id, from, to string, now time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET status = ?, updated_at = ?
		WHERE id = ? AND status = ?`,
		to, now, id, from,
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

func (r *accountsRepo) UpdatePasswordHash(ctx context.Context, id, newHash string, now time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE accounts SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, now, id,
	)
	return err
}

func (r *accountsRepo) CountAccounts(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM accounts`).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *accountsRepo) scanOne(row rowScanner) (domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.ID, &a.Email, &a.Name, &a.Role, &a.Status,
		&a.ApproverID, &a.OrgID, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}
