package sqlite

import (
	"context"

	"github.com/classtrackhq/classtrack/internal/onboarding/domain"
)

type organizationsRepo struct {
	db dbtx
}

func (r *organizationsRepo) CreateOrganization(ctx context.Context, org domain.Organization) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO organizations (id, name, owner_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		org.ID, org.Name, org.OwnerID, org.CreatedAt, org.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *organizationsRepo) GetOrganizationByID(ctx context.Context, id string) (domain.Organization, error) {
	var org domain.Organization
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, owner_id, created_at, updated_at
		FROM organizations
		WHERE id = ?`, id,
	).Scan(&org.ID, &org.Name, &org.OwnerID, &org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		return domain.Organization{}, mapNotFound(err)
	}
	return org, nil
}
