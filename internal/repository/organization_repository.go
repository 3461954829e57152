package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rescue-site-server/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var _ OrganizationRepository = (*pgOrganizationRepository)(nil)

type pgOrganizationRepository struct {
	db     DBTX
	logger *zap.Logger
}

func NewPgOrganizationRepository(db DBTX, logger *zap.Logger) OrganizationRepository {
	return &pgOrganizationRepository{
		db:     db,
		logger: logger.Named("PgOrganizationRepo"),
	}
}

const getOrganizationByIDQuery = `
SELECT id, name, mission, location, goals, donate_url, contact_email, phone, address, tax_id,
       site_published_at, created_at, updated_at
FROM organizations
WHERE id = $1`

const createOrganizationQuery = `
INSERT INTO organizations (name, mission, location, goals, donate_url, contact_email, phone, address, tax_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, created_at, updated_at`

const markOrganizationPublishedQuery = `
UPDATE organizations SET site_published_at = $2, updated_at = NOW()
WHERE id = $1`

func (r *pgOrganizationRepository) GetByID(ctx context.Context, id int64) (*models.Organization, error) {
	var org models.Organization
	if err := pgxscan.Get(ctx, r.db, &org, getOrganizationByIDQuery, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Organization not found", zap.Int64("tenant_id", id))
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get organization", zap.Int64("tenant_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get organization %d: %w", id, err)
	}
	return &org, nil
}

func (r *pgOrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	goals := org.Goals
	if goals == nil {
		goals = []string{}
	}
	err := r.db.QueryRow(ctx, createOrganizationQuery,
		org.Name, org.Mission, org.Location, goals, org.DonateURL,
		org.ContactEmail, org.Phone, org.Address, org.TaxID,
	).Scan(&org.ID, &org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create organization", zap.String("name", org.Name), zap.Error(err))
		return fmt.Errorf("failed to create organization: %w", err)
	}
	r.logger.Info("Organization created", zap.Int64("tenant_id", org.ID), zap.String("name", org.Name))
	return nil
}

func (r *pgOrganizationRepository) MarkPublished(ctx context.Context, id int64, publishedAt time.Time) error {
	tag, err := r.db.Exec(ctx, markOrganizationPublishedQuery, id, publishedAt)
	if err != nil {
		r.logger.Error("Failed to mark organization site published", zap.Int64("tenant_id", id), zap.Error(err))
		return fmt.Errorf("failed to mark organization %d published: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
