package repository

import (
	"context"
	"fmt"

	"rescue-site-server/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"go.uber.org/zap"
)

var _ PageRepository = (*pgPageRepository)(nil)

type pgPageRepository struct {
	db     DBTX
	logger *zap.Logger
}

func NewPgPageRepository(db DBTX, logger *zap.Logger) PageRepository {
	return &pgPageRepository{
		db:     db,
		logger: logger.Named("PgPageRepo"),
	}
}

const createPageQuery = `
INSERT INTO pages (tenant_id, key, title, path, sort_index)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at`

const listPagesByTenantQuery = `
SELECT id, tenant_id, key, title, path, sort_index, created_at
FROM pages
WHERE tenant_id = $1
ORDER BY sort_index, id`

func (r *pgPageRepository) Create(ctx context.Context, page *models.Page) error {
	err := r.db.QueryRow(ctx, createPageQuery, page.TenantID, page.Key, page.Title, page.Path, page.SortIndex).
		Scan(&page.ID, &page.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create page",
			zap.Int64("tenant_id", page.TenantID),
			zap.String("key", page.Key),
			zap.Error(err),
		)
		return fmt.Errorf("failed to create page %q: %w", page.Key, err)
	}
	r.logger.Debug("Page created", zap.Int64("page_id", page.ID), zap.String("key", page.Key))
	return nil
}

func (r *pgPageRepository) ListByTenant(ctx context.Context, tenantID int64) ([]models.Page, error) {
	var pages []models.Page
	if err := pgxscan.Select(ctx, r.db, &pages, listPagesByTenantQuery, tenantID); err != nil {
		r.logger.Error("Failed to list pages", zap.Int64("tenant_id", tenantID), zap.Error(err))
		return nil, fmt.Errorf("failed to list pages for tenant %d: %w", tenantID, err)
	}
	return pages, nil
}
