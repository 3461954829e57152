package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"rescue-site-server/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"go.uber.org/zap"
)

var _ SectionRepository = (*pgSectionRepository)(nil)

type pgSectionRepository struct {
	db     DBTX
	logger *zap.Logger
}

func NewPgSectionRepository(db DBTX, logger *zap.Logger) SectionRepository {
	return &pgSectionRepository{
		db:     db,
		logger: logger.Named("PgSectionRepo"),
	}
}

const createSectionQuery = `
INSERT INTO sections (tenant_id, page_id, section_type, sort_index, content, enabled)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at, updated_at`

const updateSectionContentQuery = `
UPDATE sections SET content = $2, updated_at = NOW()
WHERE id = $1`

// Пустым считается NULL, JSON null и пустой объект
const emptySectionCondition = `
s.tenant_id = $1 AND s.enabled
AND (s.content IS NULL OR s.content = 'null'::jsonb OR s.content = '{}'::jsonb)`

const listEmptySectionsQuery = `
SELECT s.id, s.tenant_id, s.page_id, s.section_type, s.sort_index, s.content, s.enabled, s.created_at, s.updated_at
FROM sections s
JOIN pages p ON p.id = s.page_id
WHERE ` + emptySectionCondition + `
ORDER BY p.sort_index, p.id, s.sort_index, s.id`

const countEmptySectionsQuery = `
SELECT COUNT(*) FROM sections s WHERE ` + emptySectionCondition

func (r *pgSectionRepository) Create(ctx context.Context, section *models.Section) error {
	err := r.db.QueryRow(ctx, createSectionQuery,
		section.TenantID,
		section.PageID,
		string(section.Type),
		section.SortIndex,
		nullableJSON(section.Content),
		section.Enabled,
	).Scan(&section.ID, &section.CreatedAt, &section.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create section",
			zap.Int64("tenant_id", section.TenantID),
			zap.Int64("page_id", section.PageID),
			zap.String("section_type", string(section.Type)),
			zap.Error(err),
		)
		return fmt.Errorf("failed to create section %s: %w", section.Type, err)
	}
	return nil
}

func (r *pgSectionRepository) UpdateContent(ctx context.Context, sectionID int64, content json.RawMessage) error {
	tag, err := r.db.Exec(ctx, updateSectionContentQuery, sectionID, nullableJSON(content))
	if err != nil {
		r.logger.Error("Failed to update section content", zap.Int64("section_id", sectionID), zap.Error(err))
		return fmt.Errorf("failed to update section %d content: %w", sectionID, err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	r.logger.Debug("Section content replaced", zap.Int64("section_id", sectionID), zap.Int("bytes", len(content)))
	return nil
}

func (r *pgSectionRepository) ListEmptyByTenant(ctx context.Context, tenantID int64) ([]models.Section, error) {
	var sections []models.Section
	if err := pgxscan.Select(ctx, r.db, &sections, listEmptySectionsQuery, tenantID); err != nil {
		r.logger.Error("Failed to list empty sections", zap.Int64("tenant_id", tenantID), zap.Error(err))
		return nil, fmt.Errorf("failed to list empty sections for tenant %d: %w", tenantID, err)
	}
	return sections, nil
}

func (r *pgSectionRepository) CountEmptyByTenant(ctx context.Context, tenantID int64) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, countEmptySectionsQuery, tenantID).Scan(&count); err != nil {
		r.logger.Error("Failed to count empty sections", zap.Int64("tenant_id", tenantID), zap.Error(err))
		return 0, fmt.Errorf("failed to count empty sections for tenant %d: %w", tenantID, err)
	}
	return count, nil
}

// nullableJSON превращает пустой контент в NULL.
func nullableJSON(content json.RawMessage) interface{} {
	if len(content) == 0 {
		return nil
	}
	return []byte(content)
}
