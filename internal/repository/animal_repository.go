package repository

import (
	"context"
	"fmt"

	"rescue-site-server/internal/models"

	"go.uber.org/zap"
)

var _ AnimalRepository = (*pgAnimalRepository)(nil)

type pgAnimalRepository struct {
	db     DBTX
	logger *zap.Logger
}

func NewPgAnimalRepository(db DBTX, logger *zap.Logger) AnimalRepository {
	return &pgAnimalRepository{
		db:     db,
		logger: logger.Named("PgAnimalRepo"),
	}
}

const countAvailableAnimalsQuery = `
SELECT COUNT(*) FROM animals WHERE tenant_id = $1 AND status = $2`

const createAnimalQuery = `
INSERT INTO animals (tenant_id, name, species, status)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`

func (r *pgAnimalRepository) CountAvailable(ctx context.Context, tenantID int64) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, countAvailableAnimalsQuery, tenantID, models.AnimalStatusAvailable).Scan(&count); err != nil {
		r.logger.Error("Failed to count available animals", zap.Int64("tenant_id", tenantID), zap.Error(err))
		return 0, fmt.Errorf("failed to count available animals for tenant %d: %w", tenantID, err)
	}
	return count, nil
}

func (r *pgAnimalRepository) Create(ctx context.Context, animal *models.Animal) error {
	if animal.Status == "" {
		animal.Status = models.AnimalStatusAvailable
	}
	err := r.db.QueryRow(ctx, createAnimalQuery, animal.TenantID, animal.Name, animal.Species, animal.Status).
		Scan(&animal.ID, &animal.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create animal", zap.Int64("tenant_id", animal.TenantID), zap.Error(err))
		return fmt.Errorf("failed to create animal: %w", err)
	}
	return nil
}
