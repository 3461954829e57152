package repository

import (
	"context"
	"encoding/json"
	"time"

	"rescue-site-server/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX - общий интерфейс *pgxpool.Pool, *pgxpool.Conn и pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// OrganizationRepository - доступ к организациям (тенантам).
type OrganizationRepository interface {
	// GetByID возвращает models.ErrNotFound, если организации нет.
	GetByID(ctx context.Context, id int64) (*models.Organization, error)
	Create(ctx context.Context, org *models.Organization) error
	MarkPublished(ctx context.Context, id int64, publishedAt time.Time) error
}

// AnimalRepository - доступ к животным приюта.
type AnimalRepository interface {
	CountAvailable(ctx context.Context, tenantID int64) (int, error)
	Create(ctx context.Context, animal *models.Animal) error
}

// PageRepository - страницы сайта.
type PageRepository interface {
	// Create заполняет page.ID и page.CreatedAt.
	Create(ctx context.Context, page *models.Page) error
	ListByTenant(ctx context.Context, tenantID int64) ([]models.Page, error)
}

// SectionRepository - секции страниц.
type SectionRepository interface {
	// Create заполняет section.ID и метки времени.
	Create(ctx context.Context, section *models.Section) error
	// UpdateContent полностью заменяет контент секции.
	UpdateContent(ctx context.Context, sectionID int64, content json.RawMessage) error
	// ListEmptyByTenant возвращает включенные секции без контента в порядке страниц и секций.
	ListEmptyByTenant(ctx context.Context, tenantID int64) ([]models.Section, error)
	CountEmptyByTenant(ctx context.Context, tenantID int64) (int, error)
}
