package service

import (
	"context"
	"encoding/json"
	"time"

	"rescue-site-server/internal/models"
)

// Причины пропуска секции при генерации текста
const (
	SkipReasonUnknownType      = "unknown_section_type"
	SkipReasonGenerationFailed = "generation_failed"
	SkipReasonPersistFailed    = "persist_failed"
)

// SiteGenerationService строит сайт тенанта: сначала структуру, затем текст секций.
type SiteGenerationService interface {
	// GenerateStructure генерирует план и сохраняет страницы с пустыми секциями.
	GenerateStructure(ctx context.Context, tenantID int64) (*StructureResult, error)
	// GenerateCopy заполняет текстом все пустые включенные секции.
	GenerateCopy(ctx context.Context, tenantID int64) (*CopyResult, error)
	// GenerateAll выполняет структуру и текст под одной блокировкой.
	GenerateAll(ctx context.Context, tenantID int64, opts GenerateAllOptions) (*AllResult, error)
	Status(ctx context.Context, tenantID int64) (*StatusResult, error)
}

type StructureResult struct {
	Plan            models.SitePlan `json:"plan"`
	CreatedPages    []models.Page   `json:"created_pages"`
	PagesCreated    int             `json:"pages_created"`
	SectionsCreated int             `json:"sections_created"`
}

// UpdatedSection - секция, получившая контент.
type UpdatedSection struct {
	SectionID int64              `json:"section_id"`
	PageID    int64              `json:"page_id"`
	Type      models.SectionType `json:"section_type"`
	Content   json.RawMessage    `json:"content"`
}

// SkippedSection - секция, оставшаяся пустой.
type SkippedSection struct {
	SectionID int64              `json:"section_id"`
	PageID    int64              `json:"page_id"`
	Type      models.SectionType `json:"section_type"`
	Reason    string             `json:"reason"`
	Error     string             `json:"error,omitempty"`
}

type CopyResult struct {
	UpdatedSections []UpdatedSection `json:"updated_sections"`
	SkippedSections []SkippedSection `json:"skipped_sections"`
	TotalProcessed  int              `json:"total_processed"`
	TotalUpdated    int              `json:"total_updated"`
}

type GenerateAllOptions struct {
	// Publish отмечает сайт опубликованным после генерации текста.
	Publish bool
}

type AllResult struct {
	Structure   *StructureResult `json:"structure"`
	Copy        *CopyResult      `json:"copy"`
	SuccessRate float64          `json:"success_rate"`
	Summary     string           `json:"summary"`
	Published   bool             `json:"published"`
}

type StatusResult struct {
	TenantID             int64         `json:"tenant_id"`
	GenerationInProgress bool          `json:"generation_in_progress"`
	EmptySections        int           `json:"empty_sections"`
	Pages                []models.Page `json:"pages"`
	SitePublishedAt      *time.Time    `json:"site_published_at,omitempty"`
}

func newCopyResult() *CopyResult {
	return &CopyResult{
		UpdatedSections: []UpdatedSection{},
		SkippedSections: []SkippedSection{},
	}
}
