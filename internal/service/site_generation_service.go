package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rescue-site-server/internal/generation"
	"rescue-site-server/internal/lock"
	"rescue-site-server/internal/messaging"
	"rescue-site-server/internal/models"
	"rescue-site-server/internal/prompts"
	"rescue-site-server/internal/repository"

	"go.uber.org/zap"
)

var _ SiteGenerationService = (*siteGenerationServiceImpl)(nil)

type siteGenerationServiceImpl struct {
	orgRepo     repository.OrganizationRepository
	animalRepo  repository.AnimalRepository
	pageRepo    repository.PageRepository
	sectionRepo repository.SectionRepository
	completer   *generation.Completer
	opts        generation.Options
	locker      lock.Locker
	publisher   messaging.SiteEventPublisher
	logger      *zap.Logger
}

// NewSiteGenerationService создает сервис генерации сайта. model может быть
// пустым, тогда используется модель клиента.
func NewSiteGenerationService(
	orgRepo repository.OrganizationRepository,
	animalRepo repository.AnimalRepository,
	pageRepo repository.PageRepository,
	sectionRepo repository.SectionRepository,
	completer *generation.Completer,
	model string,
	locker lock.Locker,
	publisher messaging.SiteEventPublisher,
	logger *zap.Logger,
) SiteGenerationService {
	return &siteGenerationServiceImpl{
		orgRepo:     orgRepo,
		animalRepo:  animalRepo,
		pageRepo:    pageRepo,
		sectionRepo: sectionRepo,
		completer:   completer,
		opts:        generation.Options{Model: model},
		locker:      locker,
		publisher:   publisher,
		logger:      logger.Named("SiteGenerationService"),
	}
}

func (s *siteGenerationServiceImpl) GenerateStructure(ctx context.Context, tenantID int64) (*StructureResult, error) {
	release, err := s.acquire(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	defer release()

	return s.generateStructure(ctx, tenantID)
}

func (s *siteGenerationServiceImpl) GenerateCopy(ctx context.Context, tenantID int64) (*CopyResult, error) {
	release, err := s.acquire(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	defer release()

	return s.generateCopy(ctx, tenantID)
}

func (s *siteGenerationServiceImpl) GenerateAll(ctx context.Context, tenantID int64, opts GenerateAllOptions) (*AllResult, error) {
	log := s.logger.With(zap.Int64("tenant_id", tenantID))

	release, err := s.acquire(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	defer release()

	structure, err := s.generateStructure(ctx, tenantID)
	if err != nil {
		// Текст не генерируем, если структура не построена
		return &AllResult{Structure: structure}, err
	}

	copyResult, err := s.generateCopy(ctx, tenantID)
	if err != nil {
		return &AllResult{Structure: structure, Copy: copyResult}, err
	}

	rate, summary := summarize(copyResult)
	result := &AllResult{
		Structure:   structure,
		Copy:        copyResult,
		SuccessRate: rate,
		Summary:     summary,
	}

	if opts.Publish {
		result.Published = s.publish(ctx, tenantID)
	}

	log.Info("Site generation finished",
		zap.Int("pages_created", structure.PagesCreated),
		zap.String("summary", summary),
		zap.Bool("published", result.Published),
	)
	return result, nil
}

func (s *siteGenerationServiceImpl) Status(ctx context.Context, tenantID int64) (*StatusResult, error) {
	org, err := s.getOrganization(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	locked, err := s.locker.IsLocked(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to check generation lock: %w", err)
	}
	empty, err := s.sectionRepo.CountEmptyByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to count empty sections: %w", err)
	}
	pages, err := s.pageRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	if pages == nil {
		pages = []models.Page{}
	}

	return &StatusResult{
		TenantID:             tenantID,
		GenerationInProgress: locked,
		EmptySections:        empty,
		Pages:                pages,
		SitePublishedAt:      org.SitePublishedAt,
	}, nil
}

// acquire захватывает блокировку тенанта. Возвращаемая функция снимает ее
// даже после отмены ctx.
func (s *siteGenerationServiceImpl) acquire(ctx context.Context, tenantID int64) (func(), error) {
	release, err := s.locker.Acquire(ctx, tenantID)
	if err != nil {
		if errors.Is(err, models.ErrGenerationInProgress) {
			s.logger.Warn("Generation already in progress", zap.Int64("tenant_id", tenantID))
		}
		return nil, err
	}
	return func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			s.logger.Error("Failed to release generation lock", zap.Int64("tenant_id", tenantID), zap.Error(err))
		}
	}, nil
}

func (s *siteGenerationServiceImpl) getOrganization(ctx context.Context, tenantID int64) (*models.Organization, error) {
	org, err := s.orgRepo.GetByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to load organization %d: %w", tenantID, err)
	}
	return org, nil
}

func (s *siteGenerationServiceImpl) generateStructure(ctx context.Context, tenantID int64) (*StructureResult, error) {
	log := s.logger.With(zap.Int64("tenant_id", tenantID))

	org, err := s.getOrganization(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	available, err := s.animalRepo.CountAvailable(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to count available animals: %w", err)
	}

	prompt := prompts.BuildPlan(prompts.OrgBriefFrom(org), available)
	plan, err := generation.Complete(ctx, s.completer, prompt.Schema, prompt.Parts, s.opts)
	if err != nil {
		log.Error("Site plan generation failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", models.ErrPlanGenerationFailed, err)
	}
	log.Info("Site plan generated", zap.Int("pages", len(plan.Pages)), zap.Int("available_animals", available))

	result, err := s.persistPlan(ctx, tenantID, plan)
	if err != nil {
		log.Error("Failed to persist site plan",
			zap.Int("pages_created", result.PagesCreated),
			zap.Int("sections_created", result.SectionsCreated),
			zap.Error(err),
		)
		return result, err
	}

	event := messaging.NewSiteEvent(messaging.EventStructureGenerated, tenantID)
	event.PagesCreated = result.PagesCreated
	s.emit(ctx, event)
	return result, nil
}

// persistPlan сохраняет страницы и секции в порядке плана. Отката нет:
// при ошибке возвращается уже сохраненная часть.
func (s *siteGenerationServiceImpl) persistPlan(ctx context.Context, tenantID int64, plan models.SitePlan) (*StructureResult, error) {
	result := &StructureResult{Plan: plan, CreatedPages: []models.Page{}}

	for i, planned := range plan.Pages {
		page := &models.Page{
			TenantID:  tenantID,
			Key:       planned.Key,
			Title:     planned.Title,
			Path:      planned.Path,
			SortIndex: i,
		}
		if err := s.pageRepo.Create(ctx, page); err != nil {
			return result, fmt.Errorf("%w: page %q: %w", models.ErrPersistenceFailed, planned.Key, err)
		}
		result.CreatedPages = append(result.CreatedPages, *page)
		result.PagesCreated++

		for j, sectionType := range planned.Sections {
			section := &models.Section{
				TenantID:  tenantID,
				PageID:    page.ID,
				Type:      sectionType,
				SortIndex: j,
				Enabled:   true,
			}
			if err := s.sectionRepo.Create(ctx, section); err != nil {
				return result, fmt.Errorf("%w: section %q of page %q: %w", models.ErrPersistenceFailed, sectionType, planned.Key, err)
			}
			result.SectionsCreated++
		}
	}
	return result, nil
}

func (s *siteGenerationServiceImpl) generateCopy(ctx context.Context, tenantID int64) (*CopyResult, error) {
	log := s.logger.With(zap.Int64("tenant_id", tenantID))

	org, err := s.getOrganization(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	sections, err := s.sectionRepo.ListEmptyByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list empty sections: %w", err)
	}

	result := newCopyResult()
	if len(sections) == 0 {
		log.Info("No empty sections to fill")
		return result, nil
	}

	brief := prompts.BrandBriefFrom(org)
	for _, section := range sections {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.TotalProcessed++

		updated, skipped := s.fillSection(ctx, brief, section)
		if skipped != nil {
			copySectionsTotal.WithLabelValues(skipped.Reason).Inc()
			result.SkippedSections = append(result.SkippedSections, *skipped)
			continue
		}
		copySectionsTotal.WithLabelValues("updated").Inc()
		result.UpdatedSections = append(result.UpdatedSections, *updated)
		result.TotalUpdated++
	}

	log.Info("Section copy generated",
		zap.Int("total_processed", result.TotalProcessed),
		zap.Int("total_updated", result.TotalUpdated),
	)
	event := messaging.NewSiteEvent(messaging.EventCopyGenerated, tenantID)
	event.TotalProcessed = result.TotalProcessed
	event.TotalUpdated = result.TotalUpdated
	s.emit(ctx, event)
	return result, nil
}

// fillSection генерирует и сохраняет текст одной секции. Ошибка секции
// не прерывает обработку остальных.
func (s *siteGenerationServiceImpl) fillSection(ctx context.Context, brief prompts.BrandBrief, section models.Section) (*UpdatedSection, *SkippedSection) {
	log := s.logger.With(
		zap.Int64("tenant_id", section.TenantID),
		zap.Int64("section_id", section.ID),
		zap.String("section_type", string(section.Type)),
	)
	skip := func(reason string, err error) *SkippedSection {
		return &SkippedSection{
			SectionID: section.ID,
			PageID:    section.PageID,
			Type:      section.Type,
			Reason:    reason,
			Error:     err.Error(),
		}
	}

	prompt, err := prompts.BuildSectionCopy(section.Type, brief)
	if err != nil {
		log.Warn("Skipping section with unknown type", zap.Error(err))
		return nil, skip(SkipReasonUnknownType, err)
	}

	content, err := generation.Complete(ctx, s.completer, prompt.Schema, prompt.Parts, s.opts)
	if err != nil {
		log.Warn("Section copy generation failed, section left empty", zap.Error(err))
		return nil, skip(SkipReasonGenerationFailed, err)
	}

	raw, err := json.Marshal(content)
	if err != nil {
		log.Error("Failed to marshal section content", zap.Error(err))
		return nil, skip(SkipReasonPersistFailed, err)
	}
	if err := s.sectionRepo.UpdateContent(ctx, section.ID, raw); err != nil {
		log.Error("Failed to save section content", zap.Error(err))
		return nil, skip(SkipReasonPersistFailed, err)
	}

	return &UpdatedSection{
		SectionID: section.ID,
		PageID:    section.PageID,
		Type:      section.Type,
		Content:   raw,
	}, nil
}

func (s *siteGenerationServiceImpl) publish(ctx context.Context, tenantID int64) bool {
	if err := s.orgRepo.MarkPublished(ctx, tenantID, time.Now().UTC()); err != nil {
		s.logger.Error("Failed to mark site as published", zap.Int64("tenant_id", tenantID), zap.Error(err))
		return false
	}
	s.emit(ctx, messaging.NewSiteEvent(messaging.EventPublished, tenantID))
	return true
}

// emit публикует событие. Ошибка брокера не влияет на результат генерации.
func (s *siteGenerationServiceImpl) emit(ctx context.Context, event messaging.SiteEvent) {
	if err := s.publisher.PublishSiteEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish site event",
			zap.String("type", event.Type),
			zap.Int64("tenant_id", event.TenantID),
			zap.Error(err),
		)
	}
}

// summarize считает долю заполненных секций. Без пустых секций доля равна 1.
func summarize(result *CopyResult) (float64, string) {
	if result.TotalProcessed == 0 {
		return 1.0, "0/0 sections generated (no empty sections)"
	}
	rate := float64(result.TotalUpdated) / float64(result.TotalProcessed)
	return rate, fmt.Sprintf("%d/%d sections generated (%.0f%%)", result.TotalUpdated, result.TotalProcessed, rate*100)
}
