package handler

import (
	"net/http"
	"strconv"

	"rescue-site-server/internal/models"
	"rescue-site-server/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AIHandler struct {
	service service.SiteGenerationService
	logger  *zap.Logger
}

func NewAIHandler(svc service.SiteGenerationService, logger *zap.Logger) *AIHandler {
	return &AIHandler{
		service: svc,
		logger:  logger.Named("AIHandler"),
	}
}

// RegisterRoutes регистрирует /ai/*. middlewares применяются ко всей группе
// (авторизация, rate limit).
func (h *AIHandler) RegisterRoutes(router gin.IRouter, middlewares ...gin.HandlerFunc) {
	aiGroup := router.Group("/ai")
	aiGroup.Use(middlewares...)
	{
		aiGroup.POST("/plan", h.generatePlan)
		aiGroup.POST("/copy", h.generateCopy)
		aiGroup.POST("/all", h.generateAll)
		aiGroup.GET("/status/:tenant_id", h.getStatus)
	}
}

type generateRequest struct {
	TenantID int64 `json:"tenant_id" binding:"required,gt=0"`
}

type generateAllRequest struct {
	TenantID int64 `json:"tenant_id" binding:"required,gt=0"`
	Publish  bool  `json:"publish"`
}

type planResponse struct {
	Success      bool            `json:"success"`
	Plan         models.SitePlan `json:"plan"`
	CreatedPages []models.Page   `json:"created_pages"`
	PagesCreated int             `json:"pages_created"`
}

type copyResponse struct {
	Success         bool                     `json:"success"`
	UpdatedSections []service.UpdatedSection `json:"updated_sections"`
	SkippedSections []service.SkippedSection `json:"skipped_sections"`
	TotalProcessed  int                      `json:"total_processed"`
	TotalUpdated    int                      `json:"total_updated"`
}

type allResponse struct {
	Success         bool                     `json:"success"`
	Plan            models.SitePlan          `json:"plan"`
	CreatedPages    []models.Page            `json:"created_pages"`
	PagesCreated    int                      `json:"pages_created"`
	UpdatedSections []service.UpdatedSection `json:"updated_sections"`
	SkippedSections []service.SkippedSection `json:"skipped_sections"`
	TotalProcessed  int                      `json:"total_processed"`
	TotalUpdated    int                      `json:"total_updated"`
	SuccessRate     float64                  `json:"success_rate"`
	Summary         string                   `json:"summary"`
	Published       bool                     `json:"published"`
}

type statusResponse struct {
	Success bool `json:"success"`
	*service.StatusResult
}

// @Summary Генерация структуры сайта
// @Description Строит план страниц по данным приюта и сохраняет страницы с пустыми секциями
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body generateRequest true "Тенант"
// @Success 200 {object} planResponse
// @Failure 400 {object} models.ErrorResponse "Неверные данные запроса"
// @Failure 404 {object} models.ErrorResponse "Организация не найдена"
// @Failure 409 {object} models.ErrorResponse "Генерация уже идет"
// @Failure 502 {object} models.ErrorResponse "Модель не вернула валидный план"
// @Router /ai/plan [post]
func (h *AIHandler) generatePlan(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid plan request", zap.Error(err))
		models.SendJSONError(c, "Invalid request body: tenant_id must be a positive integer", http.StatusBadRequest)
		return
	}

	res, err := h.service.GenerateStructure(c.Request.Context(), req.TenantID)
	if err != nil {
		h.handleServiceError(c, req.TenantID, err)
		return
	}
	models.SendJSONResponse(c, planResponse{
		Success:      true,
		Plan:         res.Plan,
		CreatedPages: nonNilPages(res.CreatedPages),
		PagesCreated: res.PagesCreated,
	}, http.StatusOK)
}

// @Summary Генерация текста секций
// @Description Заполняет текстом все пустые включенные секции тенанта. Ошибка одной секции не прерывает остальные
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body generateRequest true "Тенант"
// @Success 200 {object} copyResponse
// @Failure 400 {object} models.ErrorResponse "Неверные данные запроса"
// @Failure 404 {object} models.ErrorResponse "Организация не найдена"
// @Failure 409 {object} models.ErrorResponse "Генерация уже идет"
// @Router /ai/copy [post]
func (h *AIHandler) generateCopy(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid copy request", zap.Error(err))
		models.SendJSONError(c, "Invalid request body: tenant_id must be a positive integer", http.StatusBadRequest)
		return
	}

	res, err := h.service.GenerateCopy(c.Request.Context(), req.TenantID)
	if err != nil {
		h.handleServiceError(c, req.TenantID, err)
		return
	}
	models.SendJSONResponse(c, copyResponse{
		Success:         true,
		UpdatedSections: nonNilUpdated(res.UpdatedSections),
		SkippedSections: nonNilSkipped(res.SkippedSections),
		TotalProcessed:  res.TotalProcessed,
		TotalUpdated:    res.TotalUpdated,
	}, http.StatusOK)
}

// @Summary Полная генерация сайта
// @Description Структура, затем текст секций под одной блокировкой. publish=true отмечает сайт опубликованным
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body generateAllRequest true "Тенант и флаг публикации"
// @Success 200 {object} allResponse
// @Failure 400 {object} models.ErrorResponse "Неверные данные запроса"
// @Failure 404 {object} models.ErrorResponse "Организация не найдена"
// @Failure 409 {object} models.ErrorResponse "Генерация уже идет"
// @Failure 502 {object} models.ErrorResponse "Модель не вернула валидный план"
// @Router /ai/all [post]
func (h *AIHandler) generateAll(c *gin.Context) {
	var req generateAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid generate-all request", zap.Error(err))
		models.SendJSONError(c, "Invalid request body: tenant_id must be a positive integer", http.StatusBadRequest)
		return
	}

	res, err := h.service.GenerateAll(c.Request.Context(), req.TenantID, service.GenerateAllOptions{Publish: req.Publish})
	if err != nil {
		h.handleServiceError(c, req.TenantID, err)
		return
	}

	resp := allResponse{
		Success:         true,
		UpdatedSections: []service.UpdatedSection{},
		SkippedSections: []service.SkippedSection{},
		CreatedPages:    []models.Page{},
		SuccessRate:     res.SuccessRate,
		Summary:         res.Summary,
		Published:       res.Published,
	}
	if res.Structure != nil {
		resp.Plan = res.Structure.Plan
		resp.CreatedPages = nonNilPages(res.Structure.CreatedPages)
		resp.PagesCreated = res.Structure.PagesCreated
	}
	if res.Copy != nil {
		resp.UpdatedSections = nonNilUpdated(res.Copy.UpdatedSections)
		resp.SkippedSections = nonNilSkipped(res.Copy.SkippedSections)
		resp.TotalProcessed = res.Copy.TotalProcessed
		resp.TotalUpdated = res.Copy.TotalUpdated
	}
	models.SendJSONResponse(c, resp, http.StatusOK)
}

// @Summary Состояние сайта тенанта
// @Tags ai
// @Produce json
// @Security BearerAuth
// @Param tenant_id path int true "ID тенанта"
// @Success 200 {object} statusResponse
// @Failure 400 {object} models.ErrorResponse "Неверный tenant_id"
// @Failure 404 {object} models.ErrorResponse "Организация не найдена"
// @Router /ai/status/{tenant_id} [get]
func (h *AIHandler) getStatus(c *gin.Context) {
	tenantID, err := strconv.ParseInt(c.Param("tenant_id"), 10, 64)
	if err != nil || tenantID <= 0 {
		models.SendJSONError(c, models.ErrInvalidTenantID.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.service.Status(c.Request.Context(), tenantID)
	if err != nil {
		h.handleServiceError(c, tenantID, err)
		return
	}
	models.SendJSONResponse(c, statusResponse{Success: true, StatusResult: res}, http.StatusOK)
}

func nonNilPages(pages []models.Page) []models.Page {
	if pages == nil {
		return []models.Page{}
	}
	return pages
}

func nonNilUpdated(sections []service.UpdatedSection) []service.UpdatedSection {
	if sections == nil {
		return []service.UpdatedSection{}
	}
	return sections
}

func nonNilSkipped(sections []service.SkippedSection) []service.SkippedSection {
	if sections == nil {
		return []service.SkippedSection{}
	}
	return sections
}
