package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"rescue-site-server/internal/generation"
	"rescue-site-server/internal/mocks"
	"rescue-site-server/internal/models"
	"rescue-site-server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T) (*gin.Engine, *mocks.MockSiteGenerationService) {
	t.Helper()
	svc := mocks.NewMockSiteGenerationService(t)
	r := gin.New()
	NewAIHandler(svc, zap.NewNop()).RegisterRoutes(r)
	return r, svc
}

func post(r *gin.Engine, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	return w, decoded
}

func TestGeneratePlan_Success(t *testing.T) {
	r, svc := setupRouter(t)
	plan := models.SitePlan{Pages: []models.PlanPage{{Key: "home", Title: "Home", Path: "/", Sections: []models.SectionType{models.SectionHero}}}}
	svc.On("GenerateStructure", mock.Anything, int64(5)).Return(&service.StructureResult{
		Plan:         plan,
		CreatedPages: []models.Page{{ID: 1, TenantID: 5, Key: "home", Title: "Home", Path: "/"}},
		PagesCreated: 1,
	}, nil).Once()

	w, body := post(r, "/ai/plan", `{"tenant_id":5}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["pages_created"])
	assert.Len(t, body["created_pages"], 1)
	assert.NotNil(t, body["plan"])
	svc.AssertExpectations(t)
}

func TestGeneratePlan_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"organization not found", models.ErrOrganizationNotFound, http.StatusNotFound},
		{"lock held", models.ErrGenerationInProgress, http.StatusConflict},
		{"plan failed", fmt.Errorf("%w: %w", models.ErrPlanGenerationFailed, generation.ErrGenerationFailed), http.StatusBadGateway},
		{"persistence", fmt.Errorf("%w: page %q", models.ErrPersistenceFailed, "home"), http.StatusInternalServerError},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, svc := setupRouter(t)
			svc.On("GenerateStructure", mock.Anything, int64(9)).Return(nil, tt.err).Once()

			w, body := post(r, "/ai/plan", `{"tenant_id":9}`)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, false, body["success"])
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestGenerate_BadRequest(t *testing.T) {
	r, svc := setupRouter(t)

	for _, path := range []string{"/ai/plan", "/ai/copy", "/ai/all"} {
		for _, body := range []string{`{`, `{}`, `{"tenant_id":0}`, `{"tenant_id":-3}`, `{"tenant_id":"abc"}`} {
			w, decoded := post(r, path, body)
			assert.Equal(t, http.StatusBadRequest, w.Code, "%s %s", path, body)
			assert.Equal(t, false, decoded["success"])
		}
	}
	svc.AssertNotCalled(t, "GenerateStructure", mock.Anything, mock.Anything)
	svc.AssertNotCalled(t, "GenerateCopy", mock.Anything, mock.Anything)
	svc.AssertNotCalled(t, "GenerateAll", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateCopy_ZeroSectionsReturnsEmptyArray(t *testing.T) {
	r, svc := setupRouter(t)
	svc.On("GenerateCopy", mock.Anything, int64(3)).Return(&service.CopyResult{}, nil).Once()

	w, _ := post(r, "/ai/copy", `{"tenant_id":3}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"updated_sections":[],"skipped_sections":[],"total_processed":0,"total_updated":0}`, w.Body.String())
}

func TestGenerateCopy_NotFound(t *testing.T) {
	r, svc := setupRouter(t)
	svc.On("GenerateCopy", mock.Anything, int64(3)).Return(nil, models.ErrOrganizationNotFound).Once()

	w, body := post(r, "/ai/copy", `{"tenant_id":3}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Organization 3 not found", body["error"])
}

func TestGeneratePlan_NotFoundIncludesTenant(t *testing.T) {
	r, svc := setupRouter(t)
	svc.On("GenerateStructure", mock.Anything, int64(777)).Return(nil, models.ErrOrganizationNotFound).Once()

	w, body := post(r, "/ai/plan", `{"tenant_id":777}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Organization 777 not found", body["error"])
}

func TestGetStatus_NotFoundIncludesTenant(t *testing.T) {
	r, svc := setupRouter(t)
	svc.On("Status", mock.Anything, int64(12)).Return(nil, models.ErrOrganizationNotFound).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ai/status/12", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Organization 12 not found")
}

func TestGenerateAll_Success(t *testing.T) {
	r, svc := setupRouter(t)
	svc.On("GenerateAll", mock.Anything, int64(4), service.GenerateAllOptions{Publish: true}).Return(&service.AllResult{
		Structure: &service.StructureResult{PagesCreated: 2, CreatedPages: []models.Page{{ID: 1}, {ID: 2}}},
		Copy: &service.CopyResult{
			UpdatedSections: []service.UpdatedSection{{SectionID: 1}, {SectionID: 2}, {SectionID: 4}, {SectionID: 5}},
			SkippedSections: []service.SkippedSection{{SectionID: 3, Reason: service.SkipReasonGenerationFailed}},
			TotalProcessed:  5,
			TotalUpdated:    4,
		},
		SuccessRate: 0.8,
		Summary:     "4/5 sections generated (80%)",
		Published:   true,
	}, nil).Once()

	w, body := post(r, "/ai/all", `{"tenant_id":4,"publish":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "4/5 sections generated (80%)", body["summary"])
	assert.Equal(t, 0.8, body["success_rate"])
	assert.Equal(t, float64(2), body["pages_created"])
	assert.Equal(t, float64(5), body["total_processed"])
	assert.Equal(t, float64(4), body["total_updated"])
	assert.Equal(t, true, body["published"])
}

func TestGenerateAll_LockHeld(t *testing.T) {
	r, svc := setupRouter(t)
	svc.On("GenerateAll", mock.Anything, int64(4), service.GenerateAllOptions{}).Return(nil, models.ErrGenerationInProgress).Once()

	w, body := post(r, "/ai/all", `{"tenant_id":4}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestGetStatus(t *testing.T) {
	r, svc := setupRouter(t)
	svc.On("Status", mock.Anything, int64(8)).Return(&service.StatusResult{
		TenantID:             8,
		GenerationInProgress: true,
		EmptySections:        2,
		Pages:                []models.Page{},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/ai/status/8", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"tenant_id":8,"generation_in_progress":true,"empty_sections":2,"pages":[]}`, w.Body.String())
}

func TestGetStatus_InvalidTenant(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ai/status/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
