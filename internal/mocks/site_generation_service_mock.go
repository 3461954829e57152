package mocks

import (
	"context"

	"rescue-site-server/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockSiteGenerationService is a mock type for the SiteGenerationService type
type MockSiteGenerationService struct {
	mock.Mock
}

func (_m *MockSiteGenerationService) GenerateStructure(ctx context.Context, tenantID int64) (*service.StructureResult, error) {
	ret := _m.Called(ctx, tenantID)
	res, _ := ret.Get(0).(*service.StructureResult)
	return res, ret.Error(1)
}

func (_m *MockSiteGenerationService) GenerateCopy(ctx context.Context, tenantID int64) (*service.CopyResult, error) {
	ret := _m.Called(ctx, tenantID)
	res, _ := ret.Get(0).(*service.CopyResult)
	return res, ret.Error(1)
}

func (_m *MockSiteGenerationService) GenerateAll(ctx context.Context, tenantID int64, opts service.GenerateAllOptions) (*service.AllResult, error) {
	ret := _m.Called(ctx, tenantID, opts)
	res, _ := ret.Get(0).(*service.AllResult)
	return res, ret.Error(1)
}

func (_m *MockSiteGenerationService) Status(ctx context.Context, tenantID int64) (*service.StatusResult, error) {
	ret := _m.Called(ctx, tenantID)
	res, _ := ret.Get(0).(*service.StatusResult)
	return res, ret.Error(1)
}

func NewMockSiteGenerationService(t interface {
	mock.TestingT
	Helper()
}) *MockSiteGenerationService {
	m := &MockSiteGenerationService{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ service.SiteGenerationService = (*MockSiteGenerationService)(nil)
