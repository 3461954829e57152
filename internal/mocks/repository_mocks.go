package mocks

import (
	"context"
	"encoding/json"
	"time"

	"rescue-site-server/internal/models"
	"rescue-site-server/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockOrganizationRepository is a mock type for the OrganizationRepository type
type MockOrganizationRepository struct {
	mock.Mock
}

func (_m *MockOrganizationRepository) GetByID(ctx context.Context, id int64) (*models.Organization, error) {
	ret := _m.Called(ctx, id)
	org, _ := ret.Get(0).(*models.Organization)
	return org, ret.Error(1)
}

func (_m *MockOrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	ret := _m.Called(ctx, org)
	return ret.Error(0)
}

func (_m *MockOrganizationRepository) MarkPublished(ctx context.Context, id int64, publishedAt time.Time) error {
	ret := _m.Called(ctx, id, publishedAt)
	return ret.Error(0)
}

func NewMockOrganizationRepository(t interface {
	mock.TestingT
	Helper()
}) *MockOrganizationRepository {
	m := &MockOrganizationRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

// MockAnimalRepository is a mock type for the AnimalRepository type
type MockAnimalRepository struct {
	mock.Mock
}

func (_m *MockAnimalRepository) CountAvailable(ctx context.Context, tenantID int64) (int, error) {
	ret := _m.Called(ctx, tenantID)
	return ret.Int(0), ret.Error(1)
}

func (_m *MockAnimalRepository) Create(ctx context.Context, animal *models.Animal) error {
	ret := _m.Called(ctx, animal)
	return ret.Error(0)
}

func NewMockAnimalRepository(t interface {
	mock.TestingT
	Helper()
}) *MockAnimalRepository {
	m := &MockAnimalRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

// MockPageRepository is a mock type for the PageRepository type
type MockPageRepository struct {
	mock.Mock
}

func (_m *MockPageRepository) Create(ctx context.Context, page *models.Page) error {
	ret := _m.Called(ctx, page)
	if rf, ok := ret.Get(0).(func(context.Context, *models.Page) error); ok {
		return rf(ctx, page)
	}
	return ret.Error(0)
}

func (_m *MockPageRepository) ListByTenant(ctx context.Context, tenantID int64) ([]models.Page, error) {
	ret := _m.Called(ctx, tenantID)
	pages, _ := ret.Get(0).([]models.Page)
	return pages, ret.Error(1)
}

func NewMockPageRepository(t interface {
	mock.TestingT
	Helper()
}) *MockPageRepository {
	m := &MockPageRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

// MockSectionRepository is a mock type for the SectionRepository type
type MockSectionRepository struct {
	mock.Mock
}

func (_m *MockSectionRepository) Create(ctx context.Context, section *models.Section) error {
	ret := _m.Called(ctx, section)
	if rf, ok := ret.Get(0).(func(context.Context, *models.Section) error); ok {
		return rf(ctx, section)
	}
	return ret.Error(0)
}

func (_m *MockSectionRepository) UpdateContent(ctx context.Context, sectionID int64, content json.RawMessage) error {
	ret := _m.Called(ctx, sectionID, content)
	return ret.Error(0)
}

func (_m *MockSectionRepository) ListEmptyByTenant(ctx context.Context, tenantID int64) ([]models.Section, error) {
	ret := _m.Called(ctx, tenantID)
	sections, _ := ret.Get(0).([]models.Section)
	return sections, ret.Error(1)
}

func (_m *MockSectionRepository) CountEmptyByTenant(ctx context.Context, tenantID int64) (int, error) {
	ret := _m.Called(ctx, tenantID)
	return ret.Int(0), ret.Error(1)
}

func NewMockSectionRepository(t interface {
	mock.TestingT
	Helper()
}) *MockSectionRepository {
	m := &MockSectionRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var (
	_ repository.OrganizationRepository = (*MockOrganizationRepository)(nil)
	_ repository.AnimalRepository       = (*MockAnimalRepository)(nil)
	_ repository.PageRepository         = (*MockPageRepository)(nil)
	_ repository.SectionRepository      = (*MockSectionRepository)(nil)
)
