package mocks

import (
	"context"

	"rescue-site-server/internal/messaging"

	"github.com/stretchr/testify/mock"
)

// MockSiteEventPublisher is a mock type for the SiteEventPublisher type
type MockSiteEventPublisher struct {
	mock.Mock
}

// PublishSiteEvent provides a mock function with given fields: ctx, event
func (_m *MockSiteEventPublisher) PublishSiteEvent(ctx context.Context, event messaging.SiteEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

func NewMockSiteEventPublisher(t interface {
	mock.TestingT
	Helper()
}) *MockSiteEventPublisher {
	m := &MockSiteEventPublisher{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ messaging.SiteEventPublisher = (*MockSiteEventPublisher)(nil)
