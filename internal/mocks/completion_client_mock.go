package mocks

import (
	"context"

	"rescue-site-server/internal/ai"

	"github.com/stretchr/testify/mock"
)

// MockCompletionClient is a mock type for the CompletionClient type
type MockCompletionClient struct {
	mock.Mock
}

// Complete provides a mock function with given fields: ctx, req
func (_m *MockCompletionClient) Complete(ctx context.Context, req ai.CompletionRequest) (string, ai.UsageInfo, error) {
	ret := _m.Called(ctx, req)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, ai.CompletionRequest) string); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	var r1 ai.UsageInfo
	if rf, ok := ret.Get(1).(func(context.Context, ai.CompletionRequest) ai.UsageInfo); ok {
		r1 = rf(ctx, req)
	} else if ret.Get(1) != nil {
		r1 = ret.Get(1).(ai.UsageInfo)
	}

	var r2 error
	if rf, ok := ret.Get(2).(func(context.Context, ai.CompletionRequest) error); ok {
		r2 = rf(ctx, req)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// NewMockCompletionClient creates a new instance of MockCompletionClient. It also registers a testing interface on the mock.
// The first argument is typically a *testing.T value.
func NewMockCompletionClient(t interface {
	mock.TestingT
	Helper()
}) *MockCompletionClient {
	m := &MockCompletionClient{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ ai.CompletionClient = (*MockCompletionClient)(nil)
