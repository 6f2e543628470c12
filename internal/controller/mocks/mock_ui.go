// Package mocks provides testify mocks of the controller interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	m "covmap.dev/pkg/covmap/internal/model"
)

// MockUI is a mock type for the UI type.
type MockUI struct {
	mock.Mock
}

// DisplayBuildResult provides a mock function with given fields: ctx, source, destination.
func (_m *MockUI) DisplayBuildResult(ctx context.Context, source m.Path, destination m.Path) {
	_m.Called(ctx, source, destination)
}

// DisplayAttribution provides a mock function with given fields: ctx, reports.
func (_m *MockUI) DisplayAttribution(ctx context.Context, reports []m.AttributionReport) error {
	ret := _m.Called(ctx, reports)

	return ret.Error(0)
}

// DisplayDiff provides a mock function with given fields: ctx, oldPath, newPath, diff.
func (_m *MockUI) DisplayDiff(ctx context.Context, oldPath, newPath m.Path, diff string) error {
	ret := _m.Called(ctx, oldPath, newPath, diff)

	return ret.Error(0)
}

// NewMockUI creates a new instance of MockUI.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mock := &MockUI{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
