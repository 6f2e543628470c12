// Package mocks provides testify mocks of the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	domain "covmap.dev/pkg/covmap/internal/domain"
	m "covmap.dev/pkg/covmap/internal/model"
)

// MockWorkflow is a mock type for the Workflow type.
type MockWorkflow struct {
	mock.Mock
}

// Build provides a mock function with given fields: ctx, args.
func (_m *MockWorkflow) Build(ctx context.Context, args domain.BuildArgs) error {
	ret := _m.Called(ctx, args)

	if rf, ok := ret.Get(0).(func(context.Context, domain.BuildArgs) error); ok {
		return rf(ctx, args)
	}

	return ret.Error(0)
}

// View provides a mock function with given fields: ctx, args.
func (_m *MockWorkflow) View(ctx context.Context, args domain.ViewArgs) error {
	ret := _m.Called(ctx, args)

	if rf, ok := ret.Get(0).(func(context.Context, domain.ViewArgs) error); ok {
		return rf(ctx, args)
	}

	return ret.Error(0)
}

// Diff provides a mock function with given fields: ctx, args.
func (_m *MockWorkflow) Diff(ctx context.Context, args domain.DiffArgs) error {
	ret := _m.Called(ctx, args)

	if rf, ok := ret.Get(0).(func(context.Context, domain.DiffArgs) error); ok {
		return rf(ctx, args)
	}

	return ret.Error(0)
}

// NewMockWorkflow creates a new instance of MockWorkflow. It also registers a
// testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mock := &MockWorkflow{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockAttributionEngine is a mock type for the AttributionEngine type.
type MockAttributionEngine struct {
	mock.Mock
}

// Build provides a mock function with given fields: raw, testDirPrefix.
func (_m *MockAttributionEngine) Build(raw m.RawMappings, testDirPrefix string) m.Attribution {
	ret := _m.Called(raw, testDirPrefix)

	if rf, ok := ret.Get(0).(func(m.RawMappings, string) m.Attribution); ok {
		return rf(raw, testDirPrefix)
	}

	if ret.Get(0) == nil {
		return nil
	}

	return ret.Get(0).(m.Attribution)
}

// NewMockAttributionEngine creates a new instance of MockAttributionEngine.
func NewMockAttributionEngine(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAttributionEngine {
	mock := &MockAttributionEngine{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
