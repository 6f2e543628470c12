// Package mocks provides testify mocks of the adapter interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	m "covmap.dev/pkg/covmap/internal/model"
)

// MockReportReader is a mock type for the ReportReader type.
type MockReportReader struct {
	mock.Mock
}

// Read provides a mock function with given fields: ctx, path, contextPrefixes.
func (_m *MockReportReader) Read(ctx context.Context, path m.Path, contextPrefixes []string) (*m.Report, error) {
	ret := _m.Called(ctx, path, contextPrefixes)

	if rf, ok := ret.Get(0).(func(context.Context, m.Path, []string) (*m.Report, error)); ok {
		return rf(ctx, path, contextPrefixes)
	}

	var r0 *m.Report
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*m.Report)
	}

	return r0, ret.Error(1)
}

// NewMockReportReader creates a new instance of MockReportReader.
func NewMockReportReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportReader {
	mock := &MockReportReader{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockAttributionStore is a mock type for the AttributionStore type.
type MockAttributionStore struct {
	mock.Mock
}

// Save provides a mock function with given fields: ctx, path, doc.
func (_m *MockAttributionStore) Save(ctx context.Context, path m.Path, doc m.AttributionReport) error {
	ret := _m.Called(ctx, path, doc)

	return ret.Error(0)
}

// Load provides a mock function with given fields: ctx, path.
func (_m *MockAttributionStore) Load(ctx context.Context, path m.Path) (m.AttributionReport, error) {
	ret := _m.Called(ctx, path)

	var r0 m.AttributionReport
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(m.AttributionReport)
	}

	return r0, ret.Error(1)
}

// List provides a mock function with given fields: ctx, dir.
func (_m *MockAttributionStore) List(ctx context.Context, dir m.Path) ([]m.Path, error) {
	ret := _m.Called(ctx, dir)

	var r0 []m.Path
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]m.Path)
	}

	return r0, ret.Error(1)
}

// NewMockAttributionStore creates a new instance of MockAttributionStore.
func NewMockAttributionStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAttributionStore {
	mock := &MockAttributionStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
