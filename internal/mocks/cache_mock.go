// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/guttosm/truckload-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

// MockCache is a testify mock of cache.Cache.
type MockCache struct {
	mock.Mock
}

// NewMockCache creates a MockCache whose expectations are asserted on cleanup.
func NewMockCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCache {
	m := &MockCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCache) Get(key uint64) (model.LoadPlan, bool) {
	args := m.Called(key)
	plan, _ := args.Get(0).(model.LoadPlan)
	return plan, args.Bool(1)
}

func (m *MockCache) Set(key uint64, value model.LoadPlan) {
	m.Called(key, value)
}

func (m *MockCache) Invalidate(key uint64) {
	m.Called(key)
}

func (m *MockCache) Clear() {
	m.Called()
}

func (m *MockCache) Stop() {
	m.Called()
}
