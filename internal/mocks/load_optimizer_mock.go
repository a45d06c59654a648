// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/truckload-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

// MockLoadOptimizer is a testify mock of service.LoadOptimizer.
type MockLoadOptimizer struct {
	mock.Mock
}

func (m *MockLoadOptimizer) Optimize(ctx context.Context, req model.LoadRequest) (model.LoadPlan, error) {
	args := m.Called(ctx, req)
	plan, _ := args.Get(0).(model.LoadPlan)
	return plan, args.Error(1)
}

func (m *MockLoadOptimizer) DefaultTruck() model.Truck {
	args := m.Called()
	truck, _ := args.Get(0).(model.Truck)
	return truck
}

func (m *MockLoadOptimizer) InvalidateCache() {
	m.Called()
}
