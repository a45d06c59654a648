// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/truckload-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockPlanHistory is a testify mock of service.PlanHistory.
type MockPlanHistory struct {
	mock.Mock
}

func (m *MockPlanHistory) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}

// Save assigns an id to plan when the mocked call succeeds.
func (m *MockPlanHistory) Save(ctx context.Context, plan *model.StoredPlan) error {
	args := m.Called(ctx, plan)
	if args.Error(0) == nil && plan.ID.IsZero() {
		plan.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *MockPlanHistory) Get(ctx context.Context, id string) (*model.StoredPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoredPlan), args.Error(1)
}

func (m *MockPlanHistory) List(ctx context.Context, limit int) ([]model.PlanSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PlanSummary), args.Error(1)
}
