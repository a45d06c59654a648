// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/truckload-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockLoadPlansRepository is a testify mock of repository.LoadPlansRepositoryInterface.
type MockLoadPlansRepository struct {
	mock.Mock
}

func (m *MockLoadPlansRepository) Create(ctx context.Context, plan *model.StoredPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockLoadPlansRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.StoredPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoredPlan), args.Error(1)
}

func (m *MockLoadPlansRepository) List(ctx context.Context, limit int) ([]model.StoredPlan, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StoredPlan), args.Error(1)
}

func (m *MockLoadPlansRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}
