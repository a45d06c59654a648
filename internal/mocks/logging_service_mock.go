// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/truckload-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

// MockLoggingService is a testify mock of service.LoggingService. Record
// receives the entries as one []*model.LogEntry argument.
type MockLoggingService struct {
	mock.Mock
}

func (m *MockLoggingService) Record(ctx context.Context, entries ...*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLoggingService) Query(ctx context.Context, q model.LogQuery) ([]model.LogEntry, error) {
	args := m.Called(ctx, q)
	entries, _ := args.Get(0).([]model.LogEntry)
	return entries, args.Error(1)
}

func (m *MockLoggingService) Count(ctx context.Context, q model.LogQuery) (int64, error) {
	args := m.Called(ctx, q)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}
