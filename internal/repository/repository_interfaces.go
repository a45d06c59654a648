package repository

import (
	"context"

	"github.com/guttosm/truckload-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoadPlansRepositoryInterface defines the interface for plan history storage.
type LoadPlansRepositoryInterface interface {
	Create(ctx context.Context, plan *model.StoredPlan) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.StoredPlan, error)
	List(ctx context.Context, limit int) ([]model.StoredPlan, error)
	Count(ctx context.Context) (int64, error)
}

// LogsRepositoryInterface defines the interface for audit trail storage.
type LogsRepositoryInterface interface {
	Insert(ctx context.Context, entries []*model.LogEntry) error
	Find(ctx context.Context, q model.LogQuery) ([]model.LogEntry, error)
	Count(ctx context.Context, q model.LogQuery) (int64, error)
}

var (
	_ LoadPlansRepositoryInterface = (*LoadPlansRepository)(nil)
	_ LoadPlansRepositoryInterface = (*LoadPlansRepositoryWithCircuitBreaker)(nil)
	_ LogsRepositoryInterface      = (*LogsRepository)(nil)
	_ LogsRepositoryInterface      = (*LogsRepositoryWithCircuitBreaker)(nil)
)
