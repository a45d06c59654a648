package repository

import (
	"context"
	"errors"

	"github.com/guttosm/truckload-service/internal/circuitbreaker"
	"github.com/guttosm/truckload-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoadPlansRepositoryWithCircuitBreaker guards a plan repository with a
// circuit breaker. ErrPlanNotFound does not count as a failure.
type LoadPlansRepositoryWithCircuitBreaker struct {
	repo           LoadPlansRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLoadPlansRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLoadPlansRepositoryWithCircuitBreaker(repo LoadPlansRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LoadPlansRepositoryWithCircuitBreaker {
	return &LoadPlansRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// Create stores a plan. An open circuit is reported as ErrCircuitOpen.
func (r *LoadPlansRepositoryWithCircuitBreaker) Create(ctx context.Context, plan *model.StoredPlan) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, plan)
	})
}

// FindByID loads a plan by id.
func (r *LoadPlansRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*model.StoredPlan, error) {
	var notFound bool
	plan, err := circuitbreaker.Do(ctx, r.circuitBreaker, func() (*model.StoredPlan, error) {
		p, err := r.repo.FindByID(ctx, id)
		if errors.Is(err, ErrPlanNotFound) {
			notFound = true
			return nil, nil
		}
		return p, err
	})
	if notFound {
		return nil, ErrPlanNotFound
	}
	return plan, err
}

// List returns the most recent plans.
func (r *LoadPlansRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]model.StoredPlan, error) {
	return circuitbreaker.Do(ctx, r.circuitBreaker, func() ([]model.StoredPlan, error) {
		return r.repo.List(ctx, limit)
	})
}

// Count returns the number of stored plans.
func (r *LoadPlansRepositoryWithCircuitBreaker) Count(ctx context.Context) (int64, error) {
	return circuitbreaker.Do(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.Count(ctx)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LoadPlansRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps a logs repository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// Insert stores entries. While the circuit is open entries are dropped
// without an error; the audit trail must not fail requests.
func (r *LogsRepositoryWithCircuitBreaker) Insert(ctx context.Context, entries []*model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Insert(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Find retrieves entries.
func (r *LogsRepositoryWithCircuitBreaker) Find(ctx context.Context, q model.LogQuery) ([]model.LogEntry, error) {
	return circuitbreaker.Do(ctx, r.circuitBreaker, func() ([]model.LogEntry, error) {
		return r.repo.Find(ctx, q)
	})
}

// Count returns the number of matching entries.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, q model.LogQuery) (int64, error) {
	return circuitbreaker.Do(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.Count(ctx, q)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
