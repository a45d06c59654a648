package service

import (
	"context"
	"errors"

	"github.com/guttosm/truckload-service/internal/domain/model"
	"github.com/guttosm/truckload-service/internal/metrics"
	"github.com/guttosm/truckload-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrHistoryDisabled is returned when plan history has no repository.
var ErrHistoryDisabled = errors.New("plan history is disabled")

// ErrPlanNotFound is returned for unknown or malformed plan ids.
var ErrPlanNotFound = repository.ErrPlanNotFound

// DefaultHistoryLimit is used by List when the caller passes no limit.
const DefaultHistoryLimit = 20

// PlanHistory keeps computed plans for later retrieval.
type PlanHistory interface {
	Enabled() bool
	Save(ctx context.Context, plan *model.StoredPlan) error
	Get(ctx context.Context, id string) (*model.StoredPlan, error)
	List(ctx context.Context, limit int) ([]model.PlanSummary, error)
}

// PlanHistoryService implements PlanHistory on top of a plan repository.
// A nil repository disables it.
type PlanHistoryService struct {
	repo repository.LoadPlansRepositoryInterface
}

// NewPlanHistoryService creates a plan history service.
func NewPlanHistoryService(repo repository.LoadPlansRepositoryInterface) *PlanHistoryService {
	return &PlanHistoryService{repo: repo}
}

// Enabled reports whether plans are persisted.
func (s *PlanHistoryService) Enabled() bool {
	return s != nil && s.repo != nil
}

// Save stores plan and sets its id.
func (s *PlanHistoryService) Save(ctx context.Context, plan *model.StoredPlan) error {
	if s.repo == nil {
		metrics.RecordPlanHistory("skipped")
		return ErrHistoryDisabled
	}
	if err := s.repo.Create(ctx, plan); err != nil {
		metrics.RecordPlanHistory("failed")
		return err
	}
	metrics.RecordPlanHistory("saved")
	return nil
}

// Get loads a plan by its hex id.
func (s *PlanHistoryService) Get(ctx context.Context, id string) (*model.StoredPlan, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrPlanNotFound
	}
	return s.repo.FindByID(ctx, oid)
}

// List returns summaries of the most recent plans.
func (s *PlanHistoryService) List(ctx context.Context, limit int) ([]model.PlanSummary, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	plans, err := s.repo.List(ctx, min(limit, repository.MaxListLimit))
	if err != nil {
		return nil, err
	}
	summaries := make([]model.PlanSummary, len(plans))
	for i, p := range plans {
		summaries[i] = p.Summary()
	}
	return summaries, nil
}
