package service

import (
	"context"
	"time"

	"github.com/guttosm/truckload-service/internal/domain/model"
	"github.com/guttosm/truckload-service/internal/repository"
)

// LoggingService records and reads the audit trail.
type LoggingService interface {
	// Record stamps and stores entries. Nil entries are skipped.
	Record(ctx context.Context, entries ...*model.LogEntry) error
	// Query returns matching entries, newest first.
	Query(ctx context.Context, q model.LogQuery) ([]model.LogEntry, error)
	// Count returns the number of matching entries.
	Count(ctx context.Context, q model.LogQuery) (int64, error)
}

type loggingService struct {
	repo repository.LogsRepositoryInterface
	now  func() time.Time
}

// NewLoggingService creates a LoggingService backed by repo.
func NewLoggingService(repo repository.LogsRepositoryInterface) LoggingService {
	return &loggingService{repo: repo, now: time.Now}
}

func (s *loggingService) Record(ctx context.Context, entries ...*model.LogEntry) error {
	batch := make([]*model.LogEntry, 0, len(entries))
	now := s.now()
	for _, e := range entries {
		if e == nil {
			continue
		}
		e.Stamp(now)
		batch = append(batch, e)
	}
	if len(batch) == 0 {
		return nil
	}
	return s.repo.Insert(ctx, batch)
}

func (s *loggingService) Query(ctx context.Context, q model.LogQuery) ([]model.LogEntry, error) {
	q, err := q.Normalized()
	if err != nil {
		return nil, err
	}
	return s.repo.Find(ctx, q)
}

func (s *loggingService) Count(ctx context.Context, q model.LogQuery) (int64, error) {
	q, err := q.Normalized()
	if err != nil {
		return 0, err
	}
	return s.repo.Count(ctx, q)
}
