// Package cache declares the plan cache contract shared by the service layer.
package cache

import "github.com/guttosm/truckload-service/internal/domain/model"

// Cache stores load plans by request fingerprint.
// Stored plans are shared between callers and must be treated as read-only.
type Cache interface {
	Get(key uint64) (model.LoadPlan, bool)
	Set(key uint64, value model.LoadPlan)
	Invalidate(key uint64)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
