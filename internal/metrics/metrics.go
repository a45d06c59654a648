// Package metrics provides Prometheus metrics collection for the truckload service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "truckload"

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// OptimizationsTotal counts optimizations by outcome.
	OptimizationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "optimizations_total",
			Help:      "Total number of load optimizations",
		},
		[]string{"status"},
	)

	// OptimizationDuration tracks the wall-clock time of an optimization.
	OptimizationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "optimization_duration_seconds",
			Help:      "Load optimization duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	// StrategyWinsTotal counts how often each ordering strategy produced the chosen layout.
	StrategyWinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "strategy_wins_total",
			Help:      "Number of optimizations won by each ordering strategy",
		},
		[]string{"strategy"},
	)

	// StrategyFailuresTotal counts failed strategy runs.
	StrategyFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "strategy_failures_total",
			Help:      "Number of failed strategy runs",
		},
		[]string{"strategy"},
	)

	// FloorUtilization tracks the floor utilization percentage of produced plans.
	FloorUtilization = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "floor_utilization_percent",
			Help:      "Floor utilization of produced load plans",
			Buckets:   prometheus.LinearBuckets(10, 10, 10),
		},
	)

	// BoxesTotal counts boxes by placement result: floor, stacked or not_placed.
	BoxesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "boxes_total",
			Help:      "Number of requested boxes by placement result",
		},
		[]string{"result"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)

	// PlanHistoryTotal counts plan history writes by result.
	PlanHistoryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plan_history_writes_total",
			Help:      "Number of load plans written to history",
		},
		[]string{"result"},
	)

	// CircuitBreakerState exposes breaker state per name: 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// PlanOutcome is the subset of a load plan recorded after an optimization.
type PlanOutcome struct {
	Strategy    string
	Failed      []string
	Utilization float64
	Floor       int
	Stacked     int
	NotPlaced   int
}

// RecordOptimization records metrics for a finished optimization.
// status is "success", "error", "timeout" or "cached".
func RecordOptimization(duration time.Duration, status string, outcome *PlanOutcome) {
	OptimizationDuration.Observe(duration.Seconds())
	OptimizationsTotal.WithLabelValues(status).Inc()
	if outcome == nil {
		return
	}
	if outcome.Strategy != "" {
		StrategyWinsTotal.WithLabelValues(outcome.Strategy).Inc()
	}
	for _, name := range outcome.Failed {
		StrategyFailuresTotal.WithLabelValues(name).Inc()
	}
	FloorUtilization.Observe(outcome.Utilization)
	BoxesTotal.WithLabelValues("floor").Add(float64(outcome.Floor))
	BoxesTotal.WithLabelValues("stacked").Add(float64(outcome.Stacked))
	BoxesTotal.WithLabelValues("not_placed").Add(float64(outcome.NotPlaced))
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// RecordPlanHistory records the result of a plan history write.
func RecordPlanHistory(result string) {
	PlanHistoryTotal.WithLabelValues(result).Inc()
}

// SetCircuitBreakerState publishes the state of a named circuit breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
