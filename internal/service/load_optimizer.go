package service

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/guttosm/truckload-service/internal/domain/model"
	"github.com/guttosm/truckload-service/internal/engine"
	"github.com/guttosm/truckload-service/internal/metrics"
	"github.com/guttosm/truckload-service/internal/service/cache"
	"github.com/rs/zerolog/log"
)

// LoadOptimizer defines the interface for load planning operations.
type LoadOptimizer interface {
	Optimize(ctx context.Context, req model.LoadRequest) (model.LoadPlan, error)
	// DefaultTruck returns the truck used when a request names none.
	DefaultTruck() model.Truck
	// InvalidateCache clears the plan cache.
	InvalidateCache()
}

// Option configures a LoadOptimizerService.
type Option func(*LoadOptimizerService)

// LoadOptimizerService runs the packing engine behind a plan cache.
type LoadOptimizerService struct {
	engine *engine.Engine
	truck  model.Truck
	cache  cache.Cache
}

// NewLoadOptimizerService creates a LoadOptimizerService with the given options.
// Without options it uses a parallel engine, the default truck and no cache.
func NewLoadOptimizerService(opts ...Option) *LoadOptimizerService {
	s := &LoadOptimizerService{
		engine: engine.New(),
		truck:  model.DefaultTruck,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithEngine sets the packing engine.
func WithEngine(e *engine.Engine) Option {
	return func(s *LoadOptimizerService) {
		if e != nil {
			s.engine = e
		}
	}
}

// WithDefaultTruck sets the truck used for requests without one.
func WithDefaultTruck(t model.Truck) Option {
	return func(s *LoadOptimizerService) {
		s.truck = t
	}
}

// WithCache enables plan caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *LoadOptimizerService) {
		if capacity > 0 {
			s.cache = NewShardedCache(capacity, ttl, defaultShards)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *LoadOptimizerService) {
		s.cache = c
	}
}

// DefaultTruck returns the configured default truck.
func (s *LoadOptimizerService) DefaultTruck() model.Truck {
	return s.truck
}

// Optimize computes the load plan for req.
//
// Identical requests are answered from the cache. The engine itself is not
// interruptible; when ctx ends first the caller gets ctx.Err() and the
// result is discarded.
func (s *LoadOptimizerService) Optimize(ctx context.Context, req model.LoadRequest) (model.LoadPlan, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return model.LoadPlan{}, err
	}

	key := Fingerprint(req)
	if s.cache != nil {
		if plan, ok := s.cache.Get(key); ok {
			metrics.RecordOptimization(time.Since(start), "cached", nil)
			return plan, nil
		}
	}

	type result struct {
		plan model.LoadPlan
		err  error
	}
	done := make(chan result, 1)
	go func() {
		plan, err := s.engine.Optimize(req)
		done <- result{plan, err}
	}()

	select {
	case <-ctx.Done():
		metrics.RecordOptimization(time.Since(start), "timeout", nil)
		log.Warn().
			Str("fingerprint", FingerprintString(key)).
			Int("requested", req.TotalRequested()).
			Err(ctx.Err()).
			Msg("optimization abandoned")
		return model.LoadPlan{}, ctx.Err()
	case r := <-done:
		duration := time.Since(start)
		if r.err != nil {
			metrics.RecordOptimization(duration, "error", nil)
			logOptimizationError(r.err, key)
			return model.LoadPlan{}, r.err
		}
		metrics.RecordOptimization(duration, "success", outcomeOf(r.plan))
		log.Debug().
			Str("fingerprint", FingerprintString(key)).
			Str("strategy", r.plan.Strategy).
			Float64("utilization", r.plan.Stats.UtilizationPercent).
			Int("placed", r.plan.Stats.TotalPlaced).
			Int("not_placed", r.plan.Stats.NotPlaced).
			Dur("duration", duration).
			Msg("load plan computed")
		if s.cache != nil {
			s.cache.Set(key, r.plan)
		}
		return r.plan, nil
	}
}

// InvalidateCache clears the plan cache.
func (s *LoadOptimizerService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// Stop releases the cache's background resources.
func (s *LoadOptimizerService) Stop() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

func logOptimizationError(err error, key uint64) {
	event := log.Error()
	if errors.Is(err, engine.ErrInvalidTruckDimensions) || errors.Is(err, engine.ErrNegativeCount) {
		event = log.Debug()
	}
	event.Err(err).Str("fingerprint", FingerprintString(key)).Msg("optimization failed")
}

func outcomeOf(plan model.LoadPlan) *metrics.PlanOutcome {
	outcome := &metrics.PlanOutcome{
		Strategy:    plan.Strategy,
		Utilization: plan.Stats.UtilizationPercent,
		Floor:       plan.Stats.FloorCount,
		Stacked:     plan.Stats.StackedCount,
		NotPlaced:   plan.Stats.NotPlaced,
	}
	for _, so := range plan.Strategies {
		if so.Failed {
			outcome.Failed = append(outcome.Failed, so.Name)
		}
	}
	return outcome
}

// Fingerprint hashes everything in req that shows up in the plan, display
// names included.
func Fingerprint(req model.LoadRequest) uint64 {
	d := xxhash.New()
	writeFloat(d, req.Truck.Width)
	writeFloat(d, req.Truck.Length)
	for _, l := range req.Lines {
		_, _ = d.WriteString(l.BoxTypeID)
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(l.Name)
		_, _ = d.Write([]byte{0})
		writeFloat(d, l.Width)
		writeFloat(d, l.Length)
		if l.Stackable {
			_, _ = d.Write([]byte{1})
		} else {
			_, _ = d.Write([]byte{0})
		}
		_, _ = d.WriteString(strconv.Itoa(l.Count))
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

// FingerprintString formats a fingerprint as 16 hex digits.
func FingerprintString(key uint64) string {
	return fmt.Sprintf("%016x", key)
}

func writeFloat(d *xxhash.Digest, f float64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
	_, _ = d.Write(b[:])
}
