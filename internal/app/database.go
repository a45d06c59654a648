// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/truckload-service/config"
	"github.com/guttosm/truckload-service/internal/circuitbreaker"
	"github.com/guttosm/truckload-service/internal/metrics"
	"github.com/guttosm/truckload-service/internal/repository"
	"github.com/guttosm/truckload-service/internal/service"
	"github.com/rs/zerolog/log"
)

const (
	logsBreakerName  = "mongodb-logs"
	plansBreakerName = "mongodb-plans"
	indexTimeout     = 10 * time.Second
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                  *repository.MongoDB
	LoggingService      service.LoggingService
	PlanHistory         *service.PlanHistoryService
	LogsCircuitBreaker  *circuitbreaker.CircuitBreaker
	PlansCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB connection and creates the
// repositories and services that use it. It returns nil if the database is
// disabled or unreachable; the service then runs without plan history and
// persisted logs.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()
	if cfg.LogsTTL > 0 {
		if err := db.SetLogsTTL(ctx, cfg.LogsTTL); err != nil {
			log.Warn().Err(err).Msg("Failed to set logs TTL index")
		}
	}
	if cfg.PlansTTL > 0 {
		if err := db.SetPlansTTL(ctx, cfg.PlansTTL); err != nil {
			log.Warn().Err(err).Msg("Failed to set plans TTL index")
		}
	}

	logsCB := newCircuitBreaker(logsBreakerName, cfg)
	plansCB := newCircuitBreaker(plansBreakerName, cfg)

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	plansRepo := repository.NewLoadPlansRepositoryWithCircuitBreaker(repository.NewLoadPlansRepository(db), plansCB)

	return &DatabaseComponents{
		DB:                  db,
		LoggingService:      service.NewLoggingService(logsRepo),
		PlanHistory:         service.NewPlanHistoryService(plansRepo),
		LogsCircuitBreaker:  logsCB,
		PlansCircuitBreaker: plansCB,
	}
}

// newCircuitBreaker creates a breaker that reports its state to Prometheus.
func newCircuitBreaker(name string, cfg config.DatabaseConfig) *circuitbreaker.CircuitBreaker {
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		OnStateChange:    onBreakerStateChange,
	})
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return cb
}

func onBreakerStateChange(name string, from, to circuitbreaker.State) {
	metrics.SetCircuitBreakerState(name, int(to))
	log.Warn().
		Str("breaker", name).
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("Circuit breaker state changed")
}

// Close releases the MongoDB connection.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}
