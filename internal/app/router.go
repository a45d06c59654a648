// Package app provides router configuration.
package app

import (
	"github.com/guttosm/truckload-service/config"
	"github.com/guttosm/truckload-service/internal/http"
	"github.com/guttosm/truckload-service/internal/middleware"
)

// RouterComponents holds router-related components. The middleware state
// (limiter, idempotency store, audit logger) must be stopped on shutdown.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
// dbComponents may be nil.
func InitializeRouter(services *ServiceComponents, dbComponents *DatabaseComponents, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler()
	opts := make([]http.HandlerOption, 0, 3)

	var audit *middleware.AsyncLogger
	if dbComponents != nil {
		audit = middleware.NewAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
		opts = append(opts,
			http.WithPlanHistory(dbComponents.PlanHistory),
			http.WithAuditLogger(audit),
			http.WithAuditTrail(dbComponents.LoggingService),
		)

		healthHandler.AddChecker("mongodb", dbComponents.DB)
		healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		healthHandler.RegisterCircuitBreaker("mongodb_plans", dbComponents.PlansCircuitBreaker)
	}

	routerCfg := http.RouterConfig{
		RequestTimeout: cfg.Server.RequestTimeout,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		Authenticator:  services.Authenticator,
		AuditLogger:    audit,
		Idempotency:    middleware.NewIdempotencyStore(middleware.IdempotencyKeyTTL, middleware.DefaultIdempotencyMaxEntries),
	}
	if cfg.Server.RateLimit > 0 {
		routerCfg.RateLimiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	}

	return &RouterComponents{
		Handler:       http.NewHandler(services.Optimizer, opts...),
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}

// Stop stops the background work of the router middleware. The audit logger
// is stopped last so entries logged by in-flight requests are flushed.
func (r *RouterComponents) Stop() {
	if r == nil {
		return
	}
	if r.Config.RateLimiter != nil {
		r.Config.RateLimiter.Stop()
	}
	if r.Config.Idempotency != nil {
		r.Config.Idempotency.Stop()
	}
	r.Config.AuditLogger.Stop()
}
