// Package app provides service initialization.
package app

import (
	"github.com/guttosm/truckload-service/config"
	"github.com/guttosm/truckload-service/internal/domain/model"
	"github.com/guttosm/truckload-service/internal/engine"
	"github.com/guttosm/truckload-service/internal/service"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Optimizer *service.LoadOptimizerService
	// Authenticator is nil when authentication is disabled.
	Authenticator service.Authenticator
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.Config) *ServiceComponents {
	eng := engine.New(
		engine.WithMaxBoxSide(cfg.Engine.MaxBoxSide),
		engine.WithSequential(cfg.Engine.Sequential),
	)

	opts := []service.Option{service.WithEngine(eng)}
	if cfg.Engine.TruckWidth > 0 && cfg.Engine.TruckLength > 0 {
		opts = append(opts, service.WithDefaultTruck(model.Truck{
			Width:  cfg.Engine.TruckWidth,
			Length: cfg.Engine.TruckLength,
		}))
	}
	if cfg.Cache.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Cache.Size, cfg.Cache.TTL))
	}

	return &ServiceComponents{
		Optimizer:     service.NewLoadOptimizerService(opts...),
		Authenticator: initializeAuthenticator(cfg.Auth),
	}
}

// initializeAuthenticator returns nil when auth is disabled. The nil
// interface, not a nil *AuthService, is what turns the Auth middleware off.
func initializeAuthenticator(cfg config.AuthConfig) service.Authenticator {
	if !cfg.Enabled {
		return nil
	}

	auth := service.NewAuthService(cfg)
	if !auth.HasAPIKeys() && !auth.HasTokens() {
		log.Warn().Msg("Authentication enabled without API keys or JWT secret; protected routes will reject every request")
	}
	log.Info().
		Bool("api_keys", auth.HasAPIKeys()).
		Bool("bearer_tokens", auth.HasTokens()).
		Msg("Authentication enabled")
	return auth
}
