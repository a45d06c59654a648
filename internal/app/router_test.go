//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/guttosm/truckload-service/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeRouter(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		validate func(*testing.T, *RouterComponents)
	}{
		{
			name: "rate limit and idempotency",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:      100,
					RateWindow:     time.Minute,
					RequestTimeout: 5 * time.Second,
					CORSOrigins:    []string{"https://dispatch.example.com"},
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components.Config.RateLimiter)
				assert.NotNil(t, components.Config.Idempotency)
				assert.Equal(t, 5*time.Second, components.Config.RequestTimeout)
				assert.Equal(t, []string{"https://dispatch.example.com"}, components.Config.CORSOrigins)
				assert.True(t, components.Config.Authenticator == nil)
			},
		},
		{
			name: "rate limit disabled",
			cfg:  config.Config{},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.Nil(t, components.Config.RateLimiter)
				assert.NotNil(t, components.Config.Idempotency)
			},
		},
		{
			name: "auth enabled",
			cfg: config.Config{
				Auth: config.AuthConfig{Enabled: true, APIKeys: []string{"test-key"}},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components.Config.Authenticator)
			},
		},
		{
			name: "swagger credentials",
			cfg: config.Config{
				Server: config.ServerConfig{SwaggerUser: "admin", SwaggerPass: "secret"},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.Equal(t, "admin", components.Config.SwaggerUser)
				assert.Equal(t, "secret", components.Config.SwaggerPass)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := InitializeServices(tt.cfg)
			defer services.Optimizer.Stop()

			components := InitializeRouter(services, nil, tt.cfg)
			require.NotNil(t, components)
			defer components.Stop()

			assert.NotNil(t, components.Handler)
			assert.NotNil(t, components.HealthHandler)
			// Without a database there is no audit sink.
			assert.Nil(t, components.Config.AuditLogger)
			tt.validate(t, components)
		})
	}
}

func TestRouterComponents_StopNil(t *testing.T) {
	var components *RouterComponents
	assert.NotPanics(t, components.Stop)
}
