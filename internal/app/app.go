// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/truckload-service/config"
	"github.com/guttosm/truckload-service/internal/http"
	"github.com/rs/zerolog/log"
)

// App is the wired application: the router and everything that has to be
// released when the server stops.
type App struct {
	Router   *gin.Engine
	services *ServiceComponents
	database *DatabaseComponents
	routing  *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *App {
	InitializeLogger(cfg.Log)

	services := InitializeServices(cfg)
	database := InitializeDatabase(cfg.Database)
	routing := InitializeRouter(services, database, cfg)

	return &App{
		Router:   http.NewRouter(routing.Handler, routing.HealthHandler, routing.Config),
		services: services,
		database: database,
		routing:  routing,
	}
}

// Close stops background workers, flushes pending audit entries and closes
// the database connection. It is meant to run after the HTTP server stopped.
func (a *App) Close(ctx context.Context) error {
	a.routing.Stop()
	a.services.Optimizer.Stop()

	if err := a.database.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to close MongoDB connection")
		return err
	}
	return nil
}
