// Package main is the entry point for the truckload-service application.
//
// @title           Truckload Service API
// @version         1.0.0
// @description     API for planning the floor layout of American and European boxes in a truck.
//
//	The service runs several placement strategies, stacks same-type boxes and returns the best plan.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/truckload-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT bearer token: "Bearer <token>". Accepted when a JWT secret is configured.
//
// @tag.name        Load plans
// @tag.description Load plan optimization and history
//
// @tag.name        Audit
// @tag.description Audit trail of domain actions
//
// @tag.name        Catalog
// @tag.description Box types and the default truck
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"os"

	_ "github.com/guttosm/truckload-service/docs" // swagger docs

	"github.com/guttosm/truckload-service/config"
	"github.com/guttosm/truckload-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		fileCfg, err := config.LoadFile(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("Failed to load config file")
		}
		cfg = fileCfg
	}

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server.Port)
	server.RegisterOnShutdown(application.Close)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
