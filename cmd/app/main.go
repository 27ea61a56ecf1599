package main

import (
	"todoapi/config"
	"todoapi/di"
	"todoapi/helper"
	"todoapi/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Todo API
// @version 1.0
// @description Task items and the users who own them.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
