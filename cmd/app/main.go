// @title Organise API
// @version 1.0
// @description Todos, notes and calendar events backed by MongoDB, with Google Calendar sync.
// @BasePath /
package main

import (
	"context"
	"organise/config"
	"organise/di"
	"organise/shared/logger"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	closeTimeout = 10 * time.Second
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	app := di.InitializeService()

	serveErr := app.HTTP.Serve()

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)

	if err := app.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to release connections")
	}

	cancel()

	if serveErr != nil {
		log.Fatal().Err(serveErr).Msg("HTTP server stopped")
	}
}
