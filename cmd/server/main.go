package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/weatherdesk/server/internal/api"
	"github.com/weatherdesk/server/internal/config"
	"github.com/weatherdesk/server/internal/storage"
	"github.com/weatherdesk/server/internal/storage/cache"
	"github.com/weatherdesk/server/internal/storage/memory"
	"github.com/weatherdesk/server/internal/storage/postgres"
	"github.com/weatherdesk/server/internal/weather"
)

func main() {
	// Set up zerolog to use pretty printing
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})
	log.Info().Msg("starting up...")

	// Load the application configuration
	log.Info().Msg("loading configuration...")
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load the configuration")
	}
	if cfg.IsEnvProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Initialize the storage driver.
	// Without a configured PostgreSQL DSN the volatile in-memory driver is used instead.
	var driver storage.Driver
	if cfg.PostgresDSN != "" {
		log.Info().Msg("initializing database connection...")
		pg := postgres.New(cfg.PostgresDSN)
		if err := pg.Initialize(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("could not initialize the database connection")
		}
		driver = cache.New(pg)
	} else {
		log.Warn().Msg("no PostgreSQL DSN configured; records are stored in memory and lost on shutdown")
		driver = memory.New()
	}
	if err := driver.Initialize(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("could not initialize the storage driver")
	}
	defer driver.Close()

	// Create the weather provider gateway
	providerClient := weather.New(cfg.OpenWeatherBaseURL, cfg.OpenWeatherAPIKey, cfg.ProviderTimeout)

	// Start up the API
	log.Info().Str("address", cfg.ListenAddress).Msg("starting up the API...")
	apiService := &api.Service{
		Config:  cfg,
		Storage: driver,
		Weather: providerClient,
	}
	apiErrs := make(chan error, 1)
	go func() {
		if err := apiService.Startup(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			apiErrs <- err
		}
	}()
	go func() {
		err := <-apiErrs
		log.Fatal().Err(err).Msg("the API service raised an unexpected error")
	}()
	defer func() {
		log.Info().Msg("shutting down the API...")
		apiService.Shutdown()
	}()

	log.Info().Msg("done!")
	defer log.Info().Msg("shutting down...")

	// Wait for the application to be terminated
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)
	<-shutdown
}
