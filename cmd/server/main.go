package main

import (
	"context"
	"fmt"

	"github.com/Harry2k21/house-finder-v1/internal/adapter"
	"github.com/Harry2k21/house-finder-v1/internal/config"
	myHTTP "github.com/Harry2k21/house-finder-v1/internal/handler/http"
	"github.com/Harry2k21/house-finder-v1/internal/logger"
	"github.com/Harry2k21/house-finder-v1/internal/scraper"
	"github.com/Harry2k21/house-finder-v1/internal/server"
	"github.com/Harry2k21/house-finder-v1/internal/service"
	"github.com/Harry2k21/house-finder-v1/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("house-finder-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	clients := service.Clients{
		Fetcher:  scraper.New(cfg.Scraper, log),
		Geocoder: adapter.NewGeocoder(cfg.Geocoder, log),
		Expert:   adapter.NewExpert(cfg.Expert, log),
	}

	services := service.NewServices(*storages, clients, *cfg, log)
	handler := myHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
