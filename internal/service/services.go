package service

import (
	"github.com/Harry2k21/house-finder-v1/internal/config"
	"github.com/Harry2k21/house-finder-v1/internal/logger"
	"github.com/Harry2k21/house-finder-v1/internal/store"
)

// Services bundles every application service behind their interfaces so the
// transport layer depends on one value.
type Services struct {
	AuthService       AuthService
	ScrapeService     ScrapeService
	HistoryService    HistoryService
	PreferenceService PreferenceService
	GeocodeService    GeocodeService
	ExpertService     ExpertService
}

// Clients holds the outbound integrations the services orchestrate.
type Clients struct {
	Fetcher  ResultsFetcher
	Geocoder Geocoder
	Expert   ExpertClient
}

func NewServices(storages store.Storages, clients Clients, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, cfg.Auth, logger),
		ScrapeService:     NewScrapeService(clients.Fetcher, storages.HistoryRepository, logger),
		HistoryService:    NewHistoryService(storages.HistoryRepository, logger),
		PreferenceService: NewPreferenceService(storages.PreferenceRepository, logger),
		GeocodeService:    NewGeocodeService(clients.Geocoder, logger),
		ExpertService:     NewExpertService(clients.Expert, logger),
	}
}
