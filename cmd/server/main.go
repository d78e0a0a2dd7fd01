package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-messenger/internal/config"
	handler "github.com/MKhiriev/go-chat-messenger/internal/handler/http"
	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/internal/presence"
	"github.com/MKhiriev/go-chat-messenger/internal/server"
	"github.com/MKhiriev/go-chat-messenger/internal/service"
	"github.com/MKhiriev/go-chat-messenger/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("chat-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(config.Storage{DB: cfg.Storage.DB}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	tracker := newPresenceTracker(cfg.Presence, log)

	services := service.NewServices(storages, tracker, cfg.App, log)
	handlers := handler.NewHandler(services, log)

	srv := server.NewServer(handlers.Init(), cfg.HTTP, log)
	srv.RunServer()
}

// newPresenceTracker prefers Redis when an address is configured and falls
// back to the in-process tracker otherwise.
func newPresenceTracker(cfg config.ServerPresence, log *logger.Logger) presence.Tracker {
	if cfg.RedisAddress == "" {
		log.Info().Msg("presence: using in-memory tracker")
		return presence.NewMemoryTracker(cfg.TTL)
	}

	tracker, err := presence.NewRedisTracker(context.Background(), cfg)
	if err != nil {
		log.Err(err).Msg("presence: redis unavailable, falling back to in-memory tracker")
		return presence.NewMemoryTracker(cfg.TTL)
	}

	log.Info().Str("address", cfg.RedisAddress).Msg("presence: using redis tracker")
	return tracker
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
