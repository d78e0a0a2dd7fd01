package main

import (
	"fmt"

	"github.com/MKhiriev/go-chat-messenger/internal/adapter"
	"github.com/MKhiriev/go-chat-messenger/internal/client"
	"github.com/MKhiriev/go-chat-messenger/internal/config"
	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/internal/service"
	"github.com/MKhiriev/go-chat-messenger/internal/store"
	"github.com/MKhiriev/go-chat-messenger/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("chat-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	sessions, err := store.NewSessionStore(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local session store")
	}

	services := service.NewClientServices(serverAdapter, sessions, cfg.Sync, log)

	ui, err := tui.New(services, cfg.Sync, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
