package main

import (
	"fmt"

	"github.com/medvision-ai/medvision-client/internal/adapter"
	"github.com/medvision-ai/medvision-client/internal/client"
	"github.com/medvision-ai/medvision-client/internal/config"
	"github.com/medvision-ai/medvision-client/internal/logger"
	"github.com/medvision-ai/medvision-client/internal/service"
	"github.com/medvision-ai/medvision-client/internal/store"
	"github.com/medvision-ai/medvision-client/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("medvision-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	authAdapter := adapter.NewHTTPAuthAdapter(cfg.Adapter, log)
	inferenceAdapter := adapter.NewHTTPInferenceAdapter(cfg.Adapter, log)

	services := service.NewClientServices(storages, authAdapter, inferenceAdapter, log)
	ui := tui.New(services, log)

	app, err := client.NewApp(cfg, storages, services, ui, log)
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
