package main

import (
	"fmt"
	"net/http"

	"github.com/medvision-ai/medvision-client/internal/config"
	"github.com/medvision-ai/medvision-client/internal/devserver"
	"github.com/medvision-ai/medvision-client/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("medvision-devserver")
	cfg, err := config.GetDevServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	handler := devserver.NewHandler(cfg, log)

	log.Info().Str("address", cfg.HTTPAddress).Msg("devserver listening")
	if err := http.ListenAndServe(cfg.HTTPAddress, handler.Init()); err != nil {
		log.Fatal().Err(err).Msg("devserver stopped")
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
