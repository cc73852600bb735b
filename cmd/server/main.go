package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/jobseekr/go-job-board/internal/adapter"
	"github.com/jobseekr/go-job-board/internal/config"
	"github.com/jobseekr/go-job-board/internal/crypto"
	handler "github.com/jobseekr/go-job-board/internal/handler/http"
	"github.com/jobseekr/go-job-board/internal/logger"
	"github.com/jobseekr/go-job-board/internal/server"
	"github.com/jobseekr/go-job-board/internal/service"
	"github.com/jobseekr/go-job-board/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// .env is optional, environment variables win either way
	_ = godotenv.Load()

	log := logger.NewLogger("job-board-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	repositories, err := store.NewRepositories(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}

	geocoder := adapter.NewHTTPGeocoder(cfg.Geocoder, log)
	mailer := adapter.NewSMTPMailer(cfg.Mail, log)
	tokens := crypto.NewTokenCodec(cfg.App)

	services := service.NewServices(repositories, geocoder, mailer, tokens, cfg, log)
	handlers := handler.NewHandler(services, cfg.App, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
