package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/scholarship-portal/internal/adapter"
	"github.com/MKhiriev/scholarship-portal/internal/config"
	"github.com/MKhiriev/scholarship-portal/internal/handler"
	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/internal/server"
	"github.com/MKhiriev/scholarship-portal/internal/service"
	"github.com/MKhiriev/scholarship-portal/internal/store"
	"github.com/MKhiriev/scholarship-portal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("scholarship-server")
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().EmbedObject(buildInfo).Msg("starting scholarship portal server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}

	log.Debug().
		Str("driver", cfg.Storage.Driver).
		Str("http", cfg.Server.HTTPAddress).
		Str("grpc", cfg.Server.GRPCAddress).
		Strs("origins", cfg.Server.AllowedOrigins).
		Msg("received configs")

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(ctx); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	processor := adapter.NewHTTPPaymentProcessor(cfg.Payment, log)

	services, err := service.NewServices(storages, processor, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

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
