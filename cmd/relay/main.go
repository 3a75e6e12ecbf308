package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-clip-relay/internal/config"
	"github.com/MKhiriev/go-clip-relay/internal/handler"
	"github.com/MKhiriev/go-clip-relay/internal/logger"
	"github.com/MKhiriev/go-clip-relay/internal/server"
	"github.com/MKhiriev/go-clip-relay/internal/service"
	"github.com/MKhiriev/go-clip-relay/internal/store"
	"github.com/MKhiriev/go-clip-relay/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	for _, line := range build.Lines() {
		fmt.Fprintln(os.Stdout, line)
	}

	log := logger.NewLogger("clip-relay")
	cfg, err := config.GetRelayConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if build.Known() && cfg.Version == "dev" {
		cfg.Version = build.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewStorages()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err = srv.RunServer(ctx); err != nil {
		log.Fatal().Err(err).Msg("relay stopped with error")
	}
}
