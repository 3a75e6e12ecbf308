package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-clip-relay/internal/client"
	"github.com/MKhiriev/go-clip-relay/internal/config"
	"github.com/MKhiriev/go-clip-relay/internal/logger"
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
		fmt.Fprintln(os.Stderr, line)
	}

	log := logger.NewClientLogger("clip-device")
	cfg, err := config.GetDeviceConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if build.Known() && cfg.Version == "dev" {
		cfg.Version = build.BuildVersion()
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	app, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init device app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("device run error")
	}
}
