package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/system-sage/internal/adapter"
	"github.com/MKhiriev/system-sage/internal/client"
	"github.com/MKhiriev/system-sage/internal/config"
	"github.com/MKhiriev/system-sage/internal/logger"
	"github.com/MKhiriev/system-sage/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewCLILogger(client.Name).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewCLILogger(client.Name, cfg.App.LogLevel)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	app := client.NewApp(ctx, cfg, adapter.NewHTTPServerAdapter, buildInfo, os.Stdout, os.Stderr, log)
	if err = app.Run(os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}
