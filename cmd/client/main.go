package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/dollhouse-client/internal/client"
	"github.com/MKhiriev/dollhouse-client/internal/config"
	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/MKhiriev/dollhouse-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log, closer, err := logger.NewClientLogger("dollhouse-client", cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating logger: %v\n", err)
		os.Exit(2)
	}
	defer closer.Close()

	log.Debug().Any("config", cfg).Msg("received configs")

	app, err := client.NewApp(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		closer.Close()
		os.Exit(1)
	}

	if err = app.Run(context.Background()); err != nil {
		if !errors.Is(err, client.ErrLaunchAborted) {
			log.Error().Err(err).Msg("client run error")
		}
		closer.Close()
		os.Exit(1)
	}
}

func printBuildInfo() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
