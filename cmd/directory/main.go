package main

import (
	"fmt"

	"github.com/MKhiriev/dollhouse-client/internal/config"
	myHTTP "github.com/MKhiriev/dollhouse-client/internal/handler/http"
	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/MKhiriev/dollhouse-client/internal/server"
	"github.com/MKhiriev/dollhouse-client/internal/service"
	"github.com/MKhiriev/dollhouse-client/internal/validators"
	"github.com/MKhiriev/dollhouse-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("dollhouse-directory")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	directory, err := service.NewFileCityDirectory(cfg.DirectoryServer, validators.NewCityValidator(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating city directory")
	}

	handler := myHTTP.NewHandler(directory, log)

	srv, err := server.NewServer(handler.Init(), cfg.DirectoryServer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
