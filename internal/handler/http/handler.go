package http

import (
	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/MKhiriev/dollhouse-client/internal/service"
)

type Handler struct {
	directory service.CityDirectory

	logger *logger.Logger
}

func NewHandler(directory service.CityDirectory, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		directory: directory,
		logger:    logger,
	}
}
