package service

import (
	"github.com/MKhiriev/dollhouse-client/internal/adapter"
	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/MKhiriev/dollhouse-client/internal/validators"
)

// Services groups the launcher's network-facing services.
type Services struct {
	CityService CityService
}

func NewServices(directory adapter.DirectoryAdapter, logger *logger.Logger) *Services {
	return &Services{
		CityService: NewCityService(directory, validators.NewCityValidator(), logger),
	}
}
