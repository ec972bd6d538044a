package service

import (
	"context"

	"github.com/MKhiriev/dollhouse-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CityService is the launcher side of the city directory: it fetches the
// listing and hands out validated [models.CityServerInfo] values.
type CityService interface {
	ListCities(ctx context.Context) ([]models.CityServerInfo, error)
}

// CityDirectory is the directory server side: it produces the listing served
// on GET /api/cities.
type CityDirectory interface {
	Listings(ctx context.Context) ([]models.CityListing, error)
}
