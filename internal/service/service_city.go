// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dollhouse-client/internal/adapter"
	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/MKhiriev/dollhouse-client/internal/validators"
	"github.com/MKhiriev/dollhouse-client/models"
)

type cityService struct {
	directory adapter.DirectoryAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewCityService(directory adapter.DirectoryAdapter, validator validators.Validator, logger *logger.Logger) CityService {
	return &cityService{
		directory: directory,
		validator: validator,
		logger:    logger,
	}
}

// ListCities drops entries that fail validation and keeps the directory order
// for the rest.
func (s *cityService) ListCities(ctx context.Context) ([]models.CityServerInfo, error) {
	log := logger.FromContext(ctx)

	listings, err := s.directory.ListCities(ctx)
	if err != nil {
		log.Err(err).Str("func", "*cityService.ListCities").Msg("error fetching cities from directory")
		return nil, fmt.Errorf("%w: %w", ErrFetchingCities, err)
	}

	cities := make([]models.CityServerInfo, 0, len(listings))
	for i, listing := range listings {
		if err = s.validator.Validate(ctx, listing); err != nil {
			log.Warn().Err(err).
				Int("index", i).
				Str("city", listing.Name).
				Msg("skipping invalid city listing")
			continue
		}
		cities = append(cities, listing.CityServerInfo())
	}

	return cities, nil
}
