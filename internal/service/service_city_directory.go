package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/dollhouse-client/internal/config"
	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/MKhiriev/dollhouse-client/internal/validators"
	"github.com/MKhiriev/dollhouse-client/models"
)

type fileCityDirectory struct {
	path      string
	validator validators.Validator

	logger *logger.Logger
}

// NewFileCityDirectory serves the listing kept in cfg.CitiesFile. The file is
// re-read on every call so edits show up without a restart.
func NewFileCityDirectory(cfg config.DirectoryServer, validator validators.Validator, logger *logger.Logger) (CityDirectory, error) {
	if cfg.CitiesFile == "" {
		return nil, ErrCitiesFileNotSpecified
	}

	return &fileCityDirectory{
		path:      cfg.CitiesFile,
		validator: validator,
		logger:    logger,
	}, nil
}

func (d *fileCityDirectory) Listings(ctx context.Context) ([]models.CityListing, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(d.path)
	if err != nil {
		log.Err(err).Str("func", "*fileCityDirectory.Listings").Str("path", d.path).Msg("error reading cities file")
		return nil, fmt.Errorf("%w: %w", ErrReadingCitiesFile, err)
	}

	var listings []models.CityListing
	if err = json.Unmarshal(data, &listings); err != nil {
		log.Err(err).Str("func", "*fileCityDirectory.Listings").Str("path", d.path).Msg("error decoding cities file")
		return nil, fmt.Errorf("%w: %w", ErrDecodingCitiesFile, err)
	}

	valid := make([]models.CityListing, 0, len(listings))
	for i, listing := range listings {
		if err = d.validator.Validate(ctx, listing); err != nil {
			log.Warn().Err(err).Int("index", i).Str("city", listing.Name).Msg("cities file entry rejected")
			continue
		}
		valid = append(valid, listing)
	}

	return valid, nil
}
