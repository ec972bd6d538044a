package service

import "errors"

var (
	ErrCitiesFileNotSpecified = errors.New("cities file is not specified")
	ErrReadingCitiesFile      = errors.New("error reading cities file")
	ErrDecodingCitiesFile     = errors.New("error decoding cities file")
	ErrFetchingCities         = errors.New("error fetching city listing")
)
