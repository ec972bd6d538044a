// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the launcher to talk to the
// city directory (login service).
//
// The primary abstraction is [DirectoryAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPDirectoryAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/dollhouse-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/directory_adapter_mock.go -package=mock

// DirectoryAdapter fetches the raw city listing. Entries are returned as sent
// by the directory; validation is left to the caller.
type DirectoryAdapter interface {
	ListCities(ctx context.Context) ([]models.CityListing, error)
}
