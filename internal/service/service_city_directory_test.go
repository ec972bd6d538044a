// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/dollhouse-client/internal/config"
	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/MKhiriev/dollhouse-client/internal/validators"
	"github.com/MKhiriev/dollhouse-client/models"
)

func newFileDirectory(t *testing.T, body string) CityDirectory {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cities.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	d, err := NewFileCityDirectory(config.DirectoryServer{CitiesFile: path}, validators.NewCityValidator(), logger.Nop())
	require.NoError(t, err)
	return d
}

func TestNewFileCityDirectory_NoFile(t *testing.T) {
	d, err := NewFileCityDirectory(config.DirectoryServer{}, validators.NewCityValidator(), logger.Nop())

	assert.Nil(t, d)
	assert.ErrorIs(t, err, ErrCitiesFileNotSpecified)
}

func TestFileCityDirectory_Listings(t *testing.T) {
	d := newFileDirectory(t, `[
		{"name":"Blazing Falls","ip":"10.0.0.5","port":49100,"login_port":49101},
		{"name":"Broken","ip":"10.0.0.6","port":0}
	]`)

	got, err := d.Listings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.CityListing{
		{Name: "Blazing Falls", IP: "10.0.0.5", Port: 49100, LoginPort: 49101},
	}, got)
}

func TestFileCityDirectory_RereadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o600))

	d, err := NewFileCityDirectory(config.DirectoryServer{CitiesFile: path}, validators.NewCityValidator(), logger.Nop())
	require.NoError(t, err)

	got, err := d.Listings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"Alphaville","ip":"10.0.0.1","port":49000}]`), 0o600))

	got, err = d.Listings(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestFileCityDirectory_Errors(t *testing.T) {
	d := newFileDirectory(t, `{"name":`)
	_, err := d.Listings(context.Background())
	assert.ErrorIs(t, err, ErrDecodingCitiesFile)

	missing, err := NewFileCityDirectory(
		config.DirectoryServer{CitiesFile: filepath.Join(t.TempDir(), "missing.json")},
		validators.NewCityValidator(),
		logger.Nop(),
	)
	require.NoError(t, err)

	_, err = missing.Listings(context.Background())
	assert.ErrorIs(t, err, ErrReadingCitiesFile)
}
