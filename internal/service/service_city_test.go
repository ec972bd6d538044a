package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/MKhiriev/dollhouse-client/internal/mock"
	"github.com/MKhiriev/dollhouse-client/internal/validators"
	"github.com/MKhiriev/dollhouse-client/models"
)

func TestCityService_ListCities_DropsInvalidEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := mock.NewMockDirectoryAdapter(ctrl)

	directory.EXPECT().ListCities(gomock.Any()).Return([]models.CityListing{
		{Name: "Blazing Falls", Description: "Sunny", Thumbnail: 7, IP: "10.0.0.5", Port: 49100, LoginPort: 49101},
		{Name: "", IP: "10.0.0.6", Port: 49200},
		{Name: "Echo", IP: "10.0.0.7", Port: 49300, LoginPort: 49300},
		{Name: "Alphaville", IP: "alpha.example", Port: 49400},
	}, nil)

	svc := NewCityService(directory, validators.NewCityValidator(), logger.Nop())
	got, err := svc.ListCities(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.CityServerInfo{
		models.NewCityServerInfo("Blazing Falls", "Sunny", 7, "10.0.0.5", 49100),
		models.NewCityServerInfo("Alphaville", "", 0, "alpha.example", 49400),
	}, got)
}

func TestCityService_ListCities_EmptyListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := mock.NewMockDirectoryAdapter(ctrl)
	directory.EXPECT().ListCities(gomock.Any()).Return(nil, nil)

	got, err := NewCityService(directory, validators.NewCityValidator(), logger.Nop()).ListCities(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCityService_ListCities_DirectoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := mock.NewMockDirectoryAdapter(ctrl)
	cause := errors.New("connection refused")
	directory.EXPECT().ListCities(gomock.Any()).Return(nil, cause)

	got, err := NewCityService(directory, validators.NewCityValidator(), logger.Nop()).ListCities(context.Background())

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrFetchingCities)
	assert.ErrorIs(t, err, cause)
}

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewServices(mock.NewMockDirectoryAdapter(ctrl), logger.Nop())

	require.NotNil(t, s)
	assert.NotNil(t, s.CityService)
}
