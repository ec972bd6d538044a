// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/dollhouse-client/internal/config"
	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/MKhiriev/dollhouse-client/internal/utils"
	"github.com/MKhiriev/dollhouse-client/models"
)

func newTestAdapter(t *testing.T, serverURL string) DirectoryAdapter {
	t.Helper()

	a, err := NewHTTPDirectoryAdapter(config.Directory{URL: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestListCities_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/cities", r.URL.Path)
		assert.Equal(t, "trace-1", r.Header.Get("X-Trace-ID"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name":"Blazing Falls","description":"Sunny","thumbnail":7,"ip":"10.0.0.5","port":49100,"login_port":49101},
			{"name":"Alphaville","description":"","thumbnail":0,"ip":"10.0.0.6","port":49200}
		]`))
	}))
	defer srv.Close()

	ctx := utils.WithTraceID(context.Background(), "trace-1")
	got, err := newTestAdapter(t, srv.URL).ListCities(ctx)

	require.NoError(t, err)
	assert.Equal(t, []models.CityListing{
		{Name: "Blazing Falls", Description: "Sunny", Thumbnail: 7, IP: "10.0.0.5", Port: 49100, LoginPort: 49101},
		{Name: "Alphaville", IP: "10.0.0.6", Port: 49200},
	}, got)
}

func TestListCities_StatusErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":"bad filter"}`, wantErr: ErrBadRequest, wantMsg: "bad filter"},
		{name: "not found", status: http.StatusNotFound, body: "no such route", wantErr: ErrNotFound, wantMsg: "no such route"},
		{name: "internal", status: http.StatusInternalServerError, body: `{"error":"cities file unreadable"}`, wantErr: ErrInternalServerError, wantMsg: "cities file unreadable"},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantErr: ErrServiceUnavailable},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := newTestAdapter(t, srv.URL).ListCities(context.Background())

			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestListCities_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListCities(context.Background())

	require.Error(t, err)
	assert.Equal(t, "http 418: I'm a teapot", err.Error())
}

func TestListCities_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"cities":`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListCities(context.Background())

	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "decode city listing"))
}

func TestListCities_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).ListCities(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "list cities request")
}

func TestNewHTTPDirectoryAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPDirectoryAdapter(config.Directory{URL: "  "}, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid directory address")
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "127.0.0.1:8080", want: "http://127.0.0.1:8080"},
		{in: "https://dir.example/", want: "https://dir.example"},
		{in: " http://dir.example:9000 ", want: "http://dir.example:9000"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
