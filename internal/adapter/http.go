package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/dollhouse-client/internal/config"
	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/MKhiriev/dollhouse-client/internal/utils"
	"github.com/MKhiriev/dollhouse-client/models"
)

const citiesPath = "/api/cities"

type httpDirectoryAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPDirectoryAdapter constructs an HTTP/REST implementation of
// [DirectoryAdapter]. The base URL from cfg.URL is normalised; a bare
// host:port gets the http scheme.
//
// Returns an error if cfg.URL is empty or cannot be parsed as a valid URL.
func NewHTTPDirectoryAdapter(cfg config.Directory, log *logger.Logger) (DirectoryAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid directory address: %w", err)
	}

	return &httpDirectoryAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListCities implements [DirectoryAdapter] with GET /api/cities.
func (h *httpDirectoryAdapter) ListCities(ctx context.Context) ([]models.CityListing, error) {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader("X-Trace-ID", traceID)
	}

	resp, err := req.Get(citiesPath)
	if err != nil {
		return nil, fmt.Errorf("list cities request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Int("status", resp.StatusCode()).Err(err).Msg("directory rejected city listing")
		return nil, err
	}

	var cities []models.CityListing
	if err = json.Unmarshal(resp.Body(), &cities); err != nil {
		return nil, fmt.Errorf("decode city listing: %w", err)
	}

	return cities, nil
}
