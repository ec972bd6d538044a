// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/dollhouse-client/internal/app"
	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/MKhiriev/dollhouse-client/internal/utils"
	"github.com/MKhiriev/dollhouse-client/models"
)

// listCities serves GET /api/cities. An empty directory is an empty JSON
// array, never null.
func (h *Handler) listCities(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	cities, err := h.directory.Listings(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCities").Msg("error listing cities")
		utils.WriteError(w, app.MsgCityDirectoryUnavailable, statusFromError(err))
		return
	}

	if cities == nil {
		cities = []models.CityListing{}
	}

	if _, err = utils.WriteJSON(w, cities, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listCities").Msg("error writing city listing")
	}
}
