// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"

	"github.com/MKhiriev/dollhouse-client/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const maxDescriptionWidth = 40

// RenderCityTable lays out the city list as a bordered table.
func RenderCityTable(cities []models.CityServerInfo) string {
	if len(cities) == 0 {
		return renderPage("CITIES", "", "")
	}

	rows := make([][]string, 0, len(cities))
	for _, c := range cities {
		rows = append(rows, []string{
			valueOrNA(c.Name()),
			fitText(valueOrNA(c.Description()), maxDescriptionWidth),
			c.Address(),
			strconv.FormatUint(c.Thumbnail(), 10),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "DESCRIPTION", "ADDRESS", "THUMBNAIL").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	return renderPage("CITIES", t.Render(), "")
}
