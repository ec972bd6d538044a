package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/dollhouse-client/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrReadingCitiesFile:  http.StatusServiceUnavailable,
	service.ErrDecodingCitiesFile: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
