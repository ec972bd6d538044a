package store

import (
	"context"

	"github.com/MKhiriev/dollhouse-client/models"
)

// SettingsRepository keeps the last resolved launch settings. There is at most
// one stored row; saving replaces it.
type SettingsRepository interface {
	SaveSettings(ctx context.Context, settings models.Settings) error
	LoadSettings(ctx context.Context) (models.Settings, error)
}
