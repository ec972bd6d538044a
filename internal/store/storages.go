package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/dollhouse-client/internal/config"
	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/MKhiriev/dollhouse-client/models"
)

// Storages groups the client repositories over one open database.
type Storages struct {
	db                 *DB
	SettingsRepository SettingsRepository
}

// NewStorages opens the SQLite database at dsn and applies migrations.
func NewStorages(ctx context.Context, dsn string, log *logger.Logger) (*Storages, error) {
	log.Debug().Str("dsn", dsn).Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, dsn, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		db:                 db,
		SettingsRepository: NewSettingsRepository(db, log),
	}, nil
}

func (s *Storages) Close() error {
	return s.db.Close()
}

// SettingsSaver persists launch settings into the database that lives in the
// settings' own documents folder, unless an explicit DSN is configured.
type SettingsSaver struct {
	cfg    config.Storage
	logger *logger.Logger
}

func NewSettingsSaver(cfg config.Storage, log *logger.Logger) *SettingsSaver {
	return &SettingsSaver{cfg: cfg, logger: log}
}

// DSN returns the database location used for settings.
func (s *SettingsSaver) DSN(settings models.Settings) string {
	if s.cfg.DSN != "" {
		return s.cfg.DSN
	}
	return filepath.Join(settings.DocumentsPath, s.cfg.FileName)
}

func (s *SettingsSaver) SaveSettings(ctx context.Context, settings models.Settings) error {
	storages, err := NewStorages(ctx, s.DSN(settings), s.logger)
	if err != nil {
		return err
	}
	defer storages.Close()

	return storages.SettingsRepository.SaveSettings(ctx, settings)
}
