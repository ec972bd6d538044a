// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/MKhiriev/dollhouse-client/models"
)

const (
	settingsTable = "launch_settings"
	settingsRowID = 1
)

var settingsColumns = []string{
	"launch_id",
	"startup_path",
	"documents_path",
	"client_version",
	"screen_width",
	"screen_height",
	"windowed",
}

// settingsRepository is the SQLite-backed [SettingsRepository].
type settingsRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewSettingsRepository(db *DB, log *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: log,
		now:    time.Now,
	}
}

// SaveSettings upserts the single settings row.
func (r *settingsRepository) SaveSettings(ctx context.Context, settings models.Settings) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert(settingsTable).
		Columns(append([]string{"id"}, append(settingsColumns, "saved_at")...)...).
		Values(
			settingsRowID,
			settings.LaunchID,
			settings.StartupPath,
			settings.DocumentsPath,
			settings.ClientVersion,
			settings.ScreenWidth,
			settings.ScreenHeight,
			settings.Windowed,
			r.now().UTC(),
		).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			launch_id = excluded.launch_id,
			startup_path = excluded.startup_path,
			documents_path = excluded.documents_path,
			client_version = excluded.client_version,
			screen_width = excluded.screen_width,
			screen_height = excluded.screen_height,
			windowed = excluded.windowed,
			saved_at = excluded.saved_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*settingsRepository.SaveSettings").Msg("error saving settings")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// LoadSettings returns the saved row or ErrSettingsNotFound.
func (r *settingsRepository) LoadSettings(ctx context.Context) (models.Settings, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(settingsColumns...).
		From(settingsTable).
		Where(sq.Eq{"id": settingsRowID}).
		ToSql()
	if err != nil {
		return models.Settings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var s models.Settings
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&s.LaunchID,
		&s.StartupPath,
		&s.DocumentsPath,
		&s.ClientVersion,
		&s.ScreenWidth,
		&s.ScreenHeight,
		&s.Windowed,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Settings{}, ErrSettingsNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.LoadSettings").Msg("error scanning settings")
		return models.Settings{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return s, nil
}
