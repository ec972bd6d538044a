// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bootstrap sequences the pre-launch checks and hands the resolved
// settings to the client run loop.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/dollhouse-client/internal/config"
	"github.com/MKhiriev/dollhouse-client/internal/display"
	"github.com/MKhiriev/dollhouse-client/internal/install"
	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/MKhiriev/dollhouse-client/internal/utils"
	"github.com/MKhiriev/dollhouse-client/models"
)

// Components are the collaborators of an [Orchestrator]. Saver may be nil.
type Components struct {
	Architecture ArchitectureDetector
	Dependencies DependencyChecker
	Install      InstallResolver
	Version      VersionResolver
	Documents    DocumentsLocator
	Saver        SettingsSaver
	Reporter     Reporter
	Runner       Runner
	IDs          IDGenerator
}

// Orchestrator runs one bootstrap:
//
//	Start → ArchitectureChecked → DependenciesChecked → InstallResolved | Aborted
//	→ VersionResolved → DocumentsPathEnsured → DisplayArgsParsed → Launched
type Orchestrator struct {
	c       Components
	paths   config.Paths
	display config.Display
	logger  *logger.Logger
}

func NewOrchestrator(c Components, paths config.Paths, displayDefaults config.Display, log *logger.Logger) *Orchestrator {
	return &Orchestrator{
		c:       c,
		paths:   paths,
		display: displayDefaults,
		logger:  log,
	}
}

// Run executes the bootstrap with the positional display arguments.
//
// A fatal install or documents folder failure is reported to the user and
// ends in StateAborted with a nil error. A malformed display argument is
// returned as an error. In both cases the run loop is not started.
func (o *Orchestrator) Run(ctx context.Context, args []string) (Outcome, error) {
	launchID := o.c.IDs.Generate()
	log := &logger.Logger{Logger: o.logger.With().Str("launch_id", launchID).Logger()}
	ctx = log.WithContext(utils.WithLaunchID(ctx, launchID))

	out := Outcome{
		State:    StateStart,
		Settings: models.Settings{LaunchID: launchID},
	}

	process64 := o.c.Architecture.IsCurrentProcess64Bit()
	host64 := o.c.Architecture.IsHostOS64Bit()
	o.advance(log, &out, StateArchitectureChecked).
		Bool("process_64bit", process64).
		Bool("host_64bit", host64).
		Send()

	out.Advisories = o.c.Dependencies.CheckDependencies(ctx)
	for _, a := range out.Advisories {
		o.c.Reporter.Report(ctx, a.Notice())
	}
	o.advance(log, &out, StateDependenciesChecked).Int("advisories", len(out.Advisories)).Send()

	startupPath, err := o.c.Install.ResolveInstallPath(ctx)
	if err != nil {
		o.abort(ctx, log, &out, "install", err)
		return out, nil
	}
	out.Settings.StartupPath = startupPath
	o.advance(log, &out, StateInstallResolved).Str("startup_path", startupPath).Send()

	out.Settings.ClientVersion = o.c.Version.ResolveClientVersion(startupPath)
	o.advance(log, &out, StateVersionResolved).Str("version", out.Settings.ClientVersion).Send()

	documentsPath, err := o.c.Documents.EnsureDocumentsPath(o.paths.DocumentsFolder)
	if err != nil {
		o.abort(ctx, log, &out, "documents", err)
		return out, nil
	}
	out.Settings.DocumentsPath = documentsPath
	o.advance(log, &out, StateDocumentsPathEnsured).Str("documents_path", documentsPath).Send()

	displayCfg, err := display.ParseDisplayArgs(args)
	if err != nil {
		return out, fmt.Errorf("error parsing display arguments: %w", err)
	}
	if !displayCfg.Specified {
		displayCfg = models.DisplayConfig{
			Width:    o.display.Width,
			Height:   o.display.Height,
			Windowed: o.display.Windowed,
		}
	}
	out.Settings.ScreenWidth = displayCfg.Width
	out.Settings.ScreenHeight = displayCfg.Height
	out.Settings.Windowed = displayCfg.Windowed
	o.advance(log, &out, StateDisplayArgsParsed).
		Int("width", displayCfg.Width).
		Int("height", displayCfg.Height).
		Bool("windowed", displayCfg.Windowed).
		Bool("from_args", displayCfg.Specified).
		Send()

	if o.c.Saver != nil {
		if err := o.c.Saver.SaveSettings(ctx, out.Settings); err != nil {
			log.Warn().Err(err).Msg("launch settings were not saved")
		}
	}

	o.advance(log, &out, StateLaunched).Send()
	if err := o.c.Runner.Run(ctx, out.Settings); err != nil {
		return out, fmt.Errorf("error running client: %w", err)
	}

	return out, nil
}

func (o *Orchestrator) abort(ctx context.Context, log *logger.Logger, out *Outcome, code string, err error) {
	message := err.Error()
	var fatal *install.FatalError
	if errors.As(err, &fatal) {
		message = fatal.Message
	}

	o.c.Reporter.Report(ctx, models.Notice{
		Severity: models.SeverityFatal,
		Code:     code,
		Message:  message,
	})

	out.State = StateAborted
	log.Error().Err(err).Str("state", out.State.String()).Msg("bootstrap aborted")
}
