package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/dollhouse-client/internal/adapter"
	"github.com/MKhiriev/dollhouse-client/internal/bootstrap"
	"github.com/MKhiriev/dollhouse-client/internal/config"
	"github.com/MKhiriev/dollhouse-client/internal/install"
	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/MKhiriev/dollhouse-client/internal/notify"
	"github.com/MKhiriev/dollhouse-client/internal/preflight"
	"github.com/MKhiriev/dollhouse-client/internal/registry"
	"github.com/MKhiriev/dollhouse-client/internal/service"
	storage "github.com/MKhiriev/dollhouse-client/internal/store"
	"github.com/MKhiriev/dollhouse-client/internal/sysarch"
	"github.com/MKhiriev/dollhouse-client/internal/tui"
	"github.com/MKhiriev/dollhouse-client/internal/userdirs"
	"github.com/MKhiriev/dollhouse-client/internal/utils"
)

type App struct {
	cfg *config.ClientConfig

	orchestrator *bootstrap.Orchestrator
	cities       service.CityService
	out          io.Writer

	logger *logger.Logger
}

// NewApp builds the production launcher from cfg.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	directory, err := adapter.NewHTTPDirectoryAdapter(cfg.Directory, log)
	if err != nil {
		return nil, fmt.Errorf("create directory adapter: %w", err)
	}
	services := service.NewServices(directory, log)

	return newApp(cfg, defaultComponents(cfg, log), services.CityService, os.Stdout, log), nil
}

func newApp(cfg *config.ClientConfig, c bootstrap.Components, cities service.CityService, out io.Writer, log *logger.Logger) *App {
	return &App{
		cfg:          cfg,
		orchestrator: bootstrap.NewOrchestrator(c, cfg.Paths, cfg.Display, log),
		cities:       cities,
		out:          out,
		logger:       log,
	}
}

func defaultComponents(cfg *config.ClientConfig, log *logger.Logger) bootstrap.Components {
	configStore := openRegistry(cfg.Registry, log)
	arch := sysarch.NewDetector(log)

	return bootstrap.Components{
		Architecture: arch,
		Dependencies: preflight.NewDependencyChecker(configStore, arch, cfg.Dependency, log),
		Install:      install.NewInstallResolver(configStore, cfg.Install, log),
		Version:      install.NewVersionResolver(log),
		Documents:    userdirs.Locator{},
		Saver:        storage.NewSettingsSaver(cfg.Storage, log),
		Reporter:     newReporter(cfg.Launcher, log),
		Runner:       NewProcessRunner(cfg.Launcher.Executable, log),
		IDs:          utils.NewUUIDGenerator(),
	}
}

// openRegistry falls back to an empty store, so every lookup reports
// the data as missing.
func openRegistry(cfg config.Registry, log *logger.Logger) registry.Store {
	s, err := registry.NewSystemStore(cfg)
	if err != nil {
		log.Warn().Err(err).Str("file", cfg.FilePath).Msg("configuration store unavailable, using an empty one")
		return registry.NewMemoryStore(registry.NewNode())
	}
	return s
}

func newReporter(cfg config.Launcher, log *logger.Logger) bootstrap.Reporter {
	if cfg.Reporter == config.ReporterLog {
		return notify.NewLogReporter(log)
	}
	return tui.NewDialogReporter(log)
}

// Run either prints the city listing or bootstraps and launches the client.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.Launcher.ListCities {
		return a.listCities(ctx)
	}

	outcome, err := a.orchestrator.Run(ctx, a.cfg.Args)
	if err != nil {
		return err
	}
	if outcome.Aborted() {
		return ErrLaunchAborted
	}

	return nil
}

func (a *App) listCities(ctx context.Context) error {
	cities, err := a.cities.ListCities(ctx)
	if err != nil {
		fmt.Fprintln(a.out, tui.HumanizeDirectoryError(err))
		return err
	}

	_, err = fmt.Fprintln(a.out, tui.RenderCityTable(cities))
	return err
}
