package bootstrap

import (
	"context"

	"github.com/MKhiriev/dollhouse-client/models"
)

//go:generate mockgen -destination=../mock/bootstrap_mock.go -package=mock . ArchitectureDetector,DependencyChecker,InstallResolver,VersionResolver,DocumentsLocator,SettingsSaver,Reporter,Runner,IDGenerator

type ArchitectureDetector interface {
	IsCurrentProcess64Bit() bool
	IsHostOS64Bit() bool
}

type DependencyChecker interface {
	CheckDependencies(ctx context.Context) []models.Advisory
}

type InstallResolver interface {
	ResolveInstallPath(ctx context.Context) (string, error)
}

type VersionResolver interface {
	ResolveClientVersion(startupPath string) string
}

// DocumentsLocator creates the per-user documents subfolder and returns its
// path. Calling it for an existing folder is not an error.
type DocumentsLocator interface {
	EnsureDocumentsPath(folder string) (string, error)
}

// SettingsSaver persists the resolved settings before launch.
type SettingsSaver interface {
	SaveSettings(ctx context.Context, settings models.Settings) error
}

// Reporter is the sink for user-visible notices.
type Reporter interface {
	Report(ctx context.Context, notice models.Notice)
}

// Runner is the client run loop. Run blocks for the lifetime of the client.
type Runner interface {
	Run(ctx context.Context, settings models.Settings) error
}

type IDGenerator interface {
	Generate() string
}
