package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidInstallConfigs indicates an incomplete install lookup path
	// (for example, empty vendor or value name).
	ErrInvalidInstallConfigs = errors.New("invalid install configuration")
	// ErrInvalidDependencyConfigs indicates an incomplete runtime dependency
	// path.
	ErrInvalidDependencyConfigs = errors.New("invalid dependency configuration")
	// ErrInvalidPathsConfigs indicates a missing documents folder name.
	ErrInvalidPathsConfigs = errors.New("invalid paths configuration")
	// ErrInvalidDirectoryConfigs indicates invalid directory client settings
	// (for example, a negative request timeout).
	ErrInvalidDirectoryConfigs = errors.New("invalid directory configuration")
	// ErrInvalidLauncherConfigs indicates a missing executable name or an
	// unknown reporter kind.
	ErrInvalidLauncherConfigs = errors.New("invalid launcher configuration")
)
