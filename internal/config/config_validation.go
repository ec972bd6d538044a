// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// launcher invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if blank(cfg.Install.Root, cfg.Install.Vendor, cfg.Install.Product, cfg.Install.ValueName) {
		return ErrInvalidInstallConfigs
	}

	if blank(cfg.Dependency.Vendor, cfg.Dependency.Family, cfg.Dependency.Product, cfg.Dependency.Version) {
		return ErrInvalidDependencyConfigs
	}

	if blank(cfg.Paths.DocumentsFolder) {
		return ErrInvalidPathsConfigs
	}

	if cfg.Directory.RequestTimeout < 0 {
		return ErrInvalidDirectoryConfigs
	}

	if blank(cfg.Launcher.Executable) {
		return ErrInvalidLauncherConfigs
	}
	switch cfg.Launcher.Reporter {
	case ReporterDialog, ReporterLog:
	default:
		return ErrInvalidLauncherConfigs
	}

	return nil
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
