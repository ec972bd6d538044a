// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package preflight verifies that the runtime the client is built against is
// registered in the configuration store. Its findings are advisories: they
// are reported to the user but never stop the launch.
package preflight

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dollhouse-client/internal/config"
	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/MKhiriev/dollhouse-client/internal/registry"
	"github.com/MKhiriev/dollhouse-client/internal/utils"
	"github.com/MKhiriev/dollhouse-client/models"
)

const (
	softwareRoot = `SOFTWARE`
	wow64Root    = `SOFTWARE\Wow6432Node`
)

// ArchitectureDetector is the part of sysarch.Detector the checker needs.
type ArchitectureDetector interface {
	IsCurrentProcess64Bit() bool
	IsHostOS64Bit() bool
}

// DependencyChecker walks <root>\<vendor>\<family>\<product>\<version>.
type DependencyChecker struct {
	store  registry.Store
	arch   ArchitectureDetector
	cfg    config.Dependency
	logger *logger.Logger
}

func NewDependencyChecker(store registry.Store, arch ArchitectureDetector, cfg config.Dependency, log *logger.Logger) *DependencyChecker {
	return &DependencyChecker{
		store:  store,
		arch:   arch,
		cfg:    cfg,
		logger: log,
	}
}

// SoftwareRoot is `SOFTWARE` on a 32-bit process running on a 32-bit OS and
// the compatibility view `SOFTWARE\Wow6432Node` otherwise.
func (c *DependencyChecker) SoftwareRoot() string {
	if !c.arch.IsCurrentProcess64Bit() && !c.arch.IsHostOS64Bit() {
		return softwareRoot
	}
	return wow64Root
}

// CheckDependencies returns at most one advisory: the one for the first
// missing level of the dependency path. Nothing below a missing level is
// queried.
func (c *DependencyChecker) CheckDependencies(ctx context.Context) []models.Advisory {
	rootPath := c.SoftwareRoot()
	logCtx := c.logger.With().Str("root", rootPath)
	if id, ok := utils.GetLaunchIDFromContext(ctx); ok {
		logCtx = logCtx.Str("launch_id", id)
	}
	log := &logger.Logger{Logger: logCtx.Logger()}

	root, err := c.store.Open(rootPath)
	if err != nil {
		return advise(log, models.Advisory{
			Code:    models.AdvisoryStoreUnavailable,
			Message: c.storeUnavailableMessage(),
		}, err)
	}
	defer root.Close()

	key, err := registry.Walk(root, c.cfg.Vendor, c.cfg.Family, c.cfg.Product, c.cfg.Version)
	if err != nil {
		depth, missing := registry.MissingDepth(err)
		if !missing {
			return advise(log, models.Advisory{
				Code:    models.AdvisoryStoreUnavailable,
				Message: c.storeUnavailableMessage(),
			}, err)
		}
		return advise(log, c.advisoryFor(depth), err)
	}
	_ = key.Close()

	log.Debug().
		Str("runtime", c.cfg.DisplayName).
		Str("version", c.cfg.DisplayVersion).
		Msg("runtime dependency found")

	return nil
}

func advise(log *logger.Logger, a models.Advisory, cause error) []models.Advisory {
	log.Warn().
		Err(cause).
		Str("code", string(a.Code)).
		Msg(a.Message)

	return []models.Advisory{a}
}

func (c *DependencyChecker) advisoryFor(depth int) models.Advisory {
	switch depth {
	case 0:
		return models.Advisory{
			Code:    models.AdvisoryVendorMissing,
			Message: fmt.Sprintf("Error: No %s products were found on your system.", c.cfg.Vendor),
		}
	case 1:
		return models.Advisory{
			Code: models.AdvisoryRuntimeMissing,
			Message: fmt.Sprintf("%s was not found to be installed on your system. Please download and install %s version %s.",
				c.cfg.DisplayName, c.cfg.DisplayName, c.cfg.DisplayVersion),
		}
	case 2:
		return models.Advisory{
			Code: models.AdvisoryRuntimeIncomplete,
			Message: fmt.Sprintf("%s was found to be installed on your system, but certain components are missing. Please (re)download and (re)install %s version %s.",
				c.cfg.DisplayName, c.cfg.DisplayName, c.cfg.DisplayVersion),
		}
	default:
		return models.Advisory{
			Code: models.AdvisoryRuntimeWrongVersion,
			Message: fmt.Sprintf("%s was found to be installed on your system, but you do not have version %s. Please download and install %s version %s.",
				c.cfg.DisplayName, c.cfg.DisplayVersion, c.cfg.DisplayName, c.cfg.DisplayVersion),
		}
	}
}

func (c *DependencyChecker) storeUnavailableMessage() string {
	return fmt.Sprintf("The system configuration store could not be read, so %s version %s could not be verified.",
		c.cfg.DisplayName, c.cfg.DisplayVersion)
}
