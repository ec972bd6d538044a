// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package install finds the game installation and the version of the client
// installed there.
package install

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/dollhouse-client/internal/config"
	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/MKhiriev/dollhouse-client/internal/registry"
)

// InstallResolver reads <Root>\<Vendor>\<Product>\<ValueName> from the store.
type InstallResolver struct {
	store  registry.Store
	cfg    config.Install
	logger *logger.Logger
}

func NewInstallResolver(store registry.Store, cfg config.Install, log *logger.Logger) *InstallResolver {
	return &InstallResolver{
		store:  store,
		cfg:    cfg,
		logger: log,
	}
}

// ResolveInstallPath returns the client startup path: the recorded install
// directory joined with the configured sub path. Every failure is a
// *FatalError.
func (r *InstallResolver) ResolveInstallPath(ctx context.Context) (string, error) {
	root, err := r.store.Open(r.cfg.Root)
	if err != nil {
		return "", r.vendorMissing(err)
	}
	defer root.Close()

	key, err := registry.Walk(root, r.cfg.Vendor, r.cfg.Product)
	if err != nil {
		if depth, ok := registry.MissingDepth(err); ok && depth == 1 {
			return "", r.productMissing(err)
		}
		return "", r.vendorMissing(err)
	}
	defer key.Close()

	dir, err := key.StringValue(r.cfg.ValueName)
	if err == nil && strings.TrimSpace(dir) == "" {
		err = registry.ErrValueNotFound
	}
	if err != nil {
		return "", &FatalError{
			Message: fmt.Sprintf("Error: the %s installation directory is not recorded on your system.", r.cfg.Product),
			Err:     errors.Join(ErrInstallDirNotFound, err),
		}
	}

	startupPath := filepath.Join(dir, r.cfg.SubPath)
	logger.FromContext(ctx).Debug().Str("startup_path", startupPath).Msg("install path resolved")

	return startupPath, nil
}

func (r *InstallResolver) vendorMissing(err error) error {
	return &FatalError{
		Message: fmt.Sprintf("Error: No %s products were found on your system.", r.cfg.Vendor),
		Err:     errors.Join(ErrVendorNotFound, err),
	}
}

func (r *InstallResolver) productMissing(err error) error {
	return &FatalError{
		Message: fmt.Sprintf("Error: %s was not found on your system.", r.cfg.Product),
		Err:     errors.Join(ErrProductNotFound, err),
	}
}
