// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package userdirs locates and prepares per-user folders.
package userdirs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoDocumentsDir is returned when the user's documents directory cannot be
// determined.
var ErrNoDocumentsDir = errors.New("documents directory not found")

// EnsureDir creates path and any missing parents. An existing directory is
// not an error.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("error creating directory %q: %w", path, err)
	}
	return nil
}

// EnsureDocumentsPath returns <documents>/<folder> after creating it.
func EnsureDocumentsPath(folder string) (string, error) {
	docs, err := DocumentsDir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(docs, folder)
	if err := EnsureDir(path); err != nil {
		return "", err
	}
	return path, nil
}

// Locator exposes EnsureDocumentsPath as a method for consumers that take an
// interface.
type Locator struct{}

func (Locator) EnsureDocumentsPath(folder string) (string, error) {
	return EnsureDocumentsPath(folder)
}
