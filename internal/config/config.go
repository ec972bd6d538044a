// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// dollhouse launcher. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix  — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env        — direct environment variable name for scalar fields.
//   - envDefault — value used when the variable is not set.
type StructuredConfig struct {
	// Install describes where the game installation is registered in the
	// system configuration store.
	Install Install `envPrefix:"INSTALL_"`

	// Dependency describes the runtime the client needs and where the
	// configuration store records it.
	Dependency Dependency `envPrefix:"DEPENDENCY_"`

	// Registry holds settings for the configuration store backend.
	Registry Registry `envPrefix:"REGISTRY_"`

	// Paths holds per-user filesystem locations.
	Paths Paths `envPrefix:"PATHS_"`

	// Display holds the display mode used when no display arguments are
	// given on the command line.
	Display Display `envPrefix:"DISPLAY_"`

	// Storage holds the settings database location.
	Storage Storage `envPrefix:"STORAGE_"`

	// Directory holds the city directory client settings.
	Directory Directory `envPrefix:"DIRECTORY_"`

	// DirectoryServer holds settings of the development directory server.
	DirectoryServer DirectoryServer `envPrefix:"DIRECTORY_SERVER_"`

	// Launcher holds the run loop handoff settings.
	Launcher Launcher `envPrefix:"LAUNCHER_"`

	// Log holds logger output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args holds the positional command-line arguments left after flag
	// parsing: "<width>x<height>" and an optional "windowed".
	Args []string
}

// Install locates the game installation in the configuration store:
// <Root>\<Vendor>\<Product> holds the value <ValueName>.
type Install struct {
	// Root is the configuration store path the lookup starts from.
	// Env: INSTALL_ROOT
	Root string `env:"ROOT" envDefault:"SOFTWARE"`

	// Vendor is the publisher key under Root.
	// Env: INSTALL_VENDOR
	Vendor string `env:"VENDOR" envDefault:"Maxis"`

	// Product is the game key under Vendor.
	// Env: INSTALL_PRODUCT
	Product string `env:"PRODUCT" envDefault:"The Sims Online"`

	// ValueName is the string value holding the installation directory.
	// Env: INSTALL_VALUE_NAME
	ValueName string `env:"VALUE_NAME" envDefault:"InstallDir"`

	// SubPath is appended to the installation directory to form the
	// client startup path.
	// Env: INSTALL_SUB_PATH
	SubPath string `env:"SUB_PATH" envDefault:"TSOClient"`
}

// Dependency is the four-level store path of the required runtime:
// <root>\<Vendor>\<Family>\<Product>\<Version>.
type Dependency struct {
	Vendor  string `env:"VENDOR" envDefault:"Microsoft"`
	Family  string `env:"FAMILY" envDefault:"XNA"`
	Product string `env:"PRODUCT" envDefault:"Framework"`
	Version string `env:"VERSION" envDefault:"v3.1"`

	// DisplayName and DisplayVersion are used in advisory messages.
	DisplayName    string `env:"DISPLAY_NAME" envDefault:"XNA"`
	DisplayVersion string `env:"DISPLAY_VERSION" envDefault:"3.1"`
}

// Registry configures the configuration store backend.
type Registry struct {
	// FilePath points to a JSON export of the configuration store. It is
	// used on hosts without a native store; Windows reads the system
	// registry and ignores it.
	// Env: REGISTRY_FILE
	FilePath string `env:"FILE"`
}

// Paths holds per-user filesystem locations.
type Paths struct {
	// DocumentsFolder is the folder created inside the user's documents
	// directory for all files the client generates.
	// Env: PATHS_DOCUMENTS_FOLDER
	DocumentsFolder string `env:"DOCUMENTS_FOLDER" envDefault:"Project Dollhouse"`
}

// Display is the fallback display mode.
type Display struct {
	Width    int  `env:"WIDTH" envDefault:"800"`
	Height   int  `env:"HEIGHT" envDefault:"600"`
	Windowed bool `env:"WINDOWED"`
}

// Storage configures the settings database.
type Storage struct {
	// DSN is an explicit SQLite data source. When empty the database is
	// created as FileName inside the documents folder.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`

	// Env: STORAGE_FILE_NAME
	FileName string `env:"FILE_NAME" envDefault:"launcher.db"`
}

// Directory configures the city directory client.
type Directory struct {
	// URL is the base address of the directory service.
	// Env: DIRECTORY_URL
	URL string `env:"URL" envDefault:"http://127.0.0.1:8080"`

	// RequestTimeout bounds a single directory request (e.g. "10s").
	// Env: DIRECTORY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// DirectoryServer configures cmd/directory.
type DirectoryServer struct {
	// Address is the listen address in "host:port" form.
	// Env: DIRECTORY_SERVER_ADDRESS
	Address string `env:"ADDRESS" envDefault:"127.0.0.1:8080"`

	// CitiesFile is the JSON file with the served city list.
	// Env: DIRECTORY_SERVER_CITIES_FILE
	CitiesFile string `env:"CITIES_FILE" envDefault:"cities.json"`
}

// Launcher configures the run loop handoff.
type Launcher struct {
	// Executable is the client binary name inside the startup path.
	// Env: LAUNCHER_EXECUTABLE
	Executable string `env:"EXECUTABLE" envDefault:"TSOClient.exe"`

	// Reporter selects how notices reach the user: "dialog" or "log".
	// Env: LAUNCHER_REPORTER
	Reporter string `env:"REPORTER" envDefault:"dialog"`

	// ListCities makes the client print the directory city list and exit
	// instead of launching.
	ListCities bool `env:"LIST_CITIES"`
}

// Log configures logger output.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" envDefault:"info"`

	// FilePath, when set, receives JSON log lines in addition to the console.
	// Env: LOG_FILE
	FilePath string `env:"FILE"`
}

// Reporter kinds accepted in [Launcher.Reporter].
const (
	ReporterDialog = "dialog"
	ReporterLog    = "log"
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables (with defaults)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
