package config

import (
	"fmt"
)

// ClientConfig is the launcher's view of [StructuredConfig]: everything the
// client binary needs and nothing the directory server does.
type ClientConfig struct {
	Install    Install
	Dependency Dependency
	Registry   Registry
	Paths      Paths
	Display    Display
	Storage    Storage
	Directory  Directory
	Launcher   Launcher
	Log        Log

	// Args are the positional display arguments.
	Args []string
}

// ServerConfig is the directory server's view of [StructuredConfig].
type ServerConfig struct {
	DirectoryServer DirectoryServer
	Log             Log
}

// GetClientConfig builds a client-specific config view from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.Client(), nil
}

// GetServerConfig builds the directory server config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return &ServerConfig{
		DirectoryServer: cfg.DirectoryServer,
		Log:             cfg.Log,
	}, nil
}

// Client maps the fields relevant to the launcher runtime.
func (cfg *StructuredConfig) Client() *ClientConfig {
	args := make([]string, len(cfg.Args))
	copy(args, cfg.Args)

	return &ClientConfig{
		Install:    cfg.Install,
		Dependency: cfg.Dependency,
		Registry:   cfg.Registry,
		Paths:      cfg.Paths,
		Display:    cfg.Display,
		Storage:    cfg.Storage,
		Directory:  cfg.Directory,
		Launcher:   cfg.Launcher,
		Log:        cfg.Log,
		Args:       args,
	}
}
