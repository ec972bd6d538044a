// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Settings is the resolved launch configuration handed to the client run loop.
//
// It is built by the bootstrap orchestrator, each field written once, and
// passed by value to the runner. StartupPath is always resolved before
// ClientVersion and DocumentsPath.
type Settings struct {
	// LaunchID identifies a single bootstrap run in logs and persisted state.
	LaunchID string

	// StartupPath is the client directory inside the game installation.
	StartupPath string

	// DocumentsPath is the per-user folder for every file the client
	// generates at runtime.
	DocumentsPath string

	// ClientVersion is the four-component version of the installed client.
	ClientVersion string

	ScreenWidth  int
	ScreenHeight int
	Windowed     bool
}

// DisplayConfig is the result of parsing the display launch arguments.
type DisplayConfig struct {
	Width    int
	Height   int
	Windowed bool

	// Specified is false when no display arguments were given at all.
	Specified bool
}
