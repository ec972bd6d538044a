// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/MKhiriev/dollhouse-client/models"
)

func settingsFixture(windowed bool) models.Settings {
	return models.Settings{
		LaunchID:      "launch-1",
		StartupPath:   filepath.Join("games", "TSOClient"),
		DocumentsPath: filepath.Join("home", "Project Dollhouse"),
		ClientVersion: "0.1.22.0",
		ScreenWidth:   1024,
		ScreenHeight:  768,
		Windowed:      windowed,
	}
}

func TestCommandArgs(t *testing.T) {
	s := settingsFixture(false)
	assert.Equal(t, []string{
		"-width", "1024", "-height", "768",
		"-version", "0.1.22.0",
		"-documents", s.DocumentsPath,
	}, commandArgs(s))

	s = settingsFixture(true)
	assert.Equal(t, []string{
		"-width", "1024", "-height", "768", "-windowed",
		"-version", "0.1.22.0",
		"-documents", s.DocumentsPath,
	}, commandArgs(s))
}

func TestProcessRunner_Path(t *testing.T) {
	r := NewProcessRunner("TSOClient.exe", logger.Nop())
	assert.Equal(t, filepath.Join("games", "TSOClient", "TSOClient.exe"), r.Path(settingsFixture(false)))
}

func TestProcessRunner_Run_BuildsCommand(t *testing.T) {
	var (
		gotName string
		gotArgs []string
	)

	r := NewProcessRunner("TSOClient.exe", logger.Nop())
	r.command = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		gotName, gotArgs = name, args
		// a command that cannot start, so nothing is executed
		return exec.CommandContext(ctx, filepath.Join(t.TempDir(), "missing-binary"))
	}

	s := settingsFixture(true)
	err := r.Run(context.Background(), s)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "client process")
	assert.Equal(t, r.Path(s), gotName)
	assert.Equal(t, commandArgs(s), gotArgs)
}

func TestProcessRunner_Run_MissingExecutable(t *testing.T) {
	s := settingsFixture(false)
	s.StartupPath = t.TempDir()

	err := NewProcessRunner("TSOClient.exe", logger.Nop()).Run(context.Background(), s)

	require.Error(t, err)
	assert.Contains(t, err.Error(), filepath.Join(s.StartupPath, "TSOClient.exe"))
}
