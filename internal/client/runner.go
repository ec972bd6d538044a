package client

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/MKhiriev/dollhouse-client/models"
)

// LaunchIDEnv carries the launch id into the game process.
const LaunchIDEnv = "DOLLHOUSE_LAUNCH_ID"

// ProcessRunner starts the game binary from the startup path and waits for
// it to exit.
type ProcessRunner struct {
	executable string
	command    func(ctx context.Context, name string, args ...string) *exec.Cmd

	logger *logger.Logger
}

func NewProcessRunner(executable string, log *logger.Logger) *ProcessRunner {
	return &ProcessRunner{
		executable: executable,
		command:    exec.CommandContext,
		logger:     log,
	}
}

// Path returns the binary started for settings.
func (r *ProcessRunner) Path(settings models.Settings) string {
	return filepath.Join(settings.StartupPath, r.executable)
}

func (r *ProcessRunner) Run(ctx context.Context, settings models.Settings) error {
	log := logger.FromContext(ctx)

	cmd := r.command(ctx, r.Path(settings), commandArgs(settings)...)
	cmd.Dir = settings.StartupPath
	cmd.Env = append(os.Environ(), LaunchIDEnv+"="+settings.LaunchID)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	log.Info().Str("path", cmd.Path).Strs("args", cmd.Args[1:]).Msg("starting client process")

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("client process %s: %w", r.Path(settings), err)
	}

	log.Info().Msg("client process exited")
	return nil
}

func commandArgs(settings models.Settings) []string {
	args := []string{
		"-width", strconv.Itoa(settings.ScreenWidth),
		"-height", strconv.Itoa(settings.ScreenHeight),
	}
	if settings.Windowed {
		args = append(args, "-windowed")
	}
	return append(args,
		"-version", settings.ClientVersion,
		"-documents", settings.DocumentsPath,
	)
}
