//go:build !windows

package userdirs

import (
	"fmt"
	"os"
	"path/filepath"
)

// DocumentsDir returns $XDG_DOCUMENTS_DIR, or ~/Documents when it is unset.
func DocumentsDir() (string, error) {
	if dir := os.Getenv("XDG_DOCUMENTS_DIR"); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoDocumentsDir, err)
	}
	return filepath.Join(home, "Documents"), nil
}
