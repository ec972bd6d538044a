//go:build windows

package userdirs

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// DocumentsDir returns the user's Documents known folder.
func DocumentsDir() (string, error) {
	path, err := windows.KnownFolderPath(windows.FOLDERID_Documents, windows.KF_FLAG_DEFAULT)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoDocumentsDir, err)
	}
	return path, nil
}
