package userdirs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Project Dollhouse")

	require.NoError(t, EnsureDir(path))
	require.NoError(t, EnsureDir(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureDir_PathIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	assert.Error(t, EnsureDir(path))
}

func TestEnsureDocumentsPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("documents folder comes from the shell on windows")
	}
	docs := t.TempDir()
	t.Setenv("XDG_DOCUMENTS_DIR", docs)

	path, err := EnsureDocumentsPath("Project Dollhouse")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(docs, "Project Dollhouse"), path)

	again, err := EnsureDocumentsPath("Project Dollhouse")
	require.NoError(t, err)
	assert.Equal(t, path, again)
}

func TestDocumentsDir_HomeFallback(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("documents folder comes from the shell on windows")
	}
	home := t.TempDir()
	t.Setenv("XDG_DOCUMENTS_DIR", "")
	t.Setenv("HOME", home)

	dir, err := DocumentsDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Documents"), dir)
}
