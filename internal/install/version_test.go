package install_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/dollhouse-client/internal/install"
	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, version string) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, install.WriteManifest(&buf, version))
	require.NoError(t, os.WriteFile(filepath.Join(dir, install.ManifestFileName), buf.Bytes(), 0o600))
}

func TestResolveClientVersion_Manifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "1.2.3")

	v := install.NewVersionResolver(logger.Nop())

	assert.Equal(t, "1.2.3.0", v.ResolveClientVersion(dir))
}

func TestResolveClientVersion_NoManifest(t *testing.T) {
	v := install.NewVersionResolver(logger.Nop())

	assert.Equal(t, "0.1.22.0", v.ResolveClientVersion(t.TempDir()))
	assert.Equal(t, install.FallbackClientVersion, v.ResolveClientVersion(filepath.Join(t.TempDir(), "missing")))
}

func TestResolveClientVersion_CorruptManifest(t *testing.T) {
	dir := t.TempDir()
	// declares 10 bytes, carries 3
	require.NoError(t, os.WriteFile(filepath.Join(dir, install.ManifestFileName), []byte{10, '1', '.', '2'}, 0o600))

	v := install.NewVersionResolver(logger.Nop())

	assert.Equal(t, install.FallbackClientVersion, v.ResolveClientVersion(dir))
}

func TestReadManifestVersion(t *testing.T) {
	long := strings.Repeat("9", 200)

	tests := []struct {
		name    string
		payload []byte
		want    string
		wantErr bool
	}{
		{name: "short string", payload: append([]byte{5}, "1.2.3"...), want: "1.2.3"},
		{name: "two byte length prefix", payload: append([]byte{0xC8, 0x01}, long...), want: long},
		{name: "trailing bytes ignored", payload: append([]byte{3}, "0.1xyz"...), want: "0.1"},
		{name: "empty string", payload: []byte{0}, want: ""},
		{name: "empty input", payload: nil, wantErr: true},
		{name: "truncated payload", payload: []byte{4, 'a'}, wantErr: true},
		{name: "invalid utf-8", payload: []byte{2, 0xff, 0xfe}, wantErr: true},
		{name: "length too large", payload: []byte{0xff, 0xff, 0xff, 0x7f}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := install.ReadManifestVersion(bytes.NewReader(tt.payload))

			if tt.wantErr {
				assert.ErrorIs(t, err, install.ErrManifestCorrupt)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteManifest_LengthPrefix(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, install.WriteManifest(&buf, strings.Repeat("a", 130)))

	assert.Equal(t, []byte{0x82, 0x01}, buf.Bytes()[:2])
	assert.Equal(t, 132, buf.Len())
}
