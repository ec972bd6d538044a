package install

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/dollhouse-client/internal/logger"
)

const (
	// ManifestFileName is the manifest inside the startup path.
	ManifestFileName = "Client.manifest"
	// FallbackClientVersion is reported when no manifest exists.
	FallbackClientVersion = "0.1.22.0"

	// manifestVersionSuffix completes the three-component manifest version.
	manifestVersionSuffix = ".0"
)

// VersionResolver reports the version of the installed client.
type VersionResolver struct {
	logger *logger.Logger
}

func NewVersionResolver(log *logger.Logger) *VersionResolver {
	return &VersionResolver{logger: log}
}

// ResolveClientVersion reads <startupPath>/Client.manifest and appends ".0".
// A missing manifest yields FallbackClientVersion silently; an unreadable or
// corrupt one yields it with a warning.
func (v *VersionResolver) ResolveClientVersion(startupPath string) string {
	path := filepath.Join(startupPath, ManifestFileName)

	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			v.logger.Warn().Err(err).Str("path", path).Msg("client manifest unreadable, using fallback version")
		}
		return FallbackClientVersion
	}
	defer f.Close()

	version, err := ReadManifestVersion(f)
	if err != nil {
		v.logger.Warn().Err(err).Str("path", path).Msg("client manifest corrupt, using fallback version")
		return FallbackClientVersion
	}

	return version + manifestVersionSuffix
}
