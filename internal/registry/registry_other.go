//go:build !windows

package registry

import (
	"fmt"

	"github.com/MKhiriev/dollhouse-client/internal/config"
)

// NewSystemStore loads the JSON export named in cfg. Without one there is no
// configuration store on this host and ErrStoreUnavailable is returned.
func NewSystemStore(cfg config.Registry) (Store, error) {
	if cfg.FilePath == "" {
		return nil, ErrStoreUnavailable
	}

	store, err := LoadMemoryStore(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return store, nil
}
