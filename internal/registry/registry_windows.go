//go:build windows

package registry

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/dollhouse-client/internal/config"
	"golang.org/x/sys/windows/registry"
)

const access = registry.ENUMERATE_SUB_KEYS | registry.QUERY_VALUE

// NewSystemStore returns the native machine-wide registry. The export file in
// cfg is ignored on Windows.
func NewSystemStore(_ config.Registry) (Store, error) {
	return systemStore{}, nil
}

type systemStore struct{}

func (systemStore) Open(path string) (Key, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, access)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, mapError(err, ErrStoreUnavailable))
	}
	return &systemKey{key: k}, nil
}

type systemKey struct {
	key registry.Key
}

func (k *systemKey) SubKeyNames() ([]string, error) {
	names, err := k.key.ReadSubKeyNames(0)
	if err != nil {
		return nil, fmt.Errorf("read subkey names: %w", err)
	}
	return names, nil
}

func (k *systemKey) OpenSubKey(name string) (Key, error) {
	sub, err := registry.OpenKey(k.key, name, access)
	if err != nil {
		return nil, fmt.Errorf("open subkey %q: %w", name, mapError(err, ErrKeyNotFound))
	}
	return &systemKey{key: sub}, nil
}

func (k *systemKey) StringValue(name string) (string, error) {
	v, _, err := k.key.GetStringValue(name)
	if err != nil {
		return "", fmt.Errorf("value %q: %w", name, mapError(err, ErrValueNotFound))
	}
	return v, nil
}

func (k *systemKey) Close() error {
	return k.key.Close()
}

func mapError(err, notExist error) error {
	if errors.Is(err, registry.ErrNotExist) {
		return errors.Join(notExist, err)
	}
	return err
}
