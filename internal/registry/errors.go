package registry

import "errors"

var (
	// ErrKeyNotFound is returned when a subkey does not exist.
	ErrKeyNotFound = errors.New("registry key not found")
	// ErrValueNotFound is returned when a key holds no value with the name.
	ErrValueNotFound = errors.New("registry value not found")
	// ErrStoreUnavailable is returned when the store cannot be opened at all.
	ErrStoreUnavailable = errors.New("configuration store unavailable")
	// ErrKeyClosed is returned by operations on a key after Close.
	ErrKeyClosed = errors.New("registry key closed")
	// ErrEmptyPath is returned by Walk when no key names are given.
	ErrEmptyPath = errors.New("empty registry path")
)
