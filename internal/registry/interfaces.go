// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

//go:generate mockgen -destination=../mock/registry_mock.go -package=mock . Key,Store

// Key is an open node of the configuration store.
//
// Subkey and value names compare case-insensitively. Callers close every key
// they open.
type Key interface {
	// SubKeyNames lists the immediate subkeys in store order.
	SubKeyNames() ([]string, error)
	// OpenSubKey opens an immediate subkey. It returns ErrKeyNotFound when
	// name is not present.
	OpenSubKey(name string) (Key, error)
	// StringValue reads a string value. It returns ErrValueNotFound when the
	// key has no value called name.
	StringValue(name string) (string, error)
	Close() error
}

// Store opens keys by their path below the machine-wide hive, for example
// `SOFTWARE\Wow6432Node`.
type Store interface {
	Open(path string) (Key, error)
}
