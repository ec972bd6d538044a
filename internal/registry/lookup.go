package registry

import (
	"errors"
	"fmt"
	"strings"
)

// PathError reports how far [Walk] got before a level was missing.
type PathError struct {
	// Path is the full requested path, joined with `\`.
	Path string
	// Depth is the zero-based index of the first missing level.
	Depth int
	Err   error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("walk %q: level %d: %v", e.Path, e.Depth, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// FindSubKey reports whether k has an immediate subkey matching name without
// regard to case. The returned string is the name as the store spells it.
func FindSubKey(k Key, name string) (string, bool, error) {
	names, err := k.SubKeyNames()
	if err != nil {
		return "", false, fmt.Errorf("list subkeys: %w", err)
	}

	for _, n := range names {
		if strings.EqualFold(n, name) {
			return n, true, nil
		}
	}

	return "", false, nil
}

// Walk descends from root through names, checking each level for existence
// before opening it. It stops at the first missing level and returns a
// *PathError wrapping ErrKeyNotFound whose Depth identifies that level.
//
// Intermediate keys are closed. On success the caller owns the returned key;
// root is never closed.
func Walk(root Key, names ...string) (Key, error) {
	if len(names) == 0 {
		return nil, ErrEmptyPath
	}

	path := strings.Join(names, `\`)
	current := root
	release := func() {
		if current != root {
			_ = current.Close()
		}
	}

	for depth, name := range names {
		actual, ok, err := FindSubKey(current, name)
		if err != nil {
			release()
			return nil, &PathError{Path: path, Depth: depth, Err: err}
		}
		if !ok {
			release()
			return nil, &PathError{Path: path, Depth: depth, Err: ErrKeyNotFound}
		}

		next, err := current.OpenSubKey(actual)
		release()
		if err != nil {
			return nil, &PathError{Path: path, Depth: depth, Err: err}
		}
		current = next
	}

	return current, nil
}

// MissingDepth returns the Depth of a *PathError in err's chain.
func MissingDepth(err error) (int, bool) {
	var pathErr *PathError
	if errors.As(err, &pathErr) && errors.Is(pathErr.Err, ErrKeyNotFound) {
		return pathErr.Depth, true
	}
	return 0, false
}

// SplitPath splits a store path on either separator and drops empty segments.
func SplitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '\\' || r == '/'
	})
}
