package install

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"
)

const maxManifestLength = 1 << 16

// ReadManifestVersion decodes the manifest payload: a single string prefixed
// by its byte length as an unsigned LEB128 varint (seven bits per byte). The
// string must be valid UTF-8. Trailing bytes are ignored.
func ReadManifestVersion(r io.Reader) (string, error) {
	br := bufio.NewReader(r)

	n, err := binary.ReadUvarint(br)
	if err != nil {
		return "", fmt.Errorf("%w: length prefix: %w", ErrManifestCorrupt, err)
	}
	if n > maxManifestLength {
		return "", fmt.Errorf("%w: length %d exceeds %d", ErrManifestCorrupt, n, maxManifestLength)
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(br, buf); err != nil {
		return "", fmt.Errorf("%w: payload: %w", ErrManifestCorrupt, err)
	}
	if !utf8.Valid(buf) {
		return "", fmt.Errorf("%w: payload is not utf-8", ErrManifestCorrupt)
	}

	return string(buf), nil
}

// WriteManifest encodes version the way ReadManifestVersion expects it.
func WriteManifest(w io.Writer, version string) error {
	buf := binary.AppendUvarint(make([]byte, 0, binary.MaxVarintLen64+len(version)), uint64(len(version)))
	buf = append(buf, version...)

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("error writing manifest: %w", err)
	}
	return nil
}
