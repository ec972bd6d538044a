package install

import "errors"

var (
	// ErrFatalInstallation marks every install lookup failure. The launch
	// must not proceed when it is in the chain.
	ErrFatalInstallation = errors.New("game installation not found")

	ErrVendorNotFound     = errors.New("vendor key not found")
	ErrProductNotFound    = errors.New("product key not found")
	ErrInstallDirNotFound = errors.New("install directory value not found")

	// ErrManifestCorrupt is returned when a manifest is not a single
	// length-prefixed UTF-8 string.
	ErrManifestCorrupt = errors.New("corrupt client manifest")
)

// FatalError is an install lookup failure with the message shown to the user.
type FatalError struct {
	// Message is the user-facing text.
	Message string
	Err     error
}

func (e *FatalError) Error() string {
	return e.Message + ": " + e.Err.Error()
}

func (e *FatalError) Unwrap() []error {
	return []error{ErrFatalInstallation, e.Err}
}
