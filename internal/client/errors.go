package client

import "errors"

var (
	// ErrLaunchAborted is returned by [App.Run] when bootstrap stopped on a
	// fatal notice. The notice has already been reported.
	ErrLaunchAborted = errors.New("launch aborted")
)
