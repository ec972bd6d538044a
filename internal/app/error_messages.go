// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the directory server
// handlers and middleware.
//
// All Msg* constants are written into the "error" field of JSON response
// bodies, so clients see the same wording for the same outcome.
package app

const (
	// MsgCityDirectoryUnavailable is returned when the city listing cannot
	// be produced.
	MsgCityDirectoryUnavailable = "city directory is unavailable"

	// MsgNotFound is returned for unknown routes and for known routes
	// requested with an unsupported method.
	MsgNotFound = "not found"
)
